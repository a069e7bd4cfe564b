package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

func TestInvisibleBoost_Melee(t *testing.T) {
	boost, err := style.CombatOption{Name: "Chop", Type: style.Slash, WeaponStyle: style.Accurate}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(3), boost.Attack)
	assert.Equal(t, stat.Scalar(0), boost.Strength)

	boost, err = style.CombatOption{Name: "Pummel", Type: style.Crush, WeaponStyle: style.Aggressive}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(3), boost.Strength)

	boost, err = style.CombatOption{Name: "Lash", Type: style.Slash, WeaponStyle: style.Controlled}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, style.Modifier{Attack: 1, Strength: 1, Defence: 1}, boost)

	boost, err = style.CombatOption{Name: "Block", Type: style.Stab, WeaponStyle: style.Defensive}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(3), boost.Defence)
}

func TestInvisibleBoost_Ranged(t *testing.T) {
	boost, err := style.CombatOption{Type: style.Ranged, WeaponStyle: style.Accurate}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(3), boost.Ranged)

	boost, err = style.CombatOption{Type: style.Ranged, WeaponStyle: style.Rapid}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Ticks(-1), boost.AttackSpeed)

	boost, err = style.CombatOption{Type: style.Ranged, WeaponStyle: style.MediumFuse}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Ticks(-1), boost.AttackSpeed)

	boost, err = style.CombatOption{Type: style.Ranged, WeaponStyle: style.Longrange}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, style.Modifier{Defence: 3, AttackRange: 2}, boost)

	boost, err = style.CombatOption{Type: style.Ranged, WeaponStyle: style.LongFuse}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Tiles(1), boost.AttackRange)
}

func TestInvisibleBoost_Magic(t *testing.T) {
	boost, err := style.CombatOption{Type: style.Magic, WeaponStyle: style.Accurate}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(3), boost.Magic)

	boost, err = style.CombatOption{Type: style.Magic, WeaponStyle: style.Longrange}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, style.Modifier{Magic: 1, Defence: 3, AttackRange: 2}, boost)

	boost, err = style.CombatOption{Type: style.Magic, WeaponStyle: style.Autocast}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, style.Modifier{}, boost)

	boost, err = style.CombatOption{Type: style.TypeNone, WeaponStyle: style.StyleNone}.InvisibleBoost()
	require.NoError(t, err)
	assert.Equal(t, style.Modifier{}, boost)
}

func TestInvisibleBoost_UnsupportedCombination(t *testing.T) {
	_, err := style.CombatOption{Type: style.Slash, WeaponStyle: style.Rapid}.InvisibleBoost()
	require.ErrorIs(t, err, style.ErrUnsupportedStyleCombination)

	_, err = style.CombatOption{Type: style.Magic, WeaponStyle: style.Aggressive}.InvisibleBoost()
	require.ErrorIs(t, err, style.ErrUnsupportedStyleCombination)
}

func TestCombatOptions_EveryTypeNonEmpty(t *testing.T) {
	for _, wt := range style.AllWeaponTypes() {
		opts := wt.CombatOptions()
		require.NotEmpty(t, opts, "weapon type %s", wt)
	}
}

func TestCombatOptions_TwoOptionTypes(t *testing.T) {
	assert.Len(t, style.Bulwark.CombatOptions(), 2)
	assert.Len(t, style.Gun.CombatOptions(), 2)
}

// Property: every cataloged option has a defined invisible boost. The
// UnsupportedStyleCombination error is reserved for pairings outside the
// catalog.
func TestCombatOptions_BoostsTotalOverCatalog(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		all := style.AllWeaponTypes()
		wt := all[rapid.IntRange(0, len(all)-1).Draw(rt, "weaponType")]
		opts := wt.CombatOptions()
		opt := opts[rapid.IntRange(0, len(opts)-1).Draw(rt, "option")]
		if _, err := opt.InvisibleBoost(); err != nil {
			rt.Fatalf("cataloged option %q of %s has no boost: %v", opt.Name, wt, err)
		}
	})
}

func TestCombatOptions_WhipOrder(t *testing.T) {
	opts := style.Whip.CombatOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, "Flick", opts[0].Name)
	assert.Equal(t, "Lash", opts[1].Name)
	assert.Equal(t, style.Controlled, opts[1].WeaponStyle)
	assert.Equal(t, "Deflect", opts[2].Name)
}
