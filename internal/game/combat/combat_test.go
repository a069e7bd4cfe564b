package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runetools/dpscalc/internal/game/combat"
	"github.com/runetools/dpscalc/internal/game/equipment"
	"github.com/runetools/dpscalc/internal/game/prayer"
	"github.com/runetools/dpscalc/internal/game/spell"
	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

func abyssalWhip() equipment.WeaponOneHanded {
	return equipment.WeaponOneHanded{Weapon: equipment.Weapon{
		Equipment: equipment.Equipment{
			Name:  "Abyssal whip",
			Stats: stat.Stats{Attack: stat.StatBonuses{Slash: 82}, Damage: stat.DamageBonus{Strength: 82}},
		},
		WeaponStats: equipment.WeaponStats{Type: style.Whip, AttackSpeed: 4, Range: 1},
	}}
}

func dragonDefender() equipment.Shield {
	return equipment.Shield{Equipment: equipment.Equipment{
		Name: "Dragon defender",
		Stats: stat.Stats{
			Attack: stat.StatBonuses{Stab: 25, Slash: 24, Crush: 23},
			Damage: stat.DamageBonus{Strength: 6},
		},
	}}
}

func dragonHunterCrossbow() equipment.WeaponOneHanded {
	return equipment.WeaponOneHanded{Weapon: equipment.Weapon{
		Equipment: equipment.Equipment{
			Name:       "Dragon hunter crossbow",
			Stats:      stat.Stats{Attack: stat.StatBonuses{Ranged: 95}},
			Attributes: []equipment.Attribute{equipment.DragonHunterCrossbow},
		},
		WeaponStats: equipment.WeaponStats{Type: style.Crossbow, AttackSpeed: 6, Range: 7},
	}}
}

func dragonBolts() equipment.Ammunition {
	return equipment.Ammunition{Equipment: equipment.Equipment{
		Name:  "Dragon bolts",
		Stats: stat.Stats{Damage: stat.DamageBonus{Ranged: 122}},
	}}
}

func colossalBlade() equipment.WeaponTwoHanded {
	return equipment.WeaponTwoHanded{Weapon: equipment.Weapon{
		Equipment: equipment.Equipment{
			Name:       "Colossal blade",
			Stats:      stat.Stats{Attack: stat.StatBonuses{Stab: 21, Slash: 24, Crush: 21}, Damage: stat.DamageBonus{Strength: 84}},
			Attributes: []equipment.Attribute{equipment.ColossalBlade},
		},
		WeaponStats: equipment.WeaponStats{Type: style.TwoHandedSword, AttackSpeed: 5, Range: 1},
	}}
}

func tridentOfTheSwamp() equipment.WeaponOneHanded {
	return equipment.WeaponOneHanded{Weapon: equipment.Weapon{
		Equipment: equipment.Equipment{
			Name:  "Trident of the swamp",
			Stats: stat.Stats{Attack: stat.StatBonuses{Magic: 42}},
		},
		WeaponStats:  equipment.WeaponStats{Type: style.PoweredStaff, AttackSpeed: 4, Range: 8},
		PoweredStaff: equipment.TridentOfTheSwamp,
	}}
}

func piety() prayer.Prayer {
	return prayer.Prayer{Name: "Piety", Stats: prayer.Stats{MeleeAccuracy: 20, MeleeDamage: 23, Defence: 25}}
}

func rigour() prayer.Prayer {
	return prayer.Prayer{Name: "Rigour", Stats: prayer.Stats{RangedAccuracy: 20, RangedDamage: 23, Defence: 25}}
}

func mysticMight() prayer.Prayer {
	return prayer.Prayer{Name: "Mystic Might", Stats: prayer.Stats{MagicAccuracy: 15}}
}

func windBolt() spell.Spell {
	return spell.Spell{Name: "Wind Bolt", MaxHit: 9, Spellbook: spell.Standard, Attributes: []spell.Attribute{spell.Bolt}}
}

func fireGiant() *combat.Enemy {
	levels := combat.DefaultLevels()
	levels.Hitpoints = 111
	levels.Attack = 65
	levels.Strength = 65
	levels.Defence = 65
	return &combat.Enemy{
		Name:   "Fire giant (level 86)",
		Levels: levels,
		Stats:  stat.Stats{Defence: stat.StatBonuses{Slash: 3}},
		Size:   2,
	}
}

func mithrilDragon() *combat.Enemy {
	levels := combat.DefaultLevels()
	levels.Hitpoints = 254
	levels.Attack = 88
	levels.Strength = 88
	levels.Defence = 145
	levels.Ranged = 88
	levels.Magic = 124
	return &combat.Enemy{
		Name:   "Mithril dragon",
		Levels: levels,
		Stats: stat.Stats{
			Defence: stat.StatBonuses{Stab: 60, Slash: 80, Crush: 70, Ranged: 213, Magic: 85},
		},
		Attributes: []combat.EnemyAttribute{combat.Dragon},
		Size:       4,
	}
}

func TestMeleeAgainstFireGiant(t *testing.T) {
	levels := combat.DefaultLevels()
	levels.Attack = 99
	levels.Strength = 99

	p := combat.NewPlayer().
		Equip(abyssalWhip()).
		Equip(dragonDefender()).
		SetLevels(levels).
		ActivatePrayer(piety())
	require.NoError(t, p.ChangeCombatStyle(1))
	assert.Equal(t, "Lash", p.CombatOption().Name)

	enemy := fireGiant()

	accuracy, err := p.MaxAccuracyRoll(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(21590), accuracy)

	maxHit, err := p.MaxHit(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(31), maxHit)

	defence, err := enemy.MaxDefenceRoll(style.Slash)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(4958), defence)

	dps, err := p.DPS(enemy)
	require.NoError(t, err)
	assert.InDelta(t, 5.716776671298441, dps, 1e-6)
}

func TestRangedAgainstMithrilDragon(t *testing.T) {
	levels := combat.DefaultLevels()
	levels.Ranged = 99

	p := combat.NewPlayer().
		Equip(dragonHunterCrossbow()).
		Equip(dragonBolts()).
		SetLevels(levels).
		ActivatePrayer(rigour())
	require.NoError(t, p.ChangeCombatStyle(1))
	assert.Equal(t, "Rapid", p.CombatOption().Name)

	enemy := mithrilDragon()

	accuracy, err := p.MaxAccuracyRoll(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(26044), accuracy, "13/10 bonus applies against dragons")

	maxHit, err := p.MaxHit(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(46), maxHit, "5/4 bonus applies against dragons")

	defence, err := enemy.MaxDefenceRoll(style.Ranged)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(42658), defence)

	speed, err := p.AttackSpeed()
	require.NoError(t, err)
	assert.Equal(t, stat.Ticks(5), speed)

	dps, err := p.DPS(enemy)
	require.NoError(t, err)
	assert.InDelta(t, 2.3403660118461564, dps, 1e-6)
}

func TestColossalBladeScalesWithEnemySize(t *testing.T) {
	levels := combat.DefaultLevels()
	levels.Attack = 99
	levels.Strength = 99

	p := combat.NewPlayer().
		Equip(colossalBlade()).
		SetLevels(levels).
		ActivatePrayer(piety())
	require.NoError(t, p.ChangeCombatStyle(1))

	enemy := fireGiant()

	accuracy, err := p.MaxAccuracyRoll(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(11088), accuracy)

	maxHit, err := p.MaxHit(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(35), maxHit, "base 31 plus 2 per size tile up to 5")

	dps, err := p.DPS(enemy)
	require.NoError(t, err)
	assert.InDelta(t, 4.529145622895623, dps, 1e-6)
}

func TestSpellWithoutWeapon(t *testing.T) {
	levels := combat.DefaultLevels()
	levels.Magic = 99

	p := combat.NewPlayer().
		SetLevels(levels).
		SelectSpell(windBolt())

	enemy := fireGiant()

	accuracy, err := p.MaxAccuracyRoll(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(6912), accuracy, "spell selection adds one effective level")

	maxHit, err := p.MaxHit(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(9), maxHit)

	defence, err := enemy.MaxDefenceRoll(style.Magic)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(640), defence)

	speed, err := p.AttackSpeed()
	require.NoError(t, err)
	assert.Equal(t, stat.Ticks(5), speed, "casting uses the standard cast delay")

	dps, err := p.DPS(enemy)
	require.NoError(t, err)
	assert.InDelta(t, 1.4305555555555558, dps, 1e-6)
}

func TestPoweredStaffAgainstMithrilDragon(t *testing.T) {
	levels := combat.DefaultLevels()
	levels.Magic = 99

	p := combat.NewPlayer().
		Equip(tridentOfTheSwamp()).
		SetLevels(levels).
		ActivatePrayer(mysticMight())

	enemy := mithrilDragon()

	accuracy, err := p.MaxAccuracyRoll(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(13144), accuracy)

	maxHit, err := p.MaxHit(enemy)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(31), maxHit)

	defence, err := enemy.MaxDefenceRoll(style.Magic)
	require.NoError(t, err)
	assert.Equal(t, stat.Scalar(19817), defence)

	dps, err := p.DPS(enemy)
	require.NoError(t, err)
	assert.InDelta(t, 2.14180585692419, dps, 1e-6)
}

func TestChangeCombatStyleOutOfRange(t *testing.T) {
	p := combat.NewPlayer().Equip(abyssalWhip())

	err := p.ChangeCombatStyle(3)
	require.ErrorIs(t, err, combat.ErrInvalidStyleIndex)

	err = p.ChangeCombatStyle(-1)
	require.ErrorIs(t, err, combat.ErrInvalidStyleIndex)

	require.NoError(t, p.ChangeCombatStyle(2))
	assert.Equal(t, "Deflect", p.CombatOption().Name)
}

func TestEquipWeaponResetsCombatStyle(t *testing.T) {
	p := combat.NewPlayer().Equip(abyssalWhip())
	require.NoError(t, p.ChangeCombatStyle(2))

	p.Equip(colossalBlade())
	assert.Equal(t, "Chop", p.CombatOption().Name, "weapon change selects the first option")
}

func TestMagicWithoutSpellOrStaffFails(t *testing.T) {
	// An ordinary staff exposes autocast options but has no built-in max
	// hit, so selecting one without a spell leaves no damage source.
	staff := equipment.WeaponOneHanded{Weapon: equipment.Weapon{
		Equipment:   equipment.Equipment{Name: "Staff of water"},
		WeaponStats: equipment.WeaponStats{Type: style.Staff, AttackSpeed: 5, Range: 1},
	}}
	p := combat.NewPlayer().Equip(staff)
	require.NoError(t, p.ChangeCombatStyle(3))

	_, err := p.MaxHit(fireGiant())
	require.ErrorIs(t, err, combat.ErrUnimplementedStyle)
}

func TestGunDefaultOptionHasNoFormula(t *testing.T) {
	gun := equipment.WeaponTwoHanded{Weapon: equipment.Weapon{
		Equipment:   equipment.Equipment{Name: "Hand cannon"},
		WeaponStats: equipment.WeaponStats{Type: style.Gun, AttackSpeed: 7, Range: 9},
	}}
	p := combat.NewPlayer().Equip(gun)

	_, err := p.MaxAccuracyRoll(fireGiant())
	require.ErrorIs(t, err, combat.ErrUnimplementedStyle)

	_, err = fireGiant().MaxDefenceRoll(style.TypeNone)
	require.ErrorIs(t, err, combat.ErrUnimplementedStyle)

	require.NoError(t, p.ChangeCombatStyle(1), "the kick option still works")
	_, err = p.MaxAccuracyRoll(fireGiant())
	require.NoError(t, err)
}
