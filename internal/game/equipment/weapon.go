package equipment

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

// WeaponStats are the combat mechanics of a weapon beyond its stat block.
type WeaponStats struct {
	Type        style.WeaponType
	AttackSpeed stat.Ticks
	Range       stat.Tiles
}

// DefaultWeaponStats describes bare fists: unarmed, 4 ticks, 1 tile.
func DefaultWeaponStats() WeaponStats {
	return WeaponStats{Type: style.Unarmed, AttackSpeed: 4, Range: 1}
}

// PoweredStaff identifies a weapon whose magic max hit comes from a
// built-in formula tied to the wielder's magic level instead of a cast
// spell. The zero value marks an ordinary weapon.
type PoweredStaff int

const (
	NotPowered PoweredStaff = iota
	StarterStaff
	TridentOfTheSeas
	ThammaronsSceptre
	AccursedSceptre
	TridentOfTheSwamp
	SanguinestiStaff
	Dawnbringer
	TumekensShadow
	CrystalStaffBasic
	CrystalStaffAttuned
	CrystalStaffPerfected
	SwampLizard
	OrangeSalamander
	RedSalamander
	BlackSalamander
)

var poweredStaffNames = map[PoweredStaff]string{
	StarterStaff:          "starter_staff",
	TridentOfTheSeas:      "trident_of_the_seas",
	ThammaronsSceptre:     "thammarons_sceptre",
	AccursedSceptre:       "accursed_sceptre",
	TridentOfTheSwamp:     "trident_of_the_swamp",
	SanguinestiStaff:      "sanguinesti_staff",
	Dawnbringer:           "dawnbringer",
	TumekensShadow:        "tumekens_shadow",
	CrystalStaffBasic:     "crystal_staff_basic",
	CrystalStaffAttuned:   "crystal_staff_attuned",
	CrystalStaffPerfected: "crystal_staff_perfected",
	SwampLizard:           "swamp_lizard",
	OrangeSalamander:      "orange_salamander",
	RedSalamander:         "red_salamander",
	BlackSalamander:       "black_salamander",
}

var poweredStavesByName = func() map[string]PoweredStaff {
	m := make(map[string]PoweredStaff, len(poweredStaffNames))
	for p, n := range poweredStaffNames {
		m[n] = p
	}
	return m
}()

// String returns the snake_case identifier used in reference data, or ""
// for NotPowered.
func (p PoweredStaff) String() string {
	if n, ok := poweredStaffNames[p]; ok {
		return n
	}
	return ""
}

// UnmarshalYAML decodes a powered staff kind; an empty or missing string
// means NotPowered.
func (p *PoweredStaff) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	if name == "" {
		*p = NotPowered
		return nil
	}
	kind, ok := poweredStavesByName[name]
	if !ok {
		return fmt.Errorf("equipment: unknown powered staff %q", name)
	}
	*p = kind
	return nil
}

// MaxHit returns the staff's built-in max hit for the given magic level.
// The salamander rows reuse the melee max-hit shape with a fixed strength
// constant per colour.
//
// Precondition: p is not NotPowered.
func (p PoweredStaff) MaxHit(magic stat.Scalar) stat.Scalar {
	switch p {
	case StarterStaff:
		return 8
	case TridentOfTheSeas:
		return magic/3 - 5
	case ThammaronsSceptre:
		return magic/3 - 8
	case AccursedSceptre:
		return magic/3 - 6
	case TridentOfTheSwamp:
		return magic/3 - 2
	case SanguinestiStaff:
		return magic/3 - 1
	case Dawnbringer:
		return magic/6 - 1
	case TumekensShadow:
		return magic/3 + 1
	case CrystalStaffBasic:
		return 25
	case CrystalStaffAttuned:
		return 31
	case CrystalStaffPerfected:
		return 39
	case SwampLizard:
		return salamanderMaxHit(magic, 56)
	case OrangeSalamander:
		return salamanderMaxHit(magic, 59)
	case RedSalamander:
		return salamanderMaxHit(magic, 77)
	case BlackSalamander:
		return salamanderMaxHit(magic, 92)
	default:
		return 0
	}
}

func salamanderMaxHit(magic, strength stat.Scalar) stat.Scalar {
	return (magic*(strength+64) + 320) / 640
}

// Weapon is an item that can occupy the weapon slot.
type Weapon struct {
	Equipment
	WeaponStats  WeaponStats
	PoweredStaff PoweredStaff
}

// WeaponOneHanded is a weapon that leaves the shield slot usable.
type WeaponOneHanded struct{ Weapon }

// WeaponTwoHanded is a weapon that occupies both hands.
type WeaponTwoHanded struct{ Weapon }

// EmptyWeaponOneHanded returns the canonical unarmed one-handed weapon.
func EmptyWeaponOneHanded() WeaponOneHanded {
	return WeaponOneHanded{Weapon{Equipment: Empty(), WeaponStats: DefaultWeaponStats()}}
}

// EmptyWeaponTwoHanded returns the canonical unarmed two-handed weapon.
func EmptyWeaponTwoHanded() WeaponTwoHanded {
	return WeaponTwoHanded{Weapon{Equipment: Empty(), WeaponStats: DefaultWeaponStats()}}
}

func (WeaponOneHanded) SlotName() string { return "weapon_one_handed" }
func (WeaponTwoHanded) SlotName() string { return "weapon_two_handed" }
