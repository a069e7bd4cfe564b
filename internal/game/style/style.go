// Package style defines combat styles: the damage type and stance of each
// selectable fighting option, the hidden stat boosts a stance grants, and
// the per-weapon-type option catalog.
package style

import (
	"errors"
	"fmt"

	"github.com/runetools/dpscalc/internal/game/stat"
)

// ErrUnsupportedStyleCombination reports a style/weapon-style pairing that
// has no defined invisible boost. Such pairings never occur in the catalog.
var ErrUnsupportedStyleCombination = errors.New("style: unsupported style combination")

// Type is the damage type of a combat option.
type Type int

const (
	Slash Type = iota
	Crush
	Stab
	Ranged
	Magic
	// TypeNone marks options with no damage type, e.g. a bulwark's Block.
	TypeNone
)

// String returns the display name of the damage type.
func (t Type) String() string {
	switch t {
	case Slash:
		return "slash"
	case Crush:
		return "crush"
	case Stab:
		return "stab"
	case Ranged:
		return "ranged"
	case Magic:
		return "magic"
	default:
		return "none"
	}
}

// IsMelee reports whether t is one of the three melee damage types.
func (t Type) IsMelee() bool { return t == Slash || t == Crush || t == Stab }

// IsRanged reports whether t is the ranged damage type.
func (t Type) IsRanged() bool { return t == Ranged }

// IsMagic reports whether t is the magic damage type.
func (t Type) IsMagic() bool { return t == Magic }

// WeaponStyle is the stance of a combat option.
type WeaponStyle int

const (
	Accurate WeaponStyle = iota
	Aggressive
	Defensive
	Controlled
	Rapid
	Longrange
	ShortFuse
	MediumFuse
	LongFuse
	Autocast
	DefensiveAutocast
	// StyleNone marks options with no stance, paired with TypeNone.
	StyleNone
)

// String returns the display name of the stance.
func (s WeaponStyle) String() string {
	switch s {
	case Accurate:
		return "accurate"
	case Aggressive:
		return "aggressive"
	case Defensive:
		return "defensive"
	case Controlled:
		return "controlled"
	case Rapid:
		return "rapid"
	case Longrange:
		return "longrange"
	case ShortFuse:
		return "short fuse"
	case MediumFuse:
		return "medium fuse"
	case LongFuse:
		return "long fuse"
	case Autocast:
		return "autocast"
	case DefensiveAutocast:
		return "defensive autocast"
	default:
		return "none"
	}
}

// CombatOption is one selectable fighting style of a weapon.
type CombatOption struct {
	Name        string
	Type        Type
	WeaponStyle WeaponStyle
}

// Modifier is the invisible boost granted purely by the chosen combat
// option: level bonuses, extra attack range, and an attack speed delta.
type Modifier struct {
	Attack      stat.Scalar
	Strength    stat.Scalar
	Defence     stat.Scalar
	Ranged      stat.Scalar
	Magic       stat.Scalar
	AttackRange stat.Tiles
	AttackSpeed stat.Ticks
}

// InvisibleBoost returns the hidden stat boost for the option's
// type/stance pairing.
//
// Postcondition: returns ErrUnsupportedStyleCombination for any pairing
// that does not occur in the weapon-type catalog.
func (o CombatOption) InvisibleBoost() (Modifier, error) {
	var boost Modifier
	switch {
	case o.Type.IsMelee() && o.WeaponStyle == Accurate:
		boost.Attack += 3
	case o.Type.IsMelee() && o.WeaponStyle == Aggressive:
		boost.Strength += 3
	case o.WeaponStyle == Defensive:
		boost.Defence += 3
	case o.WeaponStyle == Controlled:
		boost.Attack += 1
		boost.Strength += 1
		boost.Defence += 1
	case o.Type == Ranged && (o.WeaponStyle == Accurate || o.WeaponStyle == ShortFuse):
		boost.Ranged += 3
	case o.Type == Ranged && (o.WeaponStyle == Rapid || o.WeaponStyle == MediumFuse):
		boost.AttackSpeed -= 1
	case o.Type == Ranged && o.WeaponStyle == Longrange:
		boost.Defence += 3
		boost.AttackRange += 2
	case o.WeaponStyle == LongFuse:
		boost.AttackRange += 1
	case o.Type == Magic && o.WeaponStyle == Accurate:
		boost.Magic += 3
	case o.Type == Magic && o.WeaponStyle == Longrange:
		boost.Magic += 1
		boost.Defence += 3
		boost.AttackRange += 2
	case o.Type == Magic && (o.WeaponStyle == Autocast || o.WeaponStyle == DefensiveAutocast):
	case o.Type == TypeNone && o.WeaponStyle == StyleNone:
	default:
		return Modifier{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedStyleCombination, o.Type, o.WeaponStyle)
	}
	return boost, nil
}
