package style

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WeaponType is the closed taxonomy of weapon categories. Its sole
// responsibility is producing the ordered combat option list for a weapon.
type WeaponType int

const (
	TwoHandedSword WeaponType = iota
	Axe
	Banner
	Blunt
	Bludgeon
	Bulwark
	Claw
	Partisan
	Pickaxe
	Polearm
	Polestaff
	Scythe
	SlashSword
	Spear
	Spiked
	StabSword
	Unarmed
	Whip
	Bow
	Chinchompa
	Crossbow
	Gun
	Thrown
	BladedStaff
	PoweredStaff
	PoweredWand
	Staff
	Salamander
)

var weaponTypeNames = map[WeaponType]string{
	TwoHandedSword: "two_handed_sword",
	Axe:            "axe",
	Banner:         "banner",
	Blunt:          "blunt",
	Bludgeon:       "bludgeon",
	Bulwark:        "bulwark",
	Claw:           "claw",
	Partisan:       "partisan",
	Pickaxe:        "pickaxe",
	Polearm:        "polearm",
	Polestaff:      "polestaff",
	Scythe:         "scythe",
	SlashSword:     "slash_sword",
	Spear:          "spear",
	Spiked:         "spiked",
	StabSword:      "stab_sword",
	Unarmed:        "unarmed",
	Whip:           "whip",
	Bow:            "bow",
	Chinchompa:     "chinchompa",
	Crossbow:       "crossbow",
	Gun:            "gun",
	Thrown:         "thrown",
	BladedStaff:    "bladed_staff",
	PoweredStaff:   "powered_staff",
	PoweredWand:    "powered_wand",
	Staff:          "staff",
	Salamander:     "salamander",
}

var weaponTypesByName = func() map[string]WeaponType {
	m := make(map[string]WeaponType, len(weaponTypeNames))
	for t, n := range weaponTypeNames {
		m[n] = t
	}
	return m
}()

// String returns the snake_case identifier used in reference data.
func (t WeaponType) String() string {
	if n, ok := weaponTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("<weapon_type %d>", int(t))
}

// UnmarshalYAML decodes a weapon type from its snake_case identifier.
func (t *WeaponType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	wt, ok := weaponTypesByName[name]
	if !ok {
		return fmt.Errorf("style: unknown weapon type %q", name)
	}
	*t = wt
	return nil
}

func option(name string, t Type, s WeaponStyle) CombatOption {
	return CombatOption{Name: name, Type: t, WeaponStyle: s}
}

// CombatOptions returns the ordered list of fighting styles for the weapon
// type. Authoritative data, not an algorithm.
//
// Postcondition: the returned list is non-empty for every WeaponType;
// Bulwark and Gun have exactly two options, every other type three to five.
func (t WeaponType) CombatOptions() []CombatOption {
	switch t {
	case TwoHandedSword:
		return []CombatOption{
			option("Chop", Slash, Accurate),
			option("Slash", Slash, Aggressive),
			option("Smash", Crush, Aggressive),
			option("Block", Slash, Defensive),
		}
	case Axe:
		return []CombatOption{
			option("Chop", Slash, Accurate),
			option("Hack", Slash, Aggressive),
			option("Smash", Crush, Aggressive),
			option("Block", Slash, Defensive),
		}
	case Banner:
		return []CombatOption{
			option("Lunge", Stab, Accurate),
			option("Swipe", Slash, Aggressive),
			option("Pound", Crush, Controlled),
			option("Block", Stab, Defensive),
		}
	case Blunt:
		return []CombatOption{
			option("Pound", Crush, Accurate),
			option("Pummel", Crush, Aggressive),
			option("Block", Crush, Defensive),
		}
	case Bludgeon:
		return []CombatOption{
			option("Pound", Crush, Aggressive),
			option("Pummel", Crush, Aggressive),
			option("Block", Crush, Aggressive),
		}
	case Bulwark:
		return []CombatOption{
			option("Pummel", Crush, Accurate),
			option("Block", TypeNone, StyleNone),
		}
	case Claw, SlashSword:
		return []CombatOption{
			option("Chop", Slash, Accurate),
			option("Slash", Slash, Aggressive),
			option("Lunge", Stab, Controlled),
			option("Block", Slash, Defensive),
		}
	case Partisan:
		return []CombatOption{
			option("Stab", Stab, Accurate),
			option("Lunge", Stab, Aggressive),
			option("Pound", Crush, Aggressive),
			option("Block", Stab, Defensive),
		}
	case Pickaxe:
		return []CombatOption{
			option("Spike", Stab, Accurate),
			option("Impale", Stab, Aggressive),
			option("Smash", Crush, Aggressive),
			option("Block", Stab, Defensive),
		}
	case Polearm:
		return []CombatOption{
			option("Jab", Stab, Controlled),
			option("Swipe", Slash, Aggressive),
			option("Fend", Stab, Defensive),
		}
	case Polestaff:
		return []CombatOption{
			option("Bash", Crush, Accurate),
			option("Pound", Crush, Aggressive),
			option("Block", Crush, Defensive),
		}
	case Scythe:
		return []CombatOption{
			option("Reap", Slash, Accurate),
			option("Chop", Slash, Aggressive),
			option("Jab", Crush, Aggressive),
			option("Block", Slash, Defensive),
		}
	case Spear:
		return []CombatOption{
			option("Lunge", Stab, Controlled),
			option("Swipe", Slash, Controlled),
			option("Pound", Crush, Controlled),
			option("Block", Stab, Defensive),
		}
	case Spiked:
		return []CombatOption{
			option("Pound", Crush, Accurate),
			option("Pummel", Crush, Aggressive),
			option("Spike", Stab, Controlled),
			option("Block", Crush, Defensive),
		}
	case StabSword:
		return []CombatOption{
			option("Stab", Stab, Accurate),
			option("Lunge", Stab, Aggressive),
			option("Slash", Slash, Aggressive),
			option("Block", Stab, Defensive),
		}
	case Whip:
		return []CombatOption{
			option("Flick", Slash, Accurate),
			option("Lash", Slash, Controlled),
			option("Deflect", Slash, Defensive),
		}
	case Bow, Crossbow, Thrown:
		return []CombatOption{
			option("Accurate", Ranged, Accurate),
			option("Rapid", Ranged, Rapid),
			option("Longrange", Ranged, Longrange),
		}
	case Chinchompa:
		return []CombatOption{
			option("Short fuse", Ranged, ShortFuse),
			option("Medium fuse", Ranged, MediumFuse),
			option("Long fuse", Ranged, LongFuse),
		}
	case Gun:
		return []CombatOption{
			option("Aim and Fire", TypeNone, StyleNone),
			option("Kick", Crush, Aggressive),
		}
	case BladedStaff:
		return []CombatOption{
			option("Jab", Stab, Accurate),
			option("Swipe", Slash, Aggressive),
			option("Fend", Crush, Defensive),
			option("Spell", Magic, Autocast),
			option("Spell", Magic, DefensiveAutocast),
		}
	case PoweredStaff, PoweredWand:
		return []CombatOption{
			option("Accurate", Magic, Accurate),
			option("Accurate", Magic, Accurate),
			option("Longrange", Magic, Longrange),
		}
	case Staff:
		return []CombatOption{
			option("Bash", Crush, Accurate),
			option("Pound", Crush, Aggressive),
			option("Focus", Crush, Defensive),
			option("Spell", Magic, Autocast),
			option("Spell", Magic, DefensiveAutocast),
		}
	case Salamander:
		return []CombatOption{
			option("Scorch", Slash, Aggressive),
			option("Flare", Ranged, Accurate),
			option("Blaze", Magic, Defensive),
		}
	default: // Unarmed
		return []CombatOption{
			option("Punch", Crush, Accurate),
			option("Kick", Crush, Aggressive),
			option("Block", Crush, Defensive),
		}
	}
}

// AllWeaponTypes lists every catalog entry, in declaration order.
func AllWeaponTypes() []WeaponType {
	types := make([]WeaponType, 0, len(weaponTypeNames))
	for t := TwoHandedSword; t <= Salamander; t++ {
		types = append(types, t)
	}
	return types
}
