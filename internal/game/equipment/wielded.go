package equipment

import (
	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

// Wielded is the tagged union over the two ways of holding a weapon:
// one-handed with an (optionally empty) shield, or two-handed.
type Wielded struct {
	twoHanded bool
	weapon1h  WeaponOneHanded
	shield    Shield
	weapon2h  WeaponTwoHanded
}

// DefaultWielded returns bare fists with an empty shield slot.
func DefaultWielded() Wielded {
	return WieldOneHanded(EmptyWeaponOneHanded(), EmptyShield())
}

// WieldOneHanded holds a one-handed weapon and a shield.
func WieldOneHanded(weapon WeaponOneHanded, shield Shield) Wielded {
	return Wielded{weapon1h: weapon, shield: shield}
}

// WieldTwoHanded holds a two-handed weapon; the shield slot is vacated.
func WieldTwoHanded(weapon WeaponTwoHanded) Wielded {
	return Wielded{twoHanded: true, weapon2h: weapon}
}

// IsTwoHanded reports whether a two-handed weapon is held.
func (w Wielded) IsTwoHanded() bool { return w.twoHanded }

// WithWeaponOneHanded returns the wielded state after equipping the given
// one-handed weapon: a currently held shield is kept, a two-handed weapon
// is discarded and the shield slot left empty.
func (w Wielded) WithWeaponOneHanded(weapon WeaponOneHanded) Wielded {
	if w.twoHanded {
		return WieldOneHanded(weapon, EmptyShield())
	}
	return WieldOneHanded(weapon, w.shield)
}

// WithWeaponTwoHanded returns the wielded state after equipping the given
// two-handed weapon; any held shield is discarded.
func (w Wielded) WithWeaponTwoHanded(weapon WeaponTwoHanded) Wielded {
	return WieldTwoHanded(weapon)
}

// WithShield returns the wielded state after equipping the given shield:
// a held two-handed weapon is discarded and replaced with bare fists.
func (w Wielded) WithShield(shield Shield) Wielded {
	if w.twoHanded {
		return WieldOneHanded(EmptyWeaponOneHanded(), shield)
	}
	return WieldOneHanded(w.weapon1h, shield)
}

// Stats sums the held weapon and shield stat blocks.
func (w Wielded) Stats() stat.Stats {
	if w.twoHanded {
		return w.weapon2h.Stats
	}
	return w.weapon1h.Stats.Add(w.shield.Stats)
}

// WeaponStats returns the held weapon's mechanics.
func (w Wielded) WeaponStats() WeaponStats {
	if w.twoHanded {
		return w.weapon2h.WeaponStats
	}
	return w.weapon1h.WeaponStats
}

// PoweredStaff returns the held weapon's powered staff kind, or NotPowered.
func (w Wielded) PoweredStaff() PoweredStaff {
	if w.twoHanded {
		return w.weapon2h.PoweredStaff
	}
	return w.weapon1h.PoweredStaff
}

// Attributes returns the attribute set of the held weapon. Shields never
// contribute attributes.
func (w Wielded) Attributes() []Attribute {
	if w.twoHanded {
		return w.weapon2h.Attributes
	}
	return w.weapon1h.Attributes
}

// HasWeaponAttribute reports whether the held weapon carries the attribute.
func (w Wielded) HasWeaponAttribute(a Attribute) bool {
	for _, attr := range w.Attributes() {
		if attr == a {
			return true
		}
	}
	return false
}

// CombatOptions returns the held weapon type's ordered fighting styles.
//
// Postcondition: non-empty for every weapon type.
func (w Wielded) CombatOptions() []style.CombatOption {
	return w.WeaponStats().Type.CombatOptions()
}

// AttackSpeed returns the weapon's base attack speed adjusted by the
// combat option's invisible speed delta (e.g. Rapid shaves one tick).
func (w Wielded) AttackSpeed(option style.CombatOption) (stat.Ticks, error) {
	boost, err := option.InvisibleBoost()
	if err != nil {
		return 0, err
	}
	return w.WeaponStats().AttackSpeed + boost.AttackSpeed, nil
}
