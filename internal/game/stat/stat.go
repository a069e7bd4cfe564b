// Package stat provides the fixed-point integer arithmetic used by every
// combat formula. All multiplication by a Fraction or Percentage truncates
// toward zero; none of these types ever round. Floating point appears only
// in the final DPS blend, never here.
package stat

// SecondsPerTick is the wall-clock duration of one game tick.
const SecondsPerTick = 0.6

// Scalar is a combat stat magnitude: a level, a bonus, a roll.
type Scalar int

// Tiles is a map distance in game squares.
type Tiles int

// Ticks is a duration in game ticks.
type Ticks int

// Fraction is a multiplicative modifier dividend/divisor.
type Fraction struct {
	Dividend int `yaml:"dividend"`
	Divisor  int `yaml:"divisor"`
}

// MulFraction returns (s * dividend) / divisor, truncating toward zero.
func (s Scalar) MulFraction(f Fraction) Scalar {
	return Scalar((int(s) * f.Dividend) / f.Divisor)
}

// Percentage is an additive percent modifier: Percentage(25) scales by 125/100.
type Percentage int

// MulPercentage returns (s * (100 + p)) / 100, truncating toward zero.
//
// Postcondition: 100.MulPercentage(25) == 125.
func (s Scalar) MulPercentage(p Percentage) Scalar {
	return Scalar((int(s) * (100 + int(p))) / 100)
}

// Min returns the smaller of a and b.
func Min(a, b Tiles) Tiles {
	if a < b {
		return a
	}
	return b
}

// StatBonuses holds one bonus value per attack/defence axis.
type StatBonuses struct {
	Stab   Scalar `yaml:"stab"`
	Slash  Scalar `yaml:"slash"`
	Crush  Scalar `yaml:"crush"`
	Ranged Scalar `yaml:"ranged"`
	Magic  Scalar `yaml:"magic"`
}

// Add returns the per-axis sum of b and o.
func (b StatBonuses) Add(o StatBonuses) StatBonuses {
	return StatBonuses{
		Stab:   b.Stab + o.Stab,
		Slash:  b.Slash + o.Slash,
		Crush:  b.Crush + o.Crush,
		Ranged: b.Ranged + o.Ranged,
		Magic:  b.Magic + o.Magic,
	}
}

// DamageBonus holds the damage bonuses per combat discipline.
// Strength and Ranged scale via the 640-denominator max-hit formula;
// Magic is a direct percentage multiplier on the spell or staff max hit.
type DamageBonus struct {
	Strength Scalar     `yaml:"strength"`
	Ranged   Scalar     `yaml:"ranged"`
	Magic    Percentage `yaml:"magic"`
}

// Add returns the per-field sum of d and o.
func (d DamageBonus) Add(o DamageBonus) DamageBonus {
	return DamageBonus{
		Strength: d.Strength + o.Strength,
		Ranged:   d.Ranged + o.Ranged,
		Magic:    d.Magic + o.Magic,
	}
}

// Stats is the full additive stat block carried by one item.
// Addition is associative and commutative with the zero value as identity.
type Stats struct {
	Attack      StatBonuses `yaml:"attack"`
	Defence     StatBonuses `yaml:"defence"`
	Damage      DamageBonus `yaml:"damage"`
	PrayerBonus Scalar      `yaml:"prayer_bonus"`
}

// Add returns the member-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Attack:      s.Attack.Add(o.Attack),
		Defence:     s.Defence.Add(o.Defence),
		Damage:      s.Damage.Add(o.Damage),
		PrayerBonus: s.PrayerBonus + o.PrayerBonus,
	}
}
