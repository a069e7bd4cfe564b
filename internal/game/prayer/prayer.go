// Package prayer models activatable prayers and their percentage stat
// boosts. Prayers stack additively per axis; the combat formulas consume
// the summed percentages.
package prayer

import "github.com/runetools/dpscalc/internal/game/stat"

// Stats are the percentage boosts a prayer grants per combat axis. A zero
// value means no boost on that axis.
type Stats struct {
	Defence        stat.Percentage `yaml:"defence"`
	MeleeAccuracy  stat.Percentage `yaml:"melee_accuracy"`
	MeleeDamage    stat.Percentage `yaml:"melee_damage"`
	RangedAccuracy stat.Percentage `yaml:"ranged_accuracy"`
	RangedDamage   stat.Percentage `yaml:"ranged_damage"`
	MagicAccuracy  stat.Percentage `yaml:"magic_accuracy"`
	MagicDefence   stat.Percentage `yaml:"magic_defence"`
}

// Add sums two boost sets axis by axis.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Defence:        s.Defence + other.Defence,
		MeleeAccuracy:  s.MeleeAccuracy + other.MeleeAccuracy,
		MeleeDamage:    s.MeleeDamage + other.MeleeDamage,
		RangedAccuracy: s.RangedAccuracy + other.RangedAccuracy,
		RangedDamage:   s.RangedDamage + other.RangedDamage,
		MagicAccuracy:  s.MagicAccuracy + other.MagicAccuracy,
		MagicDefence:   s.MagicDefence + other.MagicDefence,
	}
}

// Prayer is one activatable prayer as loaded from reference data.
type Prayer struct {
	Name  string `yaml:"name"`
	Stats Stats  `yaml:"stats"`
}
