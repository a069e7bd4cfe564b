package combat

import "github.com/runetools/dpscalc/internal/game/stat"

// Levels are a combatant's skill levels. Construct with DefaultLevels and
// override the skills a scenario cares about.
type Levels struct {
	Hitpoints stat.Scalar `yaml:"hitpoints"`
	Attack    stat.Scalar `yaml:"attack"`
	Strength  stat.Scalar `yaml:"strength"`
	Defence   stat.Scalar `yaml:"defence"`
	Ranged    stat.Scalar `yaml:"ranged"`
	Magic     stat.Scalar `yaml:"magic"`
	Prayer    stat.Scalar `yaml:"prayer"`
}

// DefaultLevels returns a fresh combatant: 10 hitpoints, 1 in everything
// else.
func DefaultLevels() Levels {
	return Levels{
		Hitpoints: 10,
		Attack:    1,
		Strength:  1,
		Defence:   1,
		Ranged:    1,
		Magic:     1,
		Prayer:    1,
	}
}

// Extra is situational player state consulted by equipment modifiers.
type Extra struct {
	OnSlayerTask bool        `yaml:"on_slayer_task"`
	MiningLevel  stat.Scalar `yaml:"mining_level"`
	InWilderness bool        `yaml:"in_wilderness"`
}

// DefaultExtra returns the situational defaults: on a slayer task, 99
// mining, in the wilderness.
func DefaultExtra() Extra {
	return Extra{OnSlayerTask: true, MiningLevel: 99, InWilderness: true}
}
