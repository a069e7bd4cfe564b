package combat

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

// EnemyAttribute tags an enemy family consulted by equipment modifiers,
// such as Dragon for the dragon hunter crossbow.
type EnemyAttribute int

const (
	Demon EnemyAttribute = iota
	Raid
	Dragon
	Golem
	Vampyre
	Leafy
	Undead
)

var enemyAttributeNames = map[EnemyAttribute]string{
	Demon:   "demon",
	Raid:    "raid",
	Dragon:  "dragon",
	Golem:   "golem",
	Vampyre: "vampyre",
	Leafy:   "leafy",
	Undead:  "undead",
}

var enemyAttributesByName = func() map[string]EnemyAttribute {
	m := make(map[string]EnemyAttribute, len(enemyAttributeNames))
	for a, n := range enemyAttributeNames {
		m[n] = a
	}
	return m
}()

// String returns the snake_case identifier used in reference data.
func (a EnemyAttribute) String() string {
	if n, ok := enemyAttributeNames[a]; ok {
		return n
	}
	return fmt.Sprintf("<enemy attribute %d>", int(a))
}

// UnmarshalYAML decodes an enemy attribute from its identifier.
func (a *EnemyAttribute) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	attr, ok := enemyAttributesByName[name]
	if !ok {
		return fmt.Errorf("combat: unknown enemy attribute %q", name)
	}
	*a = attr
	return nil
}

// Enemy is the defending combatant as loaded from reference data.
type Enemy struct {
	Name       string           `yaml:"name"`
	Levels     Levels           `yaml:"levels"`
	Stats      stat.Stats       `yaml:"stats"`
	Attributes []EnemyAttribute `yaml:"attributes"`
	Size       stat.Tiles       `yaml:"size"`
}

// HasAttribute reports whether the enemy carries the given family tag.
func (e *Enemy) HasAttribute(a EnemyAttribute) bool {
	for _, attr := range e.Attributes {
		if attr == a {
			return true
		}
	}
	return false
}

// MaxDefenceRoll computes the enemy's defence roll against the given
// damage type. Magic attacks roll against the magic level; everything
// else rolls against the defence level.
//
// Precondition: styleType identifies a concrete damage type.
func (e *Enemy) MaxDefenceRoll(styleType style.Type) (stat.Scalar, error) {
	var bonus stat.Scalar
	level := e.Levels.Defence
	switch styleType {
	case style.Stab:
		bonus = e.Stats.Defence.Stab
	case style.Slash:
		bonus = e.Stats.Defence.Slash
	case style.Crush:
		bonus = e.Stats.Defence.Crush
	case style.Ranged:
		bonus = e.Stats.Defence.Ranged
	case style.Magic:
		level = e.Levels.Magic
		bonus = e.Stats.Defence.Magic
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnimplementedStyle, styleType)
	}
	effective := level + 9
	return effective * (bonus + 64), nil
}
