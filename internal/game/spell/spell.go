// Package spell models castable combat spells. A selected spell forces the
// magic combat pipeline regardless of the wielded weapon.
package spell

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runetools/dpscalc/internal/game/stat"
)

// Spellbook identifies which spellbook a spell belongs to.
type Spellbook int

const (
	Standard Spellbook = iota
	Ancient
	Lunar
	Arceuus
)

var spellbookNames = map[Spellbook]string{
	Standard: "standard",
	Ancient:  "ancient",
	Lunar:    "lunar",
	Arceuus:  "arceuus",
}

var spellbooksByName = func() map[string]Spellbook {
	m := make(map[string]Spellbook, len(spellbookNames))
	for s, n := range spellbookNames {
		m[n] = s
	}
	return m
}()

// String returns the snake_case identifier used in reference data.
func (s Spellbook) String() string {
	if n, ok := spellbookNames[s]; ok {
		return n
	}
	return fmt.Sprintf("<spellbook %d>", int(s))
}

// UnmarshalYAML decodes a spellbook from its identifier; an empty string
// means Standard.
func (s *Spellbook) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	if name == "" {
		*s = Standard
		return nil
	}
	book, ok := spellbooksByName[name]
	if !ok {
		return fmt.Errorf("spell: unknown spellbook %q", name)
	}
	*s = book
	return nil
}

// Attribute tags a spell family with special interactions, such as the
// smoke staff boost for standard bolt spells.
type Attribute int

const (
	Bolt Attribute = iota
	Barrage
)

var attributeNames = map[Attribute]string{
	Bolt:    "bolt",
	Barrage: "barrage",
}

var attributesByName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributeNames))
	for a, n := range attributeNames {
		m[n] = a
	}
	return m
}()

// String returns the snake_case identifier used in reference data.
func (a Attribute) String() string {
	if n, ok := attributeNames[a]; ok {
		return n
	}
	return fmt.Sprintf("<attribute %d>", int(a))
}

// UnmarshalYAML decodes a spell attribute from its identifier.
func (a *Attribute) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	attr, ok := attributesByName[name]
	if !ok {
		return fmt.Errorf("spell: unknown attribute %q", name)
	}
	*a = attr
	return nil
}

// Spell is one castable combat spell as loaded from reference data.
type Spell struct {
	Name       string      `yaml:"name"`
	MaxHit     stat.Scalar `yaml:"max_hit"`
	Spellbook  Spellbook   `yaml:"spellbook"`
	Attributes []Attribute `yaml:"attributes"`
}

// HasAttribute reports whether the spell carries the given attribute.
func (s Spell) HasAttribute(a Attribute) bool {
	for _, attr := range s.Attributes {
		if attr == a {
			return true
		}
	}
	return false
}
