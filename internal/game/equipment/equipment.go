// Package equipment models items, equip slots, and the wielded-weapon
// state. Every slot exposes the same stat block contract; an unoccupied
// slot holds the canonical Empty item rather than a nil, so stat
// aggregation is total.
package equipment

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runetools/dpscalc/internal/game/stat"
)

// EmptyName is the name carried by the canonical empty item.
const EmptyName = "Empty"

// Equipment is the static definition of one concrete item. Instances are
// created once by the data loader and treated as immutable.
type Equipment struct {
	Name       string
	Stats      stat.Stats
	Attributes []Attribute
}

// Empty returns the canonical empty item: zero stats, no attributes.
func Empty() Equipment {
	return Equipment{Name: EmptyName}
}

// IsEmpty reports whether e is the canonical empty item.
func (e Equipment) IsEmpty() bool { return e.Name == EmptyName || e.Name == "" }

// HasAttribute reports whether the item carries the given attribute.
func (e Equipment) HasAttribute(a Attribute) bool {
	for _, attr := range e.Attributes {
		if attr == a {
			return true
		}
	}
	return false
}

// Attribute tags a special equipment effect. The taxonomy is closed:
// attributes without a registered combat modifier behave as plain stats.
type Attribute int

const (
	CrystalArmour Attribute = iota
	CrystalBow
	SalveAmulet
	SalveAmuletEnchanted
	SalveAmuletImbued
	SalveAmuletEnchantedImbued
	BlackMask
	BlackMaskImbued
	VoidArmour
	VoidHelmMelee
	VoidHelmRanged
	VoidHelmMagic
	RevenantMeleeWeapon
	RevenantRangedWeapon
	RevenantMagicWeapon
	DragonHunterLance
	Arclight
	KerisPartisan
	BlisterwoodFlail
	BlisterwoodSickle
	TzhaarMeleeWeapon
	InquisitorArmour
	BarroniteMace
	Silverlight
	IvandisFlail
	LeadBladedBattleaxe
	ColossalBlade
	TwistedBow
	DragonHunterCrossbow
	SmokeStaff
	HarmonisedNightmareStaff
)

var attributeNames = map[Attribute]string{
	CrystalArmour:              "crystal_armour",
	CrystalBow:                 "crystal_bow",
	SalveAmulet:                "salve_amulet",
	SalveAmuletEnchanted:       "salve_amulet_enchanted",
	SalveAmuletImbued:          "salve_amulet_imbued",
	SalveAmuletEnchantedImbued: "salve_amulet_enchanted_imbued",
	BlackMask:                  "black_mask",
	BlackMaskImbued:            "black_mask_imbued",
	VoidArmour:                 "void_armour",
	VoidHelmMelee:              "void_helm_melee",
	VoidHelmRanged:             "void_helm_ranged",
	VoidHelmMagic:              "void_helm_magic",
	RevenantMeleeWeapon:        "revenant_melee_weapon",
	RevenantRangedWeapon:       "revenant_ranged_weapon",
	RevenantMagicWeapon:        "revenant_magic_weapon",
	DragonHunterLance:          "dragon_hunter_lance",
	Arclight:                   "arclight",
	KerisPartisan:              "keris_partisan",
	BlisterwoodFlail:           "blisterwood_flail",
	BlisterwoodSickle:          "blisterwood_sickle",
	TzhaarMeleeWeapon:          "tzhaar_melee_weapon",
	InquisitorArmour:           "inquisitor_armour",
	BarroniteMace:              "barronite_mace",
	Silverlight:                "silverlight",
	IvandisFlail:               "ivandis_flail",
	LeadBladedBattleaxe:        "lead_bladed_battleaxe",
	ColossalBlade:              "colossal_blade",
	TwistedBow:                 "twisted_bow",
	DragonHunterCrossbow:       "dragon_hunter_crossbow",
	SmokeStaff:                 "smoke_staff",
	HarmonisedNightmareStaff:   "harmonised_nightmare_staff",
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

// UnmarshalYAML decodes an attribute from its snake_case identifier.
func (a *Attribute) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	attr, ok := attributesByName[name]
	if !ok {
		return fmt.Errorf("equipment: unknown attribute %q", name)
	}
	*a = attr
	return nil
}
