// Package loader reads the YAML reference data (equipment, prayers,
// spells, enemies) and indexes it by name for the combat engine. Loaded
// data is read-only; concurrent lookups need no synchronization.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/runetools/dpscalc/internal/game/combat"
	"github.com/runetools/dpscalc/internal/game/equipment"
	"github.com/runetools/dpscalc/internal/game/prayer"
	"github.com/runetools/dpscalc/internal/game/spell"
	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

// ErrMissingEntry is returned when a lookup by name finds nothing in the
// loaded reference data.
var ErrMissingEntry = errors.New("loader: no entry with name")

// weaponRecord is the weapon sub-document of an equipment record.
type weaponRecord struct {
	Type         style.WeaponType       `yaml:"type"`
	AttackSpeed  stat.Ticks             `yaml:"attack_speed"`
	Range        stat.Tiles             `yaml:"range"`
	PoweredStaff equipment.PoweredStaff `yaml:"powered_staff"`
}

// equipmentRecord is one item definition as written in equipment.yaml.
type equipmentRecord struct {
	Name       string                `yaml:"name"`
	Slot       string                `yaml:"slot"`
	Stats      stat.Stats            `yaml:"stats"`
	Attributes []equipment.Attribute `yaml:"attributes"`
	Weapon     *weaponRecord         `yaml:"weapon"`
}

var armourSlots = map[string]struct{}{
	"head": {}, "cape": {}, "neck": {}, "ammunition": {}, "shield": {},
	"body": {}, "legs": {}, "hands": {}, "feet": {}, "ring": {},
}

var weaponSlots = map[string]struct{}{
	"weapon_one_handed": {}, "weapon_two_handed": {},
}

// Validate checks the record's internal consistency, collecting every
// violation.
func (r *equipmentRecord) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	_, armour := armourSlots[r.Slot]
	_, weapon := weaponSlots[r.Slot]
	if !armour && !weapon {
		errs = append(errs, fmt.Errorf("slot %q is not a valid equipment slot", r.Slot))
	}
	if weapon && r.Weapon == nil {
		errs = append(errs, errors.New("weapon slots require a weapon section"))
	}
	if armour && r.Weapon != nil {
		errs = append(errs, fmt.Errorf("slot %q must not carry a weapon section", r.Slot))
	}
	if r.Weapon != nil && r.Weapon.AttackSpeed < 1 {
		errs = append(errs, errors.New("weapon attack_speed must be >= 1"))
	}
	if r.Weapon != nil && r.Weapon.Range < 1 {
		errs = append(errs, errors.New("weapon range must be >= 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment validation failed: %v", errs)
	}
	return nil
}

// slot converts a validated record into its concrete slot value.
func (r *equipmentRecord) slot() equipment.Slot {
	item := equipment.Equipment{Name: r.Name, Stats: r.Stats, Attributes: r.Attributes}
	switch r.Slot {
	case "head":
		return equipment.Head{Equipment: item}
	case "cape":
		return equipment.Cape{Equipment: item}
	case "neck":
		return equipment.Neck{Equipment: item}
	case "ammunition":
		return equipment.Ammunition{Equipment: item}
	case "shield":
		return equipment.Shield{Equipment: item}
	case "body":
		return equipment.Body{Equipment: item}
	case "legs":
		return equipment.Legs{Equipment: item}
	case "hands":
		return equipment.Hands{Equipment: item}
	case "feet":
		return equipment.Feet{Equipment: item}
	case "ring":
		return equipment.Ring{Equipment: item}
	}
	weapon := equipment.Weapon{
		Equipment: item,
		WeaponStats: equipment.WeaponStats{
			Type:        r.Weapon.Type,
			AttackSpeed: r.Weapon.AttackSpeed,
			Range:       r.Weapon.Range,
		},
		PoweredStaff: r.Weapon.PoweredStaff,
	}
	if r.Slot == "weapon_two_handed" {
		return equipment.WeaponTwoHanded{Weapon: weapon}
	}
	return equipment.WeaponOneHanded{Weapon: weapon}
}

// Load reads equipment.yaml, prayers.yaml, spells.yaml, and enemies.yaml
// from dir and returns the indexed registry.
//
// Precondition: dir must be a readable directory containing all four
// files.
func Load(dir string) (*Registry, error) {
	registry := NewRegistry()

	var equipmentRecords []equipmentRecord
	if err := readYAML(filepath.Join(dir, "equipment.yaml"), &equipmentRecords); err != nil {
		return nil, err
	}
	for i := range equipmentRecords {
		record := &equipmentRecords[i]
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("loader: equipment %q: %w", record.Name, err)
		}
		if err := registry.RegisterEquipment(record.slot()); err != nil {
			return nil, err
		}
	}

	var prayers []prayer.Prayer
	if err := readYAML(filepath.Join(dir, "prayers.yaml"), &prayers); err != nil {
		return nil, err
	}
	for _, p := range prayers {
		if p.Name == "" {
			return nil, errors.New("loader: prayer name must not be empty")
		}
		if err := registry.RegisterPrayer(p); err != nil {
			return nil, err
		}
	}

	var spells []spell.Spell
	if err := readYAML(filepath.Join(dir, "spells.yaml"), &spells); err != nil {
		return nil, err
	}
	for _, s := range spells {
		if s.Name == "" {
			return nil, errors.New("loader: spell name must not be empty")
		}
		if err := registry.RegisterSpell(s); err != nil {
			return nil, err
		}
	}

	var enemies []combat.Enemy
	if err := readYAML(filepath.Join(dir, "enemies.yaml"), &enemies); err != nil {
		return nil, err
	}
	for _, e := range enemies {
		if e.Name == "" {
			return nil, errors.New("loader: enemy name must not be empty")
		}
		if e.Size < 1 {
			return nil, fmt.Errorf("loader: enemy %q: size must be >= 1", e.Name)
		}
		if err := registry.RegisterEnemy(e); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: cannot read file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("loader: cannot parse file %q: %w", path, err)
	}
	return nil
}
