package loader

import (
	"fmt"

	"github.com/runetools/dpscalc/internal/game/combat"
	"github.com/runetools/dpscalc/internal/game/equipment"
	"github.com/runetools/dpscalc/internal/game/prayer"
	"github.com/runetools/dpscalc/internal/game/spell"
)

// Registry holds all loaded equipment, prayer, spell, and enemy
// definitions indexed by name.
type Registry struct {
	equipment map[string]equipment.Slot
	prayers   map[string]prayer.Prayer
	spells    map[string]spell.Spell
	enemies   map[string]combat.Enemy
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		equipment: make(map[string]equipment.Slot),
		prayers:   make(map[string]prayer.Prayer),
		spells:    make(map[string]spell.Spell),
		enemies:   make(map[string]combat.Enemy),
	}
}

// RegisterEquipment adds s to the registry.
//
// Postcondition: Equipment(s.Item().Name) returns s; returns error if the
// name is already registered.
func (r *Registry) RegisterEquipment(s equipment.Slot) error {
	name := s.Item().Name
	if _, exists := r.equipment[name]; exists {
		return fmt.Errorf("loader: Registry.RegisterEquipment: name %q already registered", name)
	}
	r.equipment[name] = s
	return nil
}

// RegisterPrayer adds p to the registry.
func (r *Registry) RegisterPrayer(p prayer.Prayer) error {
	if _, exists := r.prayers[p.Name]; exists {
		return fmt.Errorf("loader: Registry.RegisterPrayer: name %q already registered", p.Name)
	}
	r.prayers[p.Name] = p
	return nil
}

// RegisterSpell adds s to the registry.
func (r *Registry) RegisterSpell(s spell.Spell) error {
	if _, exists := r.spells[s.Name]; exists {
		return fmt.Errorf("loader: Registry.RegisterSpell: name %q already registered", s.Name)
	}
	r.spells[s.Name] = s
	return nil
}

// RegisterEnemy adds e to the registry.
func (r *Registry) RegisterEnemy(e combat.Enemy) error {
	if _, exists := r.enemies[e.Name]; exists {
		return fmt.Errorf("loader: Registry.RegisterEnemy: name %q already registered", e.Name)
	}
	r.enemies[e.Name] = e
	return nil
}

// Equipment returns the slot-wrapped item with the given name.
func (r *Registry) Equipment(name string) (equipment.Slot, error) {
	s, ok := r.equipment[name]
	if !ok {
		return nil, fmt.Errorf("%w: equipment %q", ErrMissingEntry, name)
	}
	return s, nil
}

// Prayer returns the prayer with the given name.
func (r *Registry) Prayer(name string) (prayer.Prayer, error) {
	p, ok := r.prayers[name]
	if !ok {
		return prayer.Prayer{}, fmt.Errorf("%w: prayer %q", ErrMissingEntry, name)
	}
	return p, nil
}

// Spell returns the spell with the given name.
func (r *Registry) Spell(name string) (spell.Spell, error) {
	s, ok := r.spells[name]
	if !ok {
		return spell.Spell{}, fmt.Errorf("%w: spell %q", ErrMissingEntry, name)
	}
	return s, nil
}

// Enemy returns the enemy with the given name.
func (r *Registry) Enemy(name string) (combat.Enemy, error) {
	e, ok := r.enemies[name]
	if !ok {
		return combat.Enemy{}, fmt.Errorf("%w: enemy %q", ErrMissingEntry, name)
	}
	return e, nil
}
