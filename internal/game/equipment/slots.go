package equipment

import "github.com/runetools/dpscalc/internal/game/stat"

// Slot is the tagged union over all equip locations. Concrete slot types
// identify themselves via SlotName and share the Equipment stat contract.
type Slot interface {
	// SlotName returns the slot identifier used in reference data.
	SlotName() string
	// Item returns the item occupying the slot.
	Item() Equipment
}

// Item returns the equipment itself, satisfying the Slot stat contract for
// every slot struct that embeds Equipment.
func (e Equipment) Item() Equipment { return e }

// Head is the head armour slot.
type Head struct{ Equipment }

// Cape is the cape slot.
type Cape struct{ Equipment }

// Neck is the amulet slot.
type Neck struct{ Equipment }

// Ammunition is the quiver slot.
type Ammunition struct{ Equipment }

// Shield is the off-hand slot.
type Shield struct{ Equipment }

// Body is the torso armour slot.
type Body struct{ Equipment }

// Legs is the leg armour slot.
type Legs struct{ Equipment }

// Hands is the glove slot.
type Hands struct{ Equipment }

// Feet is the boot slot.
type Feet struct{ Equipment }

// Ring is the ring slot.
type Ring struct{ Equipment }

func (Head) SlotName() string       { return "head" }
func (Cape) SlotName() string       { return "cape" }
func (Neck) SlotName() string       { return "neck" }
func (Ammunition) SlotName() string { return "ammunition" }
func (Shield) SlotName() string     { return "shield" }
func (Body) SlotName() string       { return "body" }
func (Legs) SlotName() string       { return "legs" }
func (Hands) SlotName() string      { return "hands" }
func (Feet) SlotName() string       { return "feet" }
func (Ring) SlotName() string       { return "ring" }

// EmptyShield returns the canonical empty off-hand.
func EmptyShield() Shield { return Shield{Empty()} }

// Equipped is a full loadout: one item per slot plus the wielded weapon
// state. Build it with NewEquipped so unoccupied slots hold canonical
// empties.
type Equipped struct {
	Head       Head
	Cape       Cape
	Neck       Neck
	Ammunition Ammunition
	Wielded    Wielded
	Body       Body
	Legs       Legs
	Hands      Hands
	Feet       Feet
	Ring       Ring
}

// NewEquipped returns a loadout with every slot empty and bare fists
// wielded.
func NewEquipped() Equipped {
	return Equipped{
		Head:       Head{Empty()},
		Cape:       Cape{Empty()},
		Neck:       Neck{Empty()},
		Ammunition: Ammunition{Empty()},
		Wielded:    DefaultWielded(),
		Body:       Body{Empty()},
		Legs:       Legs{Empty()},
		Hands:      Hands{Empty()},
		Feet:       Feet{Empty()},
		Ring:       Ring{Empty()},
	}
}

// TotalStats sums every slot's stat block, including the wielded weapon
// and shield.
func (e *Equipped) TotalStats() stat.Stats {
	total := e.Head.Stats.
		Add(e.Cape.Stats).
		Add(e.Neck.Stats).
		Add(e.Ammunition.Stats).
		Add(e.Wielded.Stats()).
		Add(e.Body.Stats).
		Add(e.Legs.Stats).
		Add(e.Hands.Stats).
		Add(e.Feet.Stats).
		Add(e.Ring.Stats)
	return total
}

// OrderedAttributes returns every equipped attribute in the fixed fold
// order: head, cape, neck, ammunition, wielded weapon, body, legs, hands,
// feet, ring. Truncating modifiers are not associative across
// denominators, so this order is part of the combat contract.
func (e *Equipped) OrderedAttributes() []Attribute {
	var attrs []Attribute
	attrs = append(attrs, e.Head.Attributes...)
	attrs = append(attrs, e.Cape.Attributes...)
	attrs = append(attrs, e.Neck.Attributes...)
	attrs = append(attrs, e.Ammunition.Attributes...)
	attrs = append(attrs, e.Wielded.Attributes()...)
	attrs = append(attrs, e.Body.Attributes...)
	attrs = append(attrs, e.Legs.Attributes...)
	attrs = append(attrs, e.Hands.Attributes...)
	attrs = append(attrs, e.Feet.Attributes...)
	attrs = append(attrs, e.Ring.Attributes...)
	return attrs
}

// HasAttribute reports whether any equipped slot carries the attribute.
func (e *Equipped) HasAttribute(a Attribute) bool {
	for _, attr := range e.OrderedAttributes() {
		if attr == a {
			return true
		}
	}
	return false
}
