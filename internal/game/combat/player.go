// Package combat implements the combat resolution engine: the player and
// enemy aggregates, the equipment attribute modifier chain, and the
// accuracy / max hit / damage-per-second formulas. All roll computation is
// truncating integer arithmetic; floating point appears only in the final
// hit-rate and DPS blend.
package combat

import (
	"fmt"

	"github.com/runetools/dpscalc/internal/game/equipment"
	"github.com/runetools/dpscalc/internal/game/prayer"
	"github.com/runetools/dpscalc/internal/game/spell"
	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/game/style"
)

// spellCastTicks is the cast delay when attacking with a spell rather
// than a weapon.
const spellCastTicks stat.Ticks = 5

// Player is the attacking combatant: levels, loadout, active prayers, and
// the selected combat style or spell. Setters return the receiver for
// chaining; a Player is built and mutated by a single caller.
type Player struct {
	levels       Levels
	extra        Extra
	equipped     equipment.Equipped
	combatOption style.CombatOption
	prayers      prayer.Stats
	spell        *spell.Spell
}

// NewPlayer returns an unarmed player with default levels, punching with
// the first unarmed combat option.
//
// Postcondition: every equipment slot holds a canonical empty item.
func NewPlayer() *Player {
	p := &Player{
		levels:   DefaultLevels(),
		extra:    DefaultExtra(),
		equipped: equipment.NewEquipped(),
	}
	p.resetCombatOption()
	return p
}

func (p *Player) resetCombatOption() {
	p.combatOption = p.equipped.Wielded.CombatOptions()[0]
}

// Equip places the item into its slot. Changing the weapon or shield
// resets the combat style to the first option of the resulting weapon.
func (p *Player) Equip(slot equipment.Slot) *Player {
	switch s := slot.(type) {
	case equipment.Head:
		p.equipped.Head = s
	case equipment.Cape:
		p.equipped.Cape = s
	case equipment.Neck:
		p.equipped.Neck = s
	case equipment.Ammunition:
		p.equipped.Ammunition = s
	case equipment.Body:
		p.equipped.Body = s
	case equipment.Legs:
		p.equipped.Legs = s
	case equipment.Hands:
		p.equipped.Hands = s
	case equipment.Feet:
		p.equipped.Feet = s
	case equipment.Ring:
		p.equipped.Ring = s
	case equipment.WeaponOneHanded:
		p.equipped.Wielded = p.equipped.Wielded.WithWeaponOneHanded(s)
		p.resetCombatOption()
	case equipment.WeaponTwoHanded:
		p.equipped.Wielded = p.equipped.Wielded.WithWeaponTwoHanded(s)
		p.resetCombatOption()
	case equipment.Shield:
		p.equipped.Wielded = p.equipped.Wielded.WithShield(s)
		p.resetCombatOption()
	}
	return p
}

// SetLevels replaces the player's skill levels.
func (p *Player) SetLevels(levels Levels) *Player {
	p.levels = levels
	return p
}

// SetExtra replaces the player's situational state.
func (p *Player) SetExtra(extra Extra) *Player {
	p.extra = extra
	return p
}

// ActivatePrayer accumulates the prayer's percentage boosts onto the
// player's active set.
func (p *Player) ActivatePrayer(pr prayer.Prayer) *Player {
	p.prayers = p.prayers.Add(pr.Stats)
	return p
}

// SelectSpell selects the spell to cast; any previous selection is
// replaced. A selected spell forces the magic combat pipeline.
func (p *Player) SelectSpell(s spell.Spell) *Player {
	p.spell = &s
	return p
}

// ChangeCombatStyle selects option index from the wielded weapon's
// catalog entry.
//
// Precondition: 0 <= index < len(options) for the current weapon.
func (p *Player) ChangeCombatStyle(index int) error {
	options := p.equipped.Wielded.CombatOptions()
	if index < 0 || index >= len(options) {
		return fmt.Errorf("%w: %d of %d options", ErrInvalidStyleIndex, index, len(options))
	}
	p.combatOption = options[index]
	return nil
}

// CombatOption returns the currently selected fighting style.
func (p *Player) CombatOption() style.CombatOption { return p.combatOption }

// Equipped returns the current loadout.
func (p *Player) Equipped() *equipment.Equipped { return &p.equipped }

// Levels returns the player's skill levels.
func (p *Player) Levels() Levels { return p.levels }

// PrayerStats returns the accumulated boosts of every active prayer.
func (p *Player) PrayerStats() prayer.Stats { return p.prayers }

// Spell returns the selected spell, or nil.
func (p *Player) Spell() *spell.Spell { return p.spell }

// styleType is the damage type the next attack uses: a selected spell
// forces Magic, otherwise the combat option decides.
func (p *Player) styleType() style.Type {
	if p.spell != nil {
		return style.Magic
	}
	return p.combatOption.Type
}

// MaxAccuracyRoll computes the player's accuracy roll against the enemy,
// including style boosts, prayers, stat bonuses, and the attribute
// modifier chain.
func (p *Player) MaxAccuracyRoll(enemy *Enemy) (stat.Scalar, error) {
	boost, err := p.combatOption.InvisibleBoost()
	if err != nil {
		return 0, err
	}
	total := p.equipped.TotalStats()

	var roll stat.Scalar
	switch styleType := p.styleType(); styleType {
	case style.Stab, style.Slash, style.Crush:
		effective := p.levels.Attack.MulPercentage(p.prayers.MeleeAccuracy) + boost.Attack + 8
		var bonus stat.Scalar
		switch styleType {
		case style.Stab:
			bonus = total.Attack.Stab
		case style.Slash:
			bonus = total.Attack.Slash
		case style.Crush:
			bonus = total.Attack.Crush
		}
		roll = effective * (bonus + 64)
	case style.Ranged:
		effective := p.levels.Ranged.MulPercentage(p.prayers.RangedAccuracy) + boost.Ranged + 8
		roll = effective * (total.Attack.Ranged + 64)
	case style.Magic:
		effective := p.levels.Magic.MulPercentage(p.prayers.MagicAccuracy) + boost.Magic + 8
		if p.spell != nil {
			effective++
		}
		roll = effective * (total.Attack.Magic + 64)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnimplementedStyle, styleType)
	}
	return applyAccuracyModifiers(roll, p, enemy), nil
}

// MaxHit computes the player's maximum hit against the enemy, including
// style boosts, prayers, stat bonuses, and the attribute modifier chain.
func (p *Player) MaxHit(enemy *Enemy) (stat.Scalar, error) {
	boost, err := p.combatOption.InvisibleBoost()
	if err != nil {
		return 0, err
	}
	total := p.equipped.TotalStats()

	var maxHit stat.Scalar
	switch styleType := p.styleType(); {
	case styleType.IsMelee():
		effective := p.levels.Strength.MulPercentage(p.prayers.MeleeDamage) + boost.Strength + 8
		maxHit = (effective*(total.Damage.Strength+64) + 320) / 640
	case styleType.IsRanged():
		effective := p.levels.Ranged.MulPercentage(p.prayers.RangedDamage) + boost.Ranged + 8
		maxHit = (effective*(total.Damage.Ranged+64) + 320) / 640
	case styleType.IsMagic():
		base, err := p.magicBaseMaxHit()
		if err != nil {
			return 0, err
		}
		maxHit = base.MulPercentage(total.Damage.Magic)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnimplementedStyle, styleType)
	}
	return applyMaxHitModifiers(maxHit, p, enemy), nil
}

// magicBaseMaxHit is the pre-bonus magic max hit: the powered staff's
// formula when one is wielded, otherwise the selected spell's base.
func (p *Player) magicBaseMaxHit() (stat.Scalar, error) {
	if staff := p.equipped.Wielded.PoweredStaff(); staff != equipment.NotPowered {
		return staff.MaxHit(p.levels.Magic), nil
	}
	if p.spell != nil {
		return p.spell.MaxHit, nil
	}
	return 0, fmt.Errorf("%w: magic without a spell or powered staff", ErrUnimplementedStyle)
}

// AttackSpeed returns the ticks between attacks: the weapon's
// style-adjusted speed, or the fixed cast delay when a spell is selected,
// both subject to the weapon attribute chain.
func (p *Player) AttackSpeed() (stat.Ticks, error) {
	speed := spellCastTicks
	if p.spell == nil {
		var err error
		speed, err = p.equipped.Wielded.AttackSpeed(p.combatOption)
		if err != nil {
			return 0, err
		}
	}
	return applyAttackSpeedModifiers(speed, p), nil
}

// DPS computes the expected damage per second against the enemy: compare
// accuracy and defence rolls into a hit rate, halve the max hit for the
// expected damage of a uniform roll, and divide by the attack interval.
func (p *Player) DPS(enemy *Enemy) (float64, error) {
	accuracyRoll, err := p.MaxAccuracyRoll(enemy)
	if err != nil {
		return 0, err
	}
	defenceRoll, err := enemy.MaxDefenceRoll(p.styleType())
	if err != nil {
		return 0, err
	}
	maxHit, err := p.MaxHit(enemy)
	if err != nil {
		return 0, err
	}
	speed, err := p.AttackSpeed()
	if err != nil {
		return 0, err
	}

	var hitRate float64
	if defenceRoll > accuracyRoll {
		hitRate = 0.5 * float64(accuracyRoll) / float64(defenceRoll)
	} else {
		hitRate = 1 - 0.5*float64(defenceRoll)/float64(accuracyRoll)
	}
	damagePerHit := hitRate * float64(maxHit) / 2
	return damagePerHit / float64(speed) / stat.SecondsPerTick, nil
}
