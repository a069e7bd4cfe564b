package combat

import (
	"github.com/runetools/dpscalc/internal/game/equipment"
	"github.com/runetools/dpscalc/internal/game/stat"
)

// rollModifier rewrites an accuracy roll or max hit based on player and
// enemy state. Modifiers without an effect on the value return it
// unchanged.
type rollModifier func(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar

// speedModifier rewrites the attack speed. Only weapon attributes are
// consulted for speed, so no enemy is involved.
type speedModifier func(speed stat.Ticks, player *Player) stat.Ticks

func identityRoll(value stat.Scalar, _ *Player, _ *Enemy) stat.Scalar { return value }

func identitySpeed(speed stat.Ticks, _ *Player) stat.Ticks { return speed }

// accuracyModifier returns the accuracy-roll rewrite for the attribute.
// Attributes with no accuracy effect map to the identity.
func accuracyModifier(attribute equipment.Attribute) rollModifier {
	switch attribute {
	case equipment.DragonHunterCrossbow:
		return dragonHunterCrossbowAccuracy
	case equipment.SalveAmulet:
		return salveAmulet
	case equipment.SalveAmuletEnchanted:
		return salveAmuletEnchanted
	case equipment.SalveAmuletImbued:
		return salveAmuletImbued
	case equipment.SalveAmuletEnchantedImbued:
		return salveAmuletEnchantedImbued
	case equipment.BlackMask:
		return blackMask
	case equipment.BlackMaskImbued:
		return blackMaskImbued
	case equipment.RevenantMeleeWeapon, equipment.RevenantRangedWeapon, equipment.RevenantMagicWeapon:
		return revenantWeapon(attribute)
	case equipment.Arclight:
		return arclight
	case equipment.BlisterwoodFlail, equipment.BlisterwoodSickle:
		return blisterwoodAccuracy
	default:
		return identityRoll
	}
}

// maxHitModifier returns the max-hit rewrite for the attribute.
// Attributes with no max-hit effect map to the identity.
func maxHitModifier(attribute equipment.Attribute) rollModifier {
	switch attribute {
	case equipment.DragonHunterCrossbow:
		return dragonHunterCrossbowMaxHit
	case equipment.SalveAmulet:
		return salveAmulet
	case equipment.SalveAmuletEnchanted:
		return salveAmuletEnchanted
	case equipment.SalveAmuletImbued:
		return salveAmuletImbued
	case equipment.SalveAmuletEnchantedImbued:
		return salveAmuletEnchantedImbued
	case equipment.BlackMask:
		return blackMask
	case equipment.BlackMaskImbued:
		return blackMaskImbued
	case equipment.RevenantMeleeWeapon, equipment.RevenantRangedWeapon, equipment.RevenantMagicWeapon:
		return revenantWeapon(attribute)
	case equipment.Arclight:
		return arclight
	case equipment.BlisterwoodFlail:
		return blisterwoodFlailMaxHit
	case equipment.BlisterwoodSickle:
		return blisterwoodSickleMaxHit
	case equipment.ColossalBlade:
		return colossalBlade
	default:
		return identityRoll
	}
}

// attackSpeedModifier returns the attack-speed rewrite for the attribute.
func attackSpeedModifier(attribute equipment.Attribute) speedModifier {
	switch attribute {
	case equipment.HarmonisedNightmareStaff:
		return harmonisedNightmareStaff
	default:
		return identitySpeed
	}
}

// applyAccuracyModifiers folds the attribute chain over an accuracy roll
// in equipped slot order.
func applyAccuracyModifiers(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	for _, attribute := range player.equipped.OrderedAttributes() {
		value = accuracyModifier(attribute)(value, player, enemy)
	}
	return value
}

// applyMaxHitModifiers folds the attribute chain over a max hit in
// equipped slot order.
func applyMaxHitModifiers(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	for _, attribute := range player.equipped.OrderedAttributes() {
		value = maxHitModifier(attribute)(value, player, enemy)
	}
	return value
}

// applyAttackSpeedModifiers folds the wielded weapon's attributes over the
// attack speed.
func applyAttackSpeedModifiers(speed stat.Ticks, player *Player) stat.Ticks {
	for _, attribute := range player.equipped.Wielded.Attributes() {
		speed = attackSpeedModifier(attribute)(speed, player)
	}
	return speed
}

func dragonHunterCrossbowAccuracy(value stat.Scalar, _ *Player, enemy *Enemy) stat.Scalar {
	if enemy.HasAttribute(Dragon) {
		return value.MulFraction(stat.Fraction{Dividend: 13, Divisor: 10})
	}
	return value
}

func dragonHunterCrossbowMaxHit(value stat.Scalar, _ *Player, enemy *Enemy) stat.Scalar {
	if enemy.HasAttribute(Dragon) {
		return value.MulFraction(stat.Fraction{Dividend: 5, Divisor: 4})
	}
	return value
}

func salveAmulet(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Undead) {
		return value.MulFraction(stat.Fraction{Dividend: 7, Divisor: 6})
	}
	return value
}

func salveAmuletEnchanted(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Undead) {
		return value.MulFraction(stat.Fraction{Dividend: 6, Divisor: 5})
	}
	return value
}

func salveAmuletImbued(value stat.Scalar, _ *Player, enemy *Enemy) stat.Scalar {
	if enemy.HasAttribute(Undead) {
		return value.MulFraction(stat.Fraction{Dividend: 7, Divisor: 6})
	}
	return value
}

func salveAmuletEnchantedImbued(value stat.Scalar, _ *Player, enemy *Enemy) stat.Scalar {
	if enemy.HasAttribute(Undead) {
		return value.MulFraction(stat.Fraction{Dividend: 6, Divisor: 5})
	}
	return value
}

// hasSalveVariant reports whether any salve amulet is equipped, which
// suppresses the black mask bonus.
func hasSalveVariant(player *Player) bool {
	return player.equipped.HasAttribute(equipment.SalveAmulet) ||
		player.equipped.HasAttribute(equipment.SalveAmuletEnchanted) ||
		hasImbuedSalveVariant(player)
}

func hasImbuedSalveVariant(player *Player) bool {
	return player.equipped.HasAttribute(equipment.SalveAmuletImbued) ||
		player.equipped.HasAttribute(equipment.SalveAmuletEnchantedImbued)
}

func blackMask(value stat.Scalar, player *Player, _ *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && player.extra.OnSlayerTask && !hasSalveVariant(player) {
		return value.MulFraction(stat.Fraction{Dividend: 7, Divisor: 6})
	}
	return value
}

func blackMaskImbued(value stat.Scalar, player *Player, _ *Enemy) stat.Scalar {
	if !player.extra.OnSlayerTask {
		return value
	}
	styleType := player.styleType()
	switch {
	case styleType.IsMelee() && !hasSalveVariant(player):
		return value.MulFraction(stat.Fraction{Dividend: 7, Divisor: 6})
	case (styleType.IsRanged() || styleType.IsMagic()) && !hasImbuedSalveVariant(player):
		return value.MulFraction(stat.Fraction{Dividend: 23, Divisor: 20})
	default:
		return value
	}
}

// revenantWeapon builds the wilderness-weapon rewrite for one of the
// three style-matched revenant attributes.
func revenantWeapon(attribute equipment.Attribute) rollModifier {
	return func(value stat.Scalar, player *Player, _ *Enemy) stat.Scalar {
		if !player.extra.InWilderness {
			return value
		}
		styleType := player.styleType()
		matched := (attribute == equipment.RevenantMeleeWeapon && styleType.IsMelee()) ||
			(attribute == equipment.RevenantRangedWeapon && styleType.IsRanged()) ||
			(attribute == equipment.RevenantMagicWeapon && styleType.IsMagic())
		if matched {
			return value.MulFraction(stat.Fraction{Dividend: 3, Divisor: 2})
		}
		return value
	}
}

func arclight(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Demon) {
		return value.MulFraction(stat.Fraction{Dividend: 17, Divisor: 10})
	}
	return value
}

func blisterwoodAccuracy(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Vampyre) {
		return value.MulFraction(stat.Fraction{Dividend: 21, Divisor: 20})
	}
	return value
}

func blisterwoodFlailMaxHit(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Vampyre) {
		return value.MulFraction(stat.Fraction{Dividend: 5, Divisor: 4})
	}
	return value
}

func blisterwoodSickleMaxHit(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if player.styleType().IsMelee() && enemy.HasAttribute(Vampyre) {
		return value.MulFraction(stat.Fraction{Dividend: 23, Divisor: 20})
	}
	return value
}

func colossalBlade(value stat.Scalar, player *Player, enemy *Enemy) stat.Scalar {
	if !player.styleType().IsMelee() {
		return value
	}
	size := stat.Min(enemy.Size, 5)
	return value + 2*stat.Scalar(size)
}

func harmonisedNightmareStaff(speed stat.Ticks, player *Player) stat.Ticks {
	if player.spell != nil {
		return 4
	}
	return speed
}
