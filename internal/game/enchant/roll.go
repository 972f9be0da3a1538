package enchant

import (
	"math"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/model"
)

// rollEnchantCount rolls chance+bonus against an increasing threshold.
// Every success adds one enchantment, capped at MaxEnchants.
func rollEnchantCount(src dice.Source, rs RollSettings, bonus int) int {
	if rs.MaxEnchants <= 0 {
		return 0
	}

	count := 0
	needed := rs.NeededRoll
	roll := dice.Chance(src) + bonus
	for roll >= needed {
		count++
		if count >= rs.MaxEnchants {
			break
		}
		needed += rs.ExtraNeededPerRoll
		roll = dice.Chance(src) + bonus
	}
	return count
}

// rollQuality upgrades quality one tier per successful roll, up to Legendary.
// Legendary and above are returned unchanged without consuming a roll.
func rollQuality(src dice.Source, current model.Quality, bonus RankBonus, up UptierSettings) model.Quality {
	if current >= model.QualityLegendary {
		return current
	}

	q := current
	needed := up.MinRoll + int(current)*up.AddPerRarity
	roll := scaledChance(src, bonus.QualityRollMultiplier)
	for roll >= needed && q < model.QualityLegendary {
		q++
		needed += up.AddPerRarity
		roll = scaledChance(src, bonus.QualityRollMultiplier)
	}
	return q
}

func scaledChance(src dice.Source, mult float64) int {
	return int(math.Round(float64(dice.Chance(src)) * mult))
}
