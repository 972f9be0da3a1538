package enchant

import "github.com/udisondev/itemforge/internal/model"

// RollSettings controls enchant count and point budget for one quality tier.
type RollSettings struct {
	NeededRoll         int     // first threshold on a 0..99 chance (+rank bonus)
	ExtraNeededPerRoll int     // threshold increase after each success
	MaxEnchants        int     // cap on enchant count; 0 disables enchanting
	PointMultiplier    float64 // scales the point-curve budget
}

// RankBonus: бонусы к броскам от ранга существа.
type RankBonus struct {
	QualityRollMultiplier float64 // multiplies the quality-upgrade roll
	EnchantRollBonus      int     // added to every enchant-count roll
}

// NeutralRankBonus applies when a rank has no configured bonus.
var NeutralRankBonus = RankBonus{QualityRollMultiplier: 1.0}

// RankBonuses maps creature rank to its roll bonus.
type RankBonuses map[model.CreatureRank]RankBonus

// For returns the bonus for rank, NeutralRankBonus if absent.
func (b RankBonuses) For(rank model.CreatureRank) RankBonus {
	if bonus, ok := b[rank]; ok {
		return bonus
	}
	return NeutralRankBonus
}

// UptierSettings controls the quality upgrade roll.
// Threshold for quality q starts at MinRoll + q*AddPerRarity.
type UptierSettings struct {
	MinRoll      int
	AddPerRarity int
}

// DefaultUptier: 75 + 5 per quality tier.
var DefaultUptier = UptierSettings{MinRoll: 75, AddPerRarity: 5}

// DefaultRollSettings returns the built-in per-quality table.
func DefaultRollSettings() map[model.Quality]RollSettings {
	return map[model.Quality]RollSettings{
		model.QualityPoor:      {NeededRoll: 90, ExtraNeededPerRoll: 101, MaxEnchants: 1, PointMultiplier: 0.25},
		model.QualityNormal:    {NeededRoll: 90, ExtraNeededPerRoll: 101, MaxEnchants: 1, PointMultiplier: 0.75},
		model.QualityUncommon:  {NeededRoll: 70, ExtraNeededPerRoll: 25, MaxEnchants: 2, PointMultiplier: 1.0},
		model.QualityRare:      {NeededRoll: 50, ExtraNeededPerRoll: 22, MaxEnchants: 3, PointMultiplier: 2.0},
		model.QualityEpic:      {NeededRoll: 30, ExtraNeededPerRoll: 30, MaxEnchants: 3, PointMultiplier: 3.0},
		model.QualityLegendary: {NeededRoll: 0, ExtraNeededPerRoll: 45, MaxEnchants: 3, PointMultiplier: 5.0},
	}
}

// DefaultRankBonuses returns the built-in per-rank bonuses.
func DefaultRankBonuses() RankBonuses {
	return RankBonuses{
		model.RankNormal:    {QualityRollMultiplier: 1.0, EnchantRollBonus: 0},
		model.RankElite:     {QualityRollMultiplier: 1.2, EnchantRollBonus: 25},
		model.RankRareElite: {QualityRollMultiplier: 1.25, EnchantRollBonus: 35},
		model.RankBoss:      {QualityRollMultiplier: 1.35, EnchantRollBonus: 50},
		model.RankRare:      {QualityRollMultiplier: 1.1, EnchantRollBonus: 15},
	}
}
