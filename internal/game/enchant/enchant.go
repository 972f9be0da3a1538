// Package enchant rolls random enchantments for dropped equipment.
//
// Generation flow for one item:
//  1. Roll the point budget from the item level (point curve ± variance)
//  2. Scale it by the quality tier multiplier
//  3. Roll the enchant count (rank bonus added to every roll)
//  4. Split the budget across the enchantments
//  5. Pick distinct stats valid for the item class/subclass
//  6. Apply per-stat and per-class multipliers
//
// Quality upgrades (RollQuality) are rolled separately, before generation,
// because the upgraded quality selects the roll settings.
package enchant

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/game/pointcurve"
	"github.com/udisondev/itemforge/internal/game/stats"
	"github.com/udisondev/itemforge/internal/model"
)

var (
	// ErrNoRollSettings: для качества предмета нет настроек броска.
	ErrNoRollSettings = errors.New("no roll settings for quality")
	// ErrNoEnchantments is returned when the count roll produced nothing.
	ErrNoEnchantments = errors.New("no enchantments rolled")
	// ErrInsufficientBudget is returned when points cannot cover the per-slot minimum.
	ErrInsufficientBudget = errors.New("insufficient point budget")
	// ErrNotEnoughStats is returned when fewer valid stats exist than enchantments rolled.
	ErrNotEnoughStats = errors.New("not enough valid stats")
)

// Options configures a Generator. Zero fields fall back to built-in defaults.
type Options struct {
	Registry        *stats.Registry
	Curve           *pointcurve.Curve
	Rolls           map[model.Quality]RollSettings
	RankBonuses     RankBonuses
	Uptier          *UptierSettings
	VariancePercent *int
	AllowRepeats    bool
	Source          dice.Source
}

// Generator rolls quality upgrades and enchantments.
// Read-only after construction; concurrent use is safe when Source is.
type Generator struct {
	registry     *stats.Registry
	curve        *pointcurve.Curve
	rolls        map[model.Quality]RollSettings
	ranks        RankBonuses
	uptier       UptierSettings
	variance     int
	allowRepeats bool
	src          dice.Source
}

// NewGenerator creates a generator.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		registry:     opts.Registry,
		curve:        opts.Curve,
		rolls:        opts.Rolls,
		ranks:        opts.RankBonuses,
		uptier:       DefaultUptier,
		variance:     pointcurve.DefaultVariancePercent,
		allowRepeats: opts.AllowRepeats,
		src:          opts.Source,
	}
	if g.registry == nil {
		g.registry = stats.NewDefaultRegistry()
	}
	if g.curve == nil {
		g.curve = pointcurve.NewDefault()
	}
	if g.rolls == nil {
		g.rolls = DefaultRollSettings()
	}
	if g.ranks == nil {
		g.ranks = DefaultRankBonuses()
	}
	if opts.Uptier != nil {
		g.uptier = *opts.Uptier
	}
	if opts.VariancePercent != nil {
		g.variance = *opts.VariancePercent
	}
	if g.src == nil {
		g.src = dice.Global()
	}
	return g
}

// Registry returns the stat registry used by the generator.
func (g *Generator) Registry() *stats.Registry {
	return g.registry
}

// Curve returns the point curve used by the generator.
func (g *Generator) Curve() *pointcurve.Curve {
	return g.curve
}

// Result describes the enchantments rolled for one item.
type Result struct {
	Enchantments []model.CustomStat
	// Perfect is true when variance hit its maximum and the count hit MaxEnchants.
	Perfect     bool
	Points      pointcurve.Points
	TotalPoints int
	Settings    RollSettings
}

// RollQuality rolls quality upgrades for an item dropped by a creature of rank.
func (g *Generator) RollQuality(current model.Quality, rank model.CreatureRank) model.Quality {
	return rollQuality(g.src, current, g.ranks.For(rank), g.uptier)
}

// RollEnchantCount rolls how many enchantments an item of quality q gets.
// Unknown qualities get 0.
func (g *Generator) RollEnchantCount(q model.Quality, rank model.CreatureRank) int {
	rs, ok := g.rolls[q]
	if !ok {
		return 0
	}
	return rollEnchantCount(g.src, rs, g.ranks.For(rank).EnchantRollBonus)
}

// Generate rolls enchantments for item (already quality-rolled).
// Item is not modified. On error the Result is empty.
func (g *Generator) Generate(item *model.ItemTemplate, rank model.CreatureRank) (Result, error) {
	rs, ok := g.rolls[item.Quality]
	if !ok {
		return Result{}, fmt.Errorf("item %d quality %s: %w", item.Entry, item.Quality, ErrNoRollSettings)
	}

	points := g.curve.Points(g.src, int(item.ItemLevel), g.variance)
	total := int(math.Round(float64(points.Points) * rs.PointMultiplier))

	count := rollEnchantCount(g.src, rs, g.ranks.For(rank).EnchantRollBonus)
	if count == 0 {
		return Result{}, ErrNoEnchantments
	}

	split, err := Distribute(g.src, total, count, 0)
	if err != nil {
		return Result{}, fmt.Errorf("distributing %d points: %w", total, err)
	}

	pair := item.ClassPair()
	picked := PickStats(g.src, g.registry, count, pair, g.allowRepeats)
	if len(picked) < count {
		return Result{}, fmt.Errorf("item %d %s: wanted %d, got %d: %w",
			item.Entry, pair, count, len(picked), ErrNotEnoughStats)
	}

	classMult := g.registry.ItemClassMultiplier(pair)
	enchantments := make([]model.CustomStat, 0, count)
	index := make(map[model.Stat]int, count)
	for i, stat := range picked {
		settings, ok := g.registry.SettingsFor(stat)
		if !ok {
			slog.Warn("stat picked without settings", "stat", stat, "item", item.Entry)
			continue
		}
		value := int32(math.Round(float64(split[i]) * settings.MultiplierFor(pair) * classMult))

		if j, dup := index[stat]; dup {
			enchantments[j].Value += value
			continue
		}
		index[stat] = len(enchantments)
		enchantments = append(enchantments, model.CustomStat{Stat: stat, Value: value})
	}

	res := Result{
		Enchantments: enchantments,
		Perfect:      points.HasMaxVariance && len(enchantments) == rs.MaxEnchants,
		Points:       points,
		TotalPoints:  total,
		Settings:     rs,
	}

	slog.Debug("enchantments rolled",
		"item", item.Entry,
		"quality", item.Quality,
		"level", item.ItemLevel,
		"points", points.Points,
		"total", total,
		"count", count,
		"perfect", res.Perfect)

	return res, nil
}
