package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/itemforge/internal/constants"
	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/game/naming"
	"github.com/udisondev/itemforge/internal/game/pointcurve"
	"github.com/udisondev/itemforge/internal/game/stats"
	"github.com/udisondev/itemforge/internal/model"
)

// DefaultIDStart: первый entry для сгенерированных шаблонов.
const DefaultIDStart = constants.ItemCreationIDStart

// Generation holds the tunable tables of the enchantment generator.
type Generation struct {
	Curve           CurveConfig `yaml:"curve"`
	VariancePercent int         `yaml:"variance_percent" validate:"min=0,max=100"`
	IDStart         int32       `yaml:"id_start" validate:"gt=0"`

	AllowRepeatStats bool   `yaml:"allow_repeat_stats"`
	PerfectPrefix    string `yaml:"perfect_prefix"`
	PrefixesOnly     bool   `yaml:"prefixes_only"`

	Uptier      UptierConfig      `yaml:"uptier"`
	Rolls       []RollConfig      `yaml:"rolls" validate:"dive"`
	RankBonuses []RankBonusConfig `yaml:"rank_bonuses" validate:"dive"`
	Stats       StatsConfig       `yaml:"stats"`
}

// CurveConfig: параметры кривой очков.
type CurveConfig struct {
	Steepness    float64 `yaml:"steepness" validate:"gte=0"`
	GrowthFactor float64 `yaml:"growth_factor" validate:"gt=0"`
	Baseline     float64 `yaml:"baseline"`
	MaxLevel     int     `yaml:"max_level" validate:"min=1"`
}

// UptierConfig: порог апгрейда качества.
type UptierConfig struct {
	MinRoll      int `yaml:"min_roll" validate:"min=0"`
	AddPerRarity int `yaml:"add_per_rarity" validate:"min=0"`
}

// RollConfig is one row of the per-quality roll table.
type RollConfig struct {
	Quality            model.Quality `yaml:"quality"`
	NeededRoll         int           `yaml:"needed_roll"`
	ExtraNeededPerRoll int           `yaml:"extra_needed_per_roll"`
	MaxEnchants        int           `yaml:"max_enchants" validate:"min=0"`
	PointMultiplier    float64       `yaml:"point_multiplier" validate:"gte=0"`
}

// RankBonusConfig is one row of the creature rank bonus table.
type RankBonusConfig struct {
	Rank                  model.CreatureRank `yaml:"rank"`
	QualityRollMultiplier float64            `yaml:"quality_roll_multiplier" validate:"gte=0"`
	EnchantRollBonus      int                `yaml:"enchant_roll_bonus"`
}

// StatsConfig configures the stat registry. Nil lists keep the built-in tables.
type StatsConfig struct {
	Enchantable          []model.Stat            `yaml:"enchantable"`
	Multipliers          []StatMultiplierConfig  `yaml:"multipliers" validate:"omitempty,dive"`
	Requirements         []StatRequirementConfig `yaml:"requirements" validate:"omitempty,dive"`
	ItemClassMultipliers []ClassMultiplierConfig `yaml:"item_class_multipliers" validate:"omitempty,dive"`
}

// ClassFilter matches an item class and, optionally, some of its subclasses.
// Subclass names depend on the class, so they are resolved after decoding.
type ClassFilter struct {
	Class      model.ItemClass `yaml:"class"`
	Subclasses []string        `yaml:"subclasses"`
}

func (f ClassFilter) subclasses() ([]model.ItemSubclass, error) {
	if len(f.Subclasses) == 0 {
		return nil, nil
	}
	out := make([]model.ItemSubclass, 0, len(f.Subclasses))
	for _, name := range f.Subclasses {
		sc, err := model.ParseSubclass(f.Class, name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// ClassMultiplierConfig: множитель для класса/подкласса.
type ClassMultiplierConfig struct {
	ClassFilter `yaml:",inline"`
	Multiplier  float64 `yaml:"multiplier" validate:"gte=0"`
}

// StatMultiplierConfig sets the multiplier of a group of stats.
type StatMultiplierConfig struct {
	Stats     []model.Stat            `yaml:"stats" validate:"min=1"`
	Base      float64                 `yaml:"base" validate:"gte=0"`
	Overrides []ClassMultiplierConfig `yaml:"overrides" validate:"omitempty,dive"`
}

// StatRequirementConfig restricts a group of stats to some item classes.
type StatRequirementConfig struct {
	Stats   []model.Stat  `yaml:"stats" validate:"min=1"`
	Classes []ClassFilter `yaml:"classes" validate:"min=1"`
}

// DefaultGeneration returns the built-in tables.
func DefaultGeneration() Generation {
	f := pointcurve.DefaultFormula
	g := Generation{
		Curve: CurveConfig{
			Steepness:    f.Steepness,
			GrowthFactor: f.GrowthFactor,
			Baseline:     f.Baseline,
			MaxLevel:     pointcurve.DefaultMaxLevel,
		},
		VariancePercent: pointcurve.DefaultVariancePercent,
		IDStart:         DefaultIDStart,
		PerfectPrefix:   naming.DefaultPerfectPrefix,
		Uptier: UptierConfig{
			MinRoll:      enchant.DefaultUptier.MinRoll,
			AddPerRarity: enchant.DefaultUptier.AddPerRarity,
		},
	}

	rolls := enchant.DefaultRollSettings()
	for _, q := range slices.Sorted(maps.Keys(rolls)) {
		rs := rolls[q]
		g.Rolls = append(g.Rolls, RollConfig{
			Quality:            q,
			NeededRoll:         rs.NeededRoll,
			ExtraNeededPerRoll: rs.ExtraNeededPerRoll,
			MaxEnchants:        rs.MaxEnchants,
			PointMultiplier:    rs.PointMultiplier,
		})
	}

	bonuses := enchant.DefaultRankBonuses()
	for _, r := range slices.Sorted(maps.Keys(bonuses)) {
		b := bonuses[r]
		g.RankBonuses = append(g.RankBonuses, RankBonusConfig{
			Rank:                  r,
			QualityRollMultiplier: b.QualityRollMultiplier,
			EnchantRollBonus:      b.EnchantRollBonus,
		})
	}

	return g
}

// Formula returns the point curve formula.
func (g Generation) Formula() pointcurve.Formula {
	return pointcurve.Formula{
		Steepness:    g.Curve.Steepness,
		GrowthFactor: g.Curve.GrowthFactor,
		Baseline:     g.Curve.Baseline,
	}
}

// PointCurve builds the precomputed point curve.
func (g Generation) PointCurve() *pointcurve.Curve {
	return pointcurve.New(g.Formula(), g.Curve.MaxLevel)
}

// UptierSettings returns the quality upgrade settings.
func (g Generation) UptierSettings() enchant.UptierSettings {
	return enchant.UptierSettings{MinRoll: g.Uptier.MinRoll, AddPerRarity: g.Uptier.AddPerRarity}
}

// RollTable returns the per-quality roll settings. Later rows win on duplicate qualities.
func (g Generation) RollTable() map[model.Quality]enchant.RollSettings {
	out := make(map[model.Quality]enchant.RollSettings, len(g.Rolls))
	for _, r := range g.Rolls {
		out[r.Quality] = enchant.RollSettings{
			NeededRoll:         r.NeededRoll,
			ExtraNeededPerRoll: r.ExtraNeededPerRoll,
			MaxEnchants:        r.MaxEnchants,
			PointMultiplier:    r.PointMultiplier,
		}
	}
	return out
}

// RankBonusTable returns the per-rank bonuses.
func (g Generation) RankBonusTable() enchant.RankBonuses {
	out := make(enchant.RankBonuses, len(g.RankBonuses))
	for _, b := range g.RankBonuses {
		out[b.Rank] = enchant.RankBonus{
			QualityRollMultiplier: b.QualityRollMultiplier,
			EnchantRollBonus:      b.EnchantRollBonus,
		}
	}
	return out
}

// Registry builds the stat settings registry.
func (g Generation) Registry() (*stats.Registry, error) {
	s := g.Stats

	list := s.Enchantable
	if list == nil {
		list = stats.DefaultEnchantableStats
	}

	reg := stats.NewRegistry()
	reg.Populate(list)

	if s.Multipliers == nil {
		reg.SetMultipliers(stats.DefaultMultiplierGroups())
	} else {
		groups := make([]stats.MultiplierGroup, 0, len(s.Multipliers))
		for _, m := range s.Multipliers {
			overrides, err := classOverrides(m.Overrides)
			if err != nil {
				return nil, fmt.Errorf("stat multipliers %v: %w", m.Stats, err)
			}
			groups = append(groups, stats.MultiplierGroup{
				Stats:       m.Stats,
				Multipliers: stats.Multipliers{Base: m.Base, ClassOverrides: overrides},
			})
		}
		reg.SetMultipliers(groups)
	}

	if s.Requirements == nil {
		reg.SetRequirements(stats.DefaultRequirementGroups())
	} else {
		groups := make([]stats.RequirementGroup, 0, len(s.Requirements))
		for _, r := range s.Requirements {
			reqs := make([]stats.ClassRequirement, 0, len(r.Classes))
			for _, c := range r.Classes {
				subs, err := c.subclasses()
				if err != nil {
					return nil, fmt.Errorf("stat requirements %v: %w", r.Stats, err)
				}
				reqs = append(reqs, stats.ClassRequirement{Class: c.Class, Subclasses: subs})
			}
			groups = append(groups, stats.RequirementGroup{Stats: r.Stats, Requirements: reqs})
		}
		reg.SetRequirements(groups)
	}

	if s.ItemClassMultipliers == nil {
		reg.SetItemClassMultipliers(stats.DefaultItemClassMultipliers())
	} else {
		mults := make([]stats.ItemClassMultiplier, 0, len(s.ItemClassMultipliers))
		for _, m := range s.ItemClassMultipliers {
			subs, err := m.subclasses()
			if err != nil {
				return nil, fmt.Errorf("item class multipliers: %w", err)
			}
			mults = append(mults, stats.ItemClassMultiplier{
				Class: m.Class, Subclasses: subs, Multiplier: m.Multiplier,
			})
		}
		reg.SetItemClassMultipliers(mults)
	}

	return reg, nil
}

func classOverrides(in []ClassMultiplierConfig) ([]stats.ClassMultiplierOverride, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]stats.ClassMultiplierOverride, 0, len(in))
	for _, o := range in {
		subs, err := o.subclasses()
		if err != nil {
			return nil, err
		}
		out = append(out, stats.ClassMultiplierOverride{
			Class: o.Class, Subclasses: subs, Multiplier: o.Multiplier,
		})
	}
	return out, nil
}

// check validates what struct tags cannot express.
func (g Generation) check() error {
	var errs []error
	if len(g.Rolls) == 0 {
		errs = append(errs, errors.New("rolls: at least one quality row is required"))
	}
	seen := make(map[model.Quality]bool, len(g.Rolls))
	for _, r := range g.Rolls {
		if seen[r.Quality] {
			slog.Warn("duplicate roll row, later one wins", "quality", r.Quality)
		}
		seen[r.Quality] = true
	}
	if _, err := g.Registry(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
