// Package stats holds per-stat enchantment settings: which stats may be rolled,
// on which item classes, and with which point multipliers.
//
// The registry is populated once at startup and is read-only afterwards.
package stats

import (
	"log/slog"
	"slices"

	"github.com/udisondev/itemforge/internal/model"
)

// DefaultMultiplier is the base multiplier of a freshly populated stat.
const DefaultMultiplier = 1.0

// ClassRequirement restricts a stat to one item class.
// Empty Subclasses means every subclass of Class.
type ClassRequirement struct {
	Class      model.ItemClass
	Subclasses []model.ItemSubclass
}

// Matches reports whether pair satisfies the requirement.
func (r ClassRequirement) Matches(pair model.ItemClassPair) bool {
	if r.Class != pair.Class {
		return false
	}
	return len(r.Subclasses) == 0 || slices.Contains(r.Subclasses, pair.Subclass)
}

// ClassMultiplierOverride replaces the base multiplier for one class (and optionally subclasses).
type ClassMultiplierOverride struct {
	Class      model.ItemClass
	Subclasses []model.ItemSubclass
	Multiplier float64
}

// Matches reports whether pair is covered by the override.
func (o ClassMultiplierOverride) Matches(pair model.ItemClassPair) bool {
	return ClassRequirement{Class: o.Class, Subclasses: o.Subclasses}.Matches(pair)
}

// Multipliers: base multiplier plus per-class overrides, first match wins.
type Multipliers struct {
	Base           float64
	ClassOverrides []ClassMultiplierOverride
}

// Settings is the enchantment configuration of a single stat.
type Settings struct {
	Multipliers  Multipliers
	Requirements []ClassRequirement // empty = valid everywhere
}

// ValidFor reports whether the stat may be rolled on an item of the given class pair.
func (s Settings) ValidFor(pair model.ItemClassPair) bool {
	if len(s.Requirements) == 0 {
		return true
	}
	for _, req := range s.Requirements {
		if req.Matches(pair) {
			return true
		}
	}
	return false
}

// MultiplierFor returns the first matching override multiplier, otherwise the base.
func (s Settings) MultiplierFor(pair model.ItemClassPair) float64 {
	for _, o := range s.Multipliers.ClassOverrides {
		if o.Matches(pair) {
			return o.Multiplier
		}
	}
	return s.Multipliers.Base
}

// MultiplierGroup assigns the same multipliers to several stats.
type MultiplierGroup struct {
	Stats       []model.Stat
	Multipliers Multipliers
}

// RequirementGroup assigns the same requirements to several stats.
type RequirementGroup struct {
	Stats        []model.Stat
	Requirements []ClassRequirement
}

// ItemClassMultiplier scales every rolled stat on matching items.
// Empty Subclasses means every subclass of Class.
type ItemClassMultiplier struct {
	Class      model.ItemClass
	Subclasses []model.ItemSubclass
	Multiplier float64
}

// Registry maps enchantable stats to their settings.
type Registry struct {
	order            []model.Stat
	settings         map[model.Stat]*Settings
	classMultipliers []ItemClassMultiplier
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{settings: make(map[model.Stat]*Settings)}
}

// Populate resets the registry to the given stats with default settings.
// Duplicates are ignored; registration order is kept.
func (r *Registry) Populate(list []model.Stat) {
	r.order = r.order[:0]
	r.settings = make(map[model.Stat]*Settings, len(list))
	for _, stat := range list {
		r.AddStat(stat, Settings{Multipliers: Multipliers{Base: DefaultMultiplier}})
	}
}

// AddStat registers a stat, replacing its settings if already present.
func (r *Registry) AddStat(stat model.Stat, s Settings) {
	if _, ok := r.settings[stat]; !ok {
		r.order = append(r.order, stat)
	}
	r.settings[stat] = &s
}

// SetMultipliers replaces multipliers for every stat in each group.
// Stats that are not registered are skipped with a warning. Returns number of updates.
func (r *Registry) SetMultipliers(groups []MultiplierGroup) int {
	updated := 0
	for _, g := range groups {
		for _, stat := range g.Stats {
			s, ok := r.settings[stat]
			if !ok {
				slog.Warn("multiplier for stat without settings", "stat", stat)
				continue
			}
			s.Multipliers = Multipliers{
				Base:           g.Multipliers.Base,
				ClassOverrides: slices.Clone(g.Multipliers.ClassOverrides),
			}
			updated++
		}
	}
	return updated
}

// SetRequirements replaces class requirements for every stat in each group.
// Stats that are not registered are skipped with an error log. Returns number of updates.
func (r *Registry) SetRequirements(groups []RequirementGroup) int {
	updated := 0
	for _, g := range groups {
		for _, stat := range g.Stats {
			s, ok := r.settings[stat]
			if !ok {
				slog.Error("requirements for stat without settings", "stat", stat)
				continue
			}
			s.Requirements = slices.Clone(g.Requirements)
			updated++
		}
	}
	return updated
}

// SetItemClassMultipliers replaces the global per-class multipliers.
func (r *Registry) SetItemClassMultipliers(m []ItemClassMultiplier) {
	r.classMultipliers = slices.Clone(m)
}

// SettingsFor returns a copy of the stat settings.
func (r *Registry) SettingsFor(stat model.Stat) (Settings, bool) {
	s, ok := r.settings[stat]
	if !ok {
		return Settings{}, false
	}
	return *s, true
}

// Has reports whether settings exist for stat.
func (r *Registry) Has(stat model.Stat) bool {
	_, ok := r.settings[stat]
	return ok
}

// StatList returns registered stats in registration order.
// The slice is a copy; callers may reorder or shrink it.
func (r *Registry) StatList() []model.Stat {
	return slices.Clone(r.order)
}

// Len returns number of registered stats.
func (r *Registry) Len() int {
	return len(r.order)
}

// ItemClassMultiplier returns the product of all global multipliers matching pair.
// 1.0 when none match.
func (r *Registry) ItemClassMultiplier(pair model.ItemClassPair) float64 {
	mult := 1.0
	for _, m := range r.classMultipliers {
		if m.Class != pair.Class {
			continue
		}
		if len(m.Subclasses) == 0 || slices.Contains(m.Subclasses, pair.Subclass) {
			mult *= m.Multiplier
		}
	}
	return mult
}
