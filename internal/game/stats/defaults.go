package stats

import "github.com/udisondev/itemforge/internal/model"

// DefaultEnchantableStats: stats rolled when no stat list is configured.
var DefaultEnchantableStats = []model.Stat{
	model.StatHealth,
	model.StatMana,
	model.StatAgility,
	model.StatStrength,
	model.StatIntellect,
	model.StatSpirit,
	model.StatStamina,
	model.StatBlockRating,
	model.StatBlockValue,
	model.StatCritRating,
}

var shieldOnly = []model.ItemSubclass{model.ArmorShield}

// DefaultMultiplierGroups returns the built-in per-stat multipliers.
func DefaultMultiplierGroups() []MultiplierGroup {
	return []MultiplierGroup{
		{
			Stats:       []model.Stat{model.StatHealth, model.StatMana},
			Multipliers: Multipliers{Base: 10.0},
		},
		{
			Stats: []model.Stat{model.StatBlockRating, model.StatBlockValue},
			Multipliers: Multipliers{
				Base: 1.0,
				ClassOverrides: []ClassMultiplierOverride{
					{Class: model.ItemClassArmor, Subclasses: shieldOnly, Multiplier: 2.0},
				},
			},
		},
	}
}

// DefaultRequirementGroups returns the built-in class requirements.
func DefaultRequirementGroups() []RequirementGroup {
	return []RequirementGroup{
		{
			Stats:        []model.Stat{model.StatCritRating},
			Requirements: []ClassRequirement{{Class: model.ItemClassWeapon}},
		},
		{
			Stats:        []model.Stat{model.StatBlockRating, model.StatBlockValue},
			Requirements: []ClassRequirement{{Class: model.ItemClassArmor, Subclasses: shieldOnly}},
		},
	}
}

// DefaultItemClassMultipliers returns the built-in global multipliers.
// Miscellaneous armor (rings, necks, trinkets) gets 50% more points.
func DefaultItemClassMultipliers() []ItemClassMultiplier {
	return []ItemClassMultiplier{
		{
			Class:      model.ItemClassArmor,
			Subclasses: []model.ItemSubclass{model.ArmorMiscellaneous},
			Multiplier: 1.5,
		},
	}
}

// NewDefaultRegistry returns a registry populated with the built-in tables.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Populate(DefaultEnchantableStats)
	r.SetMultipliers(DefaultMultiplierGroups())
	r.SetRequirements(DefaultRequirementGroups())
	r.SetItemClassMultipliers(DefaultItemClassMultipliers())
	return r
}
