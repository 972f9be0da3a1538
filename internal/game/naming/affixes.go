package naming

import "github.com/udisondev/itemforge/internal/model"

// DefaultPerfectPrefix marks items that rolled maximum variance and enchant count.
const DefaultPerfectPrefix = "Perfect"

// Affixes lists name fragments for one stat.
type Affixes struct {
	Prefixes []string
	Suffixes []string
}

// DefaultAffixes returns the built-in affix table covering every stat.
func DefaultAffixes() map[model.Stat]Affixes {
	return map[model.Stat]Affixes{
		model.StatMana: {
			Prefixes: []string{"Energized", "Mana-Infused", "Arcane"},
			Suffixes: []string{"of Manastorm", "of the Magi", "of the Sorcerer"},
		},
		model.StatHealth: {
			Prefixes: []string{"Bulky", "Vital", "Healthy"},
			Suffixes: []string{"of the Bull", "of the Bear", "of the Rhino"},
		},
		model.StatAgility: {
			Prefixes: []string{"Quick", "Agile", "Nimble"},
			Suffixes: []string{"of Deftness", "of the Fox", "of the Wind"},
		},
		model.StatStrength: {
			Prefixes: []string{"Powerful", "Mighty", "Strong"},
			Suffixes: []string{"of Destruction", "of the Titan", "of the Colossus"},
		},
		model.StatIntellect: {
			Prefixes: []string{"Intelligent", "Wise", "Sage"},
			Suffixes: []string{"of Knowledge", "of the Scholar", "of the Sage"},
		},
		model.StatSpirit: {
			Prefixes: []string{"Spirited", "Ethereal", "Mystic"},
			Suffixes: []string{"of Introspection", "of the Spirit", "of the Soul"},
		},
		model.StatStamina: {
			Prefixes: []string{"Enduring", "Stalwart", "Resilient"},
			Suffixes: []string{"of the Ox", "of the Mountain", "of the Fortress"},
		},
		model.StatDefenseSkillRating: {
			Prefixes: []string{"Defensive", "Guarded", "Shielded"},
			Suffixes: []string{"of Protection", "of the Guardian", "of the Defender"},
		},
		model.StatDodgeRating: {
			Prefixes: []string{"Elusive", "Evasive", "Dodging"},
			Suffixes: []string{"of Evasion", "of the Monkey", "of the Wind"},
		},
		model.StatParryRating: {
			Prefixes: []string{"Parrying", "Deflecting", "Countering"},
			Suffixes: []string{"of the Duelist", "of the Gladiator", "of the Protector"},
		},
		model.StatBlockRating: {
			Prefixes: []string{"Blocking", "Shielding", "Guarding"},
			Suffixes: []string{"of the Wall", "of the Shield", "of the Bulwark"},
		},
		model.StatHitMeleeRating: {
			Prefixes: []string{"Striking", "Hitting", "Bashing"},
			Suffixes: []string{"of Precision", "of the Warrior", "of the Gladiator"},
		},
		model.StatHitRangedRating: {
			Prefixes: []string{"Aiming", "Shooting", "Sniping"},
			Suffixes: []string{"of Accuracy", "of the Marksman", "of the Hunter"},
		},
		model.StatHitSpellRating: {
			Prefixes: []string{"Casting", "Channeling", "Focusing"},
			Suffixes: []string{"of the Magus", "of the Sorcerer", "of the Wizard"},
		},
		model.StatCritMeleeRating: {
			Prefixes: []string{"Critical", "Deadly", "Lethal"},
			Suffixes: []string{"of the Assassin", "of the Berserker", "of the Slayer"},
		},
		model.StatCritRangedRating: {
			Prefixes: []string{"Precise", "Accurate", "Sharpshooting"},
			Suffixes: []string{"of the Sharpshooter", "of the Sniper", "of the Ranger"},
		},
		model.StatCritSpellRating: {
			Prefixes: []string{"Potent", "Devastating", "Cataclysmic"},
			Suffixes: []string{"of the Archmage", "of the Warlock", "of the Spellblade"},
		},
		model.StatHitTakenMeleeRating: {
			Prefixes: []string{"Resistant", "Sturdy", "Tough"},
			Suffixes: []string{"of the Juggernaut", "of the Fortress", "of the Bastion"},
		},
		model.StatHitTakenRangedRating: {
			Prefixes: []string{"Durable", "Fortified", "Impenetrable"},
			Suffixes: []string{"of the Sentinel", "of the Guardian", "of the Protector"},
		},
		model.StatHitTakenSpellRating: {
			Prefixes: []string{"Ward", "Aegis", "Barrier"},
			Suffixes: []string{"of the Spellbreaker", "of the Warden", "of the Protector"},
		},
		model.StatCritTakenMeleeRating: {
			Prefixes: []string{"Unyielding", "Resolute", "Adamant"},
			Suffixes: []string{"of the Juggernaut", "of the Fortress", "of the Bastion"},
		},
		model.StatCritTakenRangedRating: {
			Prefixes: []string{"Steadfast", "Unshakable", "Firm"},
			Suffixes: []string{"of the Sentinel", "of the Guardian", "of the Protector"},
		},
		model.StatCritTakenSpellRating: {
			Prefixes: []string{"Unbreakable", "Indomitable", "Invincible"},
			Suffixes: []string{"of the Spellbreaker", "of the Warden", "of the Protector"},
		},
		model.StatHasteMeleeRating: {
			Prefixes: []string{"Swift", "Rapid", "Quick"},
			Suffixes: []string{"of the Cheetah", "of the Wind", "of the Storm"},
		},
		model.StatHasteRangedRating: {
			Prefixes: []string{"Fleet", "Speedy", "Nimble"},
			Suffixes: []string{"of the Falcon", "of the Eagle", "of the Hawk"},
		},
		model.StatHasteSpellRating: {
			Prefixes: []string{"Accelerated", "Expedited", "Hasty"},
			Suffixes: []string{"of the Archmage", "of the Sorcerer", "of the Wizard"},
		},
		model.StatHitRating: {
			Prefixes: []string{"Accurate", "Precise", "Sure"},
			Suffixes: []string{"of the Marksman", "of the Sniper", "of the Hunter"},
		},
		model.StatCritRating: {
			Prefixes: []string{"Critical", "Deadly", "Lethal"},
			Suffixes: []string{"of the Assassin", "of the Berserker", "of the Slayer"},
		},
		model.StatHitTakenRating: {
			Prefixes: []string{"Resistant", "Sturdy", "Tough"},
			Suffixes: []string{"of the Juggernaut", "of the Fortress", "of the Bastion"},
		},
		model.StatCritTakenRating: {
			Prefixes: []string{"Resilient", "Unyielding", "Steadfast"},
			Suffixes: []string{"of the Sentinel", "of the Guardian", "of the Protector"},
		},
		model.StatResilienceRating: {
			Prefixes: []string{"Unyielding", "Resolute", "Adamant"},
			Suffixes: []string{"of the Rock", "of the Mountain", "of the Fortress"},
		},
		model.StatHasteRating: {
			Prefixes: []string{"Swift", "Rapid", "Quick"},
			Suffixes: []string{"of the Cheetah", "of the Wind", "of the Storm"},
		},
		model.StatExpertiseRating: {
			Prefixes: []string{"Expert", "Master", "Skilled"},
			Suffixes: []string{"of the Veteran", "of the Master", "of the Champion"},
		},
		model.StatAttackPower: {
			Prefixes: []string{"Powerful", "Mighty", "Strong"},
			Suffixes: []string{"of the Warrior", "of the Gladiator", "of the Berserker"},
		},
		model.StatRangedAttackPower: {
			Prefixes: []string{"Potent", "Forceful", "Vigorous"},
			Suffixes: []string{"of the Hunter", "of the Ranger", "of the Sniper"},
		},
		model.StatSpellHealingDone: {
			Prefixes: []string{"Healing", "Restorative", "Mending"},
			Suffixes: []string{"of the Healer", "of the Cleric", "of the Priest"},
		},
		model.StatSpellDamageDone: {
			Prefixes: []string{"Destructive", "Devastating", "Cataclysmic"},
			Suffixes: []string{"of the Warlock", "of the Sorcerer", "of the Archmage"},
		},
		model.StatManaRegeneration: {
			Prefixes: []string{"Regenerative", "Replenishing", "Restorative"},
			Suffixes: []string{"of the Magi", "of the Sorcerer", "of the Wizard"},
		},
		model.StatArmorPenetration: {
			Prefixes: []string{"Piercing", "Penetrating", "Rending"},
			Suffixes: []string{"of the Gladiator", "of the Berserker", "of the Destroyer"},
		},
		model.StatSpellPower: {
			Prefixes: []string{"Arcane", "Mystic", "Enchanted"},
			Suffixes: []string{"of the Archmage", "of the Sorcerer", "of the Warlock"},
		},
		model.StatHealthRegen: {
			Prefixes: []string{"Revitalizing", "Rejuvenating", "Restorative"},
			Suffixes: []string{"of the Healer", "of the Cleric", "of the Priest"},
		},
		model.StatSpellPenetration: {
			Prefixes: []string{"Piercing", "Penetrating", "Rending"},
			Suffixes: []string{"of the Warlock", "of the Sorcerer", "of the Archmage"},
		},
		model.StatBlockValue: {
			Prefixes: []string{"Fortified", "Reinforced", "Stalwart"},
			Suffixes: []string{"of the Wall", "of the Shield", "of the Bulwark"},
		},
	}
}
