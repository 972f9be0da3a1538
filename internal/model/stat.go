package model

import (
	"fmt"
	"strings"
)

// Stat is an item stat modifier type (item_template.stat_typeN).
type Stat int32

const (
	StatMana                  Stat = 0
	StatHealth                Stat = 1
	StatAgility               Stat = 3
	StatStrength              Stat = 4
	StatIntellect             Stat = 5
	StatSpirit                Stat = 6
	StatStamina               Stat = 7
	StatDefenseSkillRating    Stat = 12
	StatDodgeRating           Stat = 13
	StatParryRating           Stat = 14
	StatBlockRating           Stat = 15
	StatHitMeleeRating        Stat = 16
	StatHitRangedRating       Stat = 17
	StatHitSpellRating        Stat = 18
	StatCritMeleeRating       Stat = 19
	StatCritRangedRating      Stat = 20
	StatCritSpellRating       Stat = 21
	StatHitTakenMeleeRating   Stat = 22
	StatHitTakenRangedRating  Stat = 23
	StatHitTakenSpellRating   Stat = 24
	StatCritTakenMeleeRating  Stat = 25
	StatCritTakenRangedRating Stat = 26
	StatCritTakenSpellRating  Stat = 27
	StatHasteMeleeRating      Stat = 28
	StatHasteRangedRating     Stat = 29
	StatHasteSpellRating      Stat = 30
	StatHitRating             Stat = 31
	StatCritRating            Stat = 32
	StatHitTakenRating        Stat = 33
	StatCritTakenRating       Stat = 34
	StatResilienceRating      Stat = 35
	StatHasteRating           Stat = 36
	StatExpertiseRating       Stat = 37
	StatAttackPower           Stat = 38
	StatRangedAttackPower     Stat = 39
	StatSpellHealingDone      Stat = 41
	StatSpellDamageDone       Stat = 42
	StatManaRegeneration      Stat = 43
	StatArmorPenetration      Stat = 44
	StatSpellPower            Stat = 45
	StatHealthRegen           Stat = 46
	StatSpellPenetration      Stat = 47
	StatBlockValue            Stat = 48
)

var statNames = map[Stat]string{
	StatMana:                  "MANA",
	StatHealth:                "HEALTH",
	StatAgility:               "AGILITY",
	StatStrength:              "STRENGTH",
	StatIntellect:             "INTELLECT",
	StatSpirit:                "SPIRIT",
	StatStamina:               "STAMINA",
	StatDefenseSkillRating:    "DEFENSE_SKILL_RATING",
	StatDodgeRating:           "DODGE_RATING",
	StatParryRating:           "PARRY_RATING",
	StatBlockRating:           "BLOCK_RATING",
	StatHitMeleeRating:        "HIT_MELEE_RATING",
	StatHitRangedRating:       "HIT_RANGED_RATING",
	StatHitSpellRating:        "HIT_SPELL_RATING",
	StatCritMeleeRating:       "CRIT_MELEE_RATING",
	StatCritRangedRating:      "CRIT_RANGED_RATING",
	StatCritSpellRating:       "CRIT_SPELL_RATING",
	StatHitTakenMeleeRating:   "HIT_TAKEN_MELEE_RATING",
	StatHitTakenRangedRating:  "HIT_TAKEN_RANGED_RATING",
	StatHitTakenSpellRating:   "HIT_TAKEN_SPELL_RATING",
	StatCritTakenMeleeRating:  "CRIT_TAKEN_MELEE_RATING",
	StatCritTakenRangedRating: "CRIT_TAKEN_RANGED_RATING",
	StatCritTakenSpellRating:  "CRIT_TAKEN_SPELL_RATING",
	StatHasteMeleeRating:      "HASTE_MELEE_RATING",
	StatHasteRangedRating:     "HASTE_RANGED_RATING",
	StatHasteSpellRating:      "HASTE_SPELL_RATING",
	StatHitRating:             "HIT_RATING",
	StatCritRating:            "CRIT_RATING",
	StatHitTakenRating:        "HIT_TAKEN_RATING",
	StatCritTakenRating:       "CRIT_TAKEN_RATING",
	StatResilienceRating:      "RESILIENCE_RATING",
	StatHasteRating:           "HASTE_RATING",
	StatExpertiseRating:       "EXPERTISE_RATING",
	StatAttackPower:           "ATTACK_POWER",
	StatRangedAttackPower:     "RANGED_ATTACK_POWER",
	StatSpellHealingDone:      "SPELL_HEALING_DONE",
	StatSpellDamageDone:       "SPELL_DAMAGE_DONE",
	StatManaRegeneration:      "MANA_REGENERATION",
	StatArmorPenetration:      "ARMOR_PENETRATION_RATING",
	StatSpellPower:            "SPELL_POWER",
	StatHealthRegen:           "HEALTH_REGEN",
	StatSpellPenetration:      "SPELL_PENETRATION",
	StatBlockValue:            "BLOCK_VALUE",
}

func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STAT_%d", int32(s))
}

// HumanName returns "Block value" style names for tooltips and admin output.
func (s Stat) HumanName() string {
	name := strings.ToLower(strings.ReplaceAll(s.String(), "_", " "))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseStat parses a stat name such as "STRENGTH".
func ParseStat(s string) (Stat, error) {
	return parseName("stat", statNames, s)
}

// UnmarshalText lets config files use stat names.
func (s *Stat) UnmarshalText(text []byte) error {
	v, err := ParseStat(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AllStats returns every known stat in ascending order.
func AllStats() []Stat {
	out := make([]Stat, 0, len(statNames))
	for s := StatMana; s <= StatBlockValue; s++ {
		if _, ok := statNames[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
