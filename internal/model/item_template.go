package model

import "fmt"

// MaxItemStats is the number of stat slots an item template carries.
const MaxItemStats = 10

// StatSlot is one of the fixed stat slots of an item template.
// A slot whose Value is 0 is free.
type StatSlot struct {
	Type  Stat
	Value int32
}

// CustomStat is a bonus stat rolled by the enchantment generator.
type CustomStat struct {
	Stat  Stat
	Value int32
}

// ItemTemplate: шаблон предмета (item_template / custom_item_template).
// Enchanted items are clones of a base template with a fresh Entry,
// possibly upgraded Quality, extra stat slots filled and a composed Name.
type ItemTemplate struct {
	Entry     int32  // Template ID (base templates < ItemCreationIDStart)
	BaseEntry int32  // Template this one was cloned from, 0 for base templates
	Name      string // Display name (e.g., "Worn Shortsword")
	Class     ItemClass
	Subclass  ItemSubclass
	Quality   Quality
	ItemLevel int32
	Material  int32 // Sound/material id, copied from base on clone

	StatsCount int32
	Stats      [MaxItemStats]StatSlot
}

// ClassPair returns class/subclass pair used by stat requirements and multipliers.
func (t *ItemTemplate) ClassPair() ItemClassPair {
	return ItemClassPair{Class: t.Class, Subclass: t.Subclass}
}

// IsWeapon returns true if this template is a weapon.
func (t *ItemTemplate) IsWeapon() bool {
	return t.Class == ItemClassWeapon
}

// IsArmor returns true if this template is armor.
func (t *ItemTemplate) IsArmor() bool {
	return t.Class == ItemClassArmor
}

// IsEnchantable returns true for templates that may receive random enchantments.
// Only weapons and armor qualify.
func (t *ItemTemplate) IsEnchantable() bool {
	return t.IsWeapon() || t.IsArmor()
}

// Clone copies the template under a new entry.
// BaseEntry points at the original base template, also when cloning a clone.
// Stat slots are copied by value, so the clone can be mutated freely.
func (t *ItemTemplate) Clone(entry int32) *ItemTemplate {
	c := *t
	c.Entry = entry
	if t.BaseEntry == 0 {
		c.BaseEntry = t.Entry
	}
	return &c
}

// FindStat returns the index of an in-use slot holding stat, or -1.
func (t *ItemTemplate) FindStat(stat Stat) int {
	for i := range t.Stats {
		if t.Stats[i].Value != 0 && t.Stats[i].Type == stat {
			return i
		}
	}
	return -1
}

// FreeStatSlots returns the number of slots with zero value.
func (t *ItemTemplate) FreeStatSlots() int {
	n := 0
	for i := range t.Stats {
		if t.Stats[i].Value == 0 {
			n++
		}
	}
	return n
}

// AddOrUpdateStat adds value to an existing slot of the same stat,
// otherwise takes the first free slot. Returns false when all slots are taken.
func (t *ItemTemplate) AddOrUpdateStat(cs CustomStat) bool {
	if idx := t.FindStat(cs.Stat); idx >= 0 {
		t.Stats[idx].Value += cs.Value
		return true
	}
	for i := range t.Stats {
		if t.Stats[i].Value == 0 {
			t.Stats[i] = StatSlot{Type: cs.Stat, Value: cs.Value}
			t.StatsCount++
			return true
		}
	}
	return false
}

// ApplyStats applies enchantments in order and returns those that found a slot.
// Zero-valued enchantments are skipped (they would not occupy a slot).
func (t *ItemTemplate) ApplyStats(stats []CustomStat) []CustomStat {
	applied := make([]CustomStat, 0, len(stats))
	for _, cs := range stats {
		if cs.Value <= 0 {
			continue
		}
		if t.AddOrUpdateStat(cs) {
			applied = append(applied, cs)
		}
	}
	return applied
}

// String implements fmt.Stringer for logs.
func (t *ItemTemplate) String() string {
	return fmt.Sprintf("%s [%d %s %s/%s lvl=%d]",
		t.Name, t.Entry, t.Quality, t.Class, t.Subclass.Name(t.Class), t.ItemLevel)
}
