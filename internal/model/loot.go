package model

// LootItem is one entry of a creature's loot window.
type LootItem struct {
	itemID   int32
	count    int32
	template *ItemTemplate
}

// NewLootItem creates a loot entry for the given template.
func NewLootItem(template *ItemTemplate, count int32) *LootItem {
	return &LootItem{itemID: template.Entry, count: count, template: template}
}

// ItemID returns the template entry the loot entry points at.
func (l *LootItem) ItemID() int32 { return l.itemID }

// Count returns stack size.
func (l *LootItem) Count() int32 { return l.count }

// Template returns the template the loot entry was created from.
func (l *LootItem) Template() *ItemTemplate { return l.template }

// SetItemID re-points the loot entry at another template.
func (l *LootItem) SetItemID(entry int32) { l.itemID = entry }

// SetTemplate replaces the template and entry together.
func (l *LootItem) SetTemplate(t *ItemTemplate) {
	l.template = t
	l.itemID = t.Entry
}

// Loot is the loot window generated for a killed creature.
type Loot struct {
	Money int32
	Items []*LootItem
}

// ItemCount returns number of loot entries.
func (l *Loot) ItemCount() int { return len(l.Items) }

// Item returns loot entry i or nil.
func (l *Loot) Item(i int) *LootItem {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}
