package model

import (
	"fmt"
	"sync"
	"time"
)

// Item: конкретный экземпляр предмета (item_instance).
// Может лежать в инвентаре персонажа (slot >= 0) или быть ничьим (сирота).
type Item struct {
	guid      int64 // item_instance.guid
	entry     int32 // Template entry (базовый или сгенерированный)
	ownerGUID int64 // Character GUID владельца (0 = нет)
	slot      int32 // Inventory slot (-1 если не в инвентаре)
	count     int32
	createdAt time.Time

	template *ItemTemplate

	mu sync.RWMutex
}

// NewItem создаёт новый экземпляр предмета с валидацией.
// template может быть nil: шаблон подгружается отдельно.
func NewItem(entry int32, ownerGUID int64, count int32, template *ItemTemplate) (*Item, error) {
	if entry <= 0 {
		return nil, fmt.Errorf("entry must be > 0, got %d", entry)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}
	if template != nil && template.Entry != entry {
		return nil, fmt.Errorf("template entry %d does not match item entry %d", template.Entry, entry)
	}
	return &Item{
		entry:     entry,
		ownerGUID: ownerGUID,
		slot:      -1,
		count:     count,
		template:  template,
	}, nil
}

// GUID returns the persistent instance id (0 until stored).
func (i *Item) GUID() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.guid
}

// SetGUID sets the instance id assigned by the database.
func (i *Item) SetGUID(guid int64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.guid = guid
}

// Entry returns the template entry.
func (i *Item) Entry() int32 {
	return i.entry
}

// OwnerGUID returns the owning character.
func (i *Item) OwnerGUID() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ownerGUID
}

// Slot returns inventory slot or -1.
func (i *Item) Slot() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot
}

// SetSlot places the item into an inventory slot.
func (i *Item) SetSlot(slot int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.slot = slot
}

// InInventory reports whether the item occupies an inventory slot.
func (i *Item) InInventory() bool {
	return i.Slot() >= 0
}

// Count returns stack count.
func (i *Item) Count() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.count
}

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.createdAt
}

// SetCreatedAt sets the creation timestamp (loaded from DB).
func (i *Item) SetCreatedAt(t time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.createdAt = t
}

// Template returns the item template, nil if not loaded.
func (i *Item) Template() *ItemTemplate {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.template
}

// SetTemplate attaches a loaded template. Entry must match.
func (i *Item) SetTemplate(t *ItemTemplate) error {
	if t != nil && t.Entry != i.entry {
		return fmt.Errorf("template entry %d does not match item entry %d", t.Entry, i.entry)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.template = t
	return nil
}

// Name returns the template name or a placeholder.
func (i *Item) Name() string {
	if t := i.Template(); t != nil {
		return t.Name
	}
	return fmt.Sprintf("item #%d", i.entry)
}
