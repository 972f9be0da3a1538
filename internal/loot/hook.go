// Package loot hooks enchanted item generation into creature loot.
package loot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/udisondev/itemforge/internal/constants"
	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/itemgen"
	"github.com/udisondev/itemforge/internal/metrics"
	"github.com/udisondev/itemforge/internal/model"
)

// Creator generates enchanted templates (itemgen.Service).
type Creator interface {
	CreateEnchantedItem(ctx context.Context, base *model.ItemTemplate, creature *model.Creature) (itemgen.Created, error)
}

// Player is the looting player as seen by the hook.
type Player interface {
	// SendItemQuery pushes a template the client does not know yet.
	SendItemQuery(tmpl *model.ItemTemplate)
	// SendSystemMessage shows a chat system message.
	SendSystemMessage(msg string)
}

// Options configures a Hook.
type Options struct {
	// Announce enables the login message.
	Announce     bool
	Announcement string
}

// Hook replaces weapon and armor loot with freshly enchanted templates.
type Hook struct {
	creator Creator
	opts    Options
}

// NewHook creates a Hook.
func NewHook(creator Creator, opts Options) *Hook {
	if opts.Announcement == "" {
		opts.Announcement = constants.LoginAnnouncement
	}
	return &Hook{creator: creator, opts: opts}
}

// Replacement records one re-pointed loot entry.
type Replacement struct {
	Slot    int
	Base    int32
	Created itemgen.Created
}

// OnGenerateLoot runs after the host generated loot for a killed creature.
// Each weapon or armor entry is re-pointed to a new enchanted template; entries whose
// generation fails keep their base template. player may be nil.
func (h *Hook) OnGenerateLoot(ctx context.Context, loot *model.Loot, creature *model.Creature, player Player) []Replacement {
	var out []Replacement
	for i := range loot.ItemCount() {
		item := loot.Item(i)
		base := item.Template()
		if base == nil || !base.IsEnchantable() {
			continue
		}

		created, err := h.creator.CreateEnchantedItem(ctx, base, creature)
		if err != nil {
			// Предмет остаётся базовым
			if errors.Is(err, enchant.ErrNoEnchantments) {
				continue
			}
			slog.Warn("loot item left unenchanted",
				"slot", i,
				"base", base.Entry,
				"error", err)
			continue
		}

		item.SetTemplate(created.Template)
		if player != nil {
			player.SendItemQuery(created.Template)
		}
		metrics.LootItemsReplaced.Inc()

		out = append(out, Replacement{Slot: i, Base: base.Entry, Created: created})
	}
	return out
}

// OnLogin sends the announcement to a player entering the world.
func (h *Hook) OnLogin(player Player) {
	if !h.opts.Announce || player == nil {
		return
	}
	player.SendSystemMessage(h.opts.Announcement)
}
