package admin

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/udisondev/itemforge/internal/db"
	"github.com/udisondev/itemforge/internal/model"
)

// LootRequest is the body of POST /loot: the killed creature and the loot the host rolled.
type LootRequest struct {
	Creature  CreatureRequest   `json:"creature"`
	Items     []LootItemRequest `json:"items" validate:"required,min=1,max=16,dive"`
	OwnerGUID int64             `json:"owner_guid" validate:"gte=0"`
}

// CreatureRequest describes the creature. Rank is a name such as "BOSS".
type CreatureRequest struct {
	GUID  int64              `json:"guid"`
	Entry int32              `json:"entry" validate:"gte=0"`
	Name  string             `json:"name" validate:"max=100"`
	Level int32              `json:"level" validate:"gte=0,lte=255"`
	Rank  model.CreatureRank `json:"rank"`
}

// LootItemRequest is one rolled loot entry. Count 0 means 1.
type LootItemRequest struct {
	Entry int32 `json:"entry" validate:"gt=0"`
	Count int32 `json:"count" validate:"gte=0,lte=1000"`
}

// LootResponse lists the loot after the hook ran.
type LootResponse struct {
	Items    []LootItemResponse `json:"items"`
	Replaced int                `json:"replaced"`
	// Entries the client has to be sent before it can show the loot.
	ItemQueries []int32 `json:"item_queries,omitempty"`
}

// LootItemResponse is one loot slot.
type LootItemResponse struct {
	Slot         int                   `json:"slot"`
	Entry        int32                 `json:"entry"`
	BaseEntry    int32                 `json:"base_entry,omitempty"`
	Name         string                `json:"name"`
	Quality      string                `json:"quality"`
	Count        int32                 `json:"count"`
	Perfect      bool                  `json:"perfect,omitempty"`
	Upgraded     bool                  `json:"upgraded,omitempty"`
	GenID        string                `json:"gen_id,omitempty"`
	Enchantments []EnchantmentResponse `json:"enchantments,omitempty"`
	ItemGUID     int64                 `json:"item_guid,omitempty"`
}

// EnchantmentResponse is one rolled stat.
type EnchantmentResponse struct {
	Stat  string `json:"stat"`
	Value int32  `json:"value"`
}

// LoginResponse lists the system messages for a player entering the world.
type LoginResponse struct {
	Messages []string `json:"messages"`
}

// playerRecorder stands in for the looting or logging-in player.
type playerRecorder struct {
	entries  []int32
	messages []string
}

func (p *playerRecorder) SendItemQuery(tmpl *model.ItemTemplate) {
	p.entries = append(p.entries, tmpl.Entry)
}

func (p *playerRecorder) SendSystemMessage(msg string) {
	p.messages = append(p.messages, msg)
}

func handleLogin(announcer LoginAnnouncer) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		player := &playerRecorder{messages: []string{}}
		announcer.OnLogin(player)
		respondJSON(w, http.StatusOK, LoginResponse{Messages: player.messages})
	}
}

func handleLoot(runner LootRunner, templates TemplateLoader, items ItemGiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LootRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.OwnerGUID > 0 && items == nil {
			respondError(w, http.StatusNotImplemented, "item delivery is not configured")
			return
		}

		ctx := r.Context()
		l := &model.Loot{Items: make([]*model.LootItem, 0, len(req.Items))}
		for _, it := range req.Items {
			tmpl, err := templates.GetBase(ctx, it.Entry)
			if err != nil {
				if errors.Is(err, db.ErrTemplateNotFound) {
					respondError(w, http.StatusNotFound, fmt.Sprintf("base template %d not found", it.Entry))
					return
				}
				slog.Error("loading base template", "entry", it.Entry, "error", err)
				respondError(w, http.StatusInternalServerError, "loading base template failed")
				return
			}
			l.Items = append(l.Items, model.NewLootItem(tmpl, max(it.Count, 1)))
		}

		c := req.Creature
		creature := model.NewCreature(c.GUID, model.NewCreatureTemplate(c.Entry, c.Name, c.Level, c.Rank))

		player := &playerRecorder{}
		replaced := runner.OnGenerateLoot(ctx, l, creature, player)

		resp := LootResponse{
			Items:       make([]LootItemResponse, 0, l.ItemCount()),
			Replaced:    len(replaced),
			ItemQueries: player.entries,
		}
		for i := range l.ItemCount() {
			li := l.Item(i)
			tmpl := li.Template()
			resp.Items = append(resp.Items, LootItemResponse{
				Slot:      i,
				Entry:     li.ItemID(),
				BaseEntry: tmpl.BaseEntry,
				Name:      tmpl.Name,
				Quality:   tmpl.Quality.String(),
				Count:     li.Count(),
			})
		}
		for _, rep := range replaced {
			out := &resp.Items[rep.Slot]
			out.Perfect = rep.Created.Perfect
			out.Upgraded = rep.Created.Upgraded()
			out.GenID = rep.Created.GenID
			for _, e := range rep.Created.Enchantments {
				out.Enchantments = append(out.Enchantments, EnchantmentResponse{Stat: e.Stat.String(), Value: e.Value})
			}
		}

		if req.OwnerGUID > 0 {
			for i := range l.ItemCount() {
				li := l.Item(i)
				item, err := model.NewItem(li.ItemID(), req.OwnerGUID, li.Count(), li.Template())
				if err == nil {
					err = items.GiveItem(ctx, item)
				}
				if err != nil {
					slog.Error("giving loot item",
						"owner", req.OwnerGUID,
						"entry", li.ItemID(),
						"error", err)
					respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "giving loot items failed"})
					return
				}
				resp.Items[i].ItemGUID = item.GUID()
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
