package commands

import (
	"context"
	"io"

	"github.com/udisondev/itemforge/internal/idfactory"
	"github.com/udisondev/itemforge/internal/itemgen"
	"github.com/udisondev/itemforge/internal/model"
)

// BaseTemplates provides access to base item templates (db.TemplateCache).
type BaseTemplates interface {
	GetBase(ctx context.Context, entry int32) (*model.ItemTemplate, error)
}

// CustomTemplates provides access to generated templates (db.TemplateRepository).
type CustomTemplates interface {
	GetCustom(ctx context.Context, entry int32) (*model.ItemTemplate, bool, error)
	DeleteCustom(ctx context.Context, entry int32) error
}

// ItemCreator generates enchanted templates and returns their entries (itemgen.Service).
type ItemCreator interface {
	CreateEnchantedItem(ctx context.Context, base *model.ItemTemplate, creature *model.Creature) (itemgen.Created, error)
	Reclaim(entry int32) error
}

// ItemGiver puts item instances into character inventories (db.ItemRepository).
type ItemGiver interface {
	GiveItem(ctx context.Context, item *model.Item) error
}

// Allocator reports the id allocator state (idfactory.Factory).
type Allocator interface {
	Stats() idfactory.Stats
}

// Curve prints the point curve (pointcurve.Curve).
type Curve interface {
	MaxLevel() int
	PrintRange(w io.Writer, from, to int) error
}
