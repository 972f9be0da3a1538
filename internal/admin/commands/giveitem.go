package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/itemforge/internal/admin"
	"github.com/udisondev/itemforge/internal/model"
)

// GiveItem handles giveitem <ownerGUID> <entry> [count].
// Entry may be a base or a generated template.
type GiveItem struct {
	base   BaseTemplates
	custom CustomTemplates
	items  ItemGiver
	ids    Allocator
}

// NewGiveItem creates the giveitem command handler.
func NewGiveItem(base BaseTemplates, custom CustomTemplates, items ItemGiver, ids Allocator) *GiveItem {
	return &GiveItem{base: base, custom: custom, items: items, ids: ids}
}

func (c *GiveItem) Names() []string            { return []string{"giveitem", "give_item", "additem"} }
func (c *GiveItem) RequiredAccessLevel() int32 { return admin.AccessOperator }

func (c *GiveItem) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: giveitem <ownerGUID> <entry> [count]")
	}

	owner, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || owner <= 0 {
		return fmt.Errorf("invalid owner guid %q", args[1])
	}

	entry, err := parseEntry(args[2])
	if err != nil {
		return err
	}

	count := int64(1)
	if len(args) >= 4 {
		count, err = strconv.ParseInt(args[3], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[3], err)
		}
	}
	if count < 1 || count > 999999 {
		return fmt.Errorf("count must be between 1 and 999999, got %d", count)
	}

	tmpl, _, err := lookupTemplate(ctx, c.base, c.custom, c.ids.Stats().Start, entry)
	if err != nil {
		return err
	}

	item, err := model.NewItem(entry, owner, int32(count), tmpl)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	if err := c.items.GiveItem(ctx, item); err != nil {
		return fmt.Errorf("give item: %w", err)
	}

	fmt.Fprintf(out, "Gave %d %s (entry %d) to %d, guid %d slot %d\n",
		count, tmpl.Name, entry, owner, item.GUID(), item.Slot())
	return nil
}
