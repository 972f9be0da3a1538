package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/itemforge/internal/admin"
	"github.com/udisondev/itemforge/internal/model"
)

// GenItem handles genitem <baseEntry> [rank]: generates one enchanted template
// as if a creature of the given rank (NORMAL by default) dropped the base item.
type GenItem struct {
	base    BaseTemplates
	creator ItemCreator
}

// NewGenItem creates the genitem command handler.
func NewGenItem(base BaseTemplates, creator ItemCreator) *GenItem {
	return &GenItem{base: base, creator: creator}
}

func (c *GenItem) Names() []string            { return []string{"genitem", "enchant"} }
func (c *GenItem) RequiredAccessLevel() int32 { return admin.AccessOperator }

func (c *GenItem) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: genitem <baseEntry> [rank]")
	}
	entry, err := parseEntry(args[1])
	if err != nil {
		return err
	}

	rank := model.RankNormal
	if len(args) >= 3 {
		if rank, err = model.ParseCreatureRank(args[2]); err != nil {
			return err
		}
	}

	base, err := c.base.GetBase(ctx, entry)
	if err != nil {
		return err
	}

	creature := model.NewCreature(0, model.NewCreatureTemplate(0, "admin", 0, rank))
	created, err := c.creator.CreateEnchantedItem(ctx, base, creature)
	if err != nil {
		return err
	}

	if created.Upgraded() {
		fmt.Fprintf(out, "Quality upgraded: %s -> %s\n", created.BaseQuality, created.Template.Quality)
	}
	writeTemplate(out, created.Template, created.Perfect)
	fmt.Fprintf(out, "gen_id: %s\n", created.GenID)
	return nil
}
