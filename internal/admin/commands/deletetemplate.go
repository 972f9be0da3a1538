package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/udisondev/itemforge/internal/admin"
	"github.com/udisondev/itemforge/internal/constants"
)

// DeleteTemplate handles deletetemplate <entry>: removes a generated template
// together with its item instances and returns the entry to the allocator.
type DeleteTemplate struct {
	custom  CustomTemplates
	creator ItemCreator
	ids     Allocator
}

// NewDeleteTemplate creates the deletetemplate command handler.
func NewDeleteTemplate(custom CustomTemplates, creator ItemCreator, ids Allocator) *DeleteTemplate {
	return &DeleteTemplate{custom: custom, creator: creator, ids: ids}
}

func (c *DeleteTemplate) Names() []string            { return []string{"deletetemplate", "deltemplate"} }
func (c *DeleteTemplate) RequiredAccessLevel() int32 { return admin.AccessOperator }

func (c *DeleteTemplate) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: deletetemplate <entry>")
	}
	entry, err := parseEntry(args[1])
	if err != nil {
		return err
	}
	if start := c.ids.Stats().Start; !constants.IsCustomEntry(entry, start) {
		return fmt.Errorf("entry %d is a base template (generated entries start at %d)", entry, start)
	}

	if err := c.custom.DeleteCustom(ctx, entry); err != nil {
		return err
	}

	// Шаблон уже удалён, ошибку возврата id только показываем
	if err := c.creator.Reclaim(entry); err != nil {
		slog.Warn("deleted template entry not reclaimed", "entry", entry, "error", err)
		fmt.Fprintf(out, "Deleted template %d (entry not reclaimed: %s)\n", entry, err)
		return nil
	}
	fmt.Fprintf(out, "Deleted template %d\n", entry)
	return nil
}
