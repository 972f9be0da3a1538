package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/itemforge/internal/admin"
)

// Info handles info <entry>: shows a base or generated item template.
type Info struct {
	base   BaseTemplates
	custom CustomTemplates
	ids    Allocator
}

// NewInfo creates the info command handler.
func NewInfo(base BaseTemplates, custom CustomTemplates, ids Allocator) *Info {
	return &Info{base: base, custom: custom, ids: ids}
}

func (c *Info) Names() []string            { return []string{"info", "template"} }
func (c *Info) RequiredAccessLevel() int32 { return admin.AccessViewer }

func (c *Info) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: info <entry>")
	}
	entry, err := parseEntry(args[1])
	if err != nil {
		return err
	}

	tmpl, perfect, err := lookupTemplate(ctx, c.base, c.custom, c.ids.Stats().Start, entry)
	if err != nil {
		return err
	}
	writeTemplate(out, tmpl, perfect)
	return nil
}
