package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/itemforge/internal/admin"
)

// IDStats handles idstats: shows the generated template id allocator.
type IDStats struct {
	ids Allocator
}

// NewIDStats creates the idstats command handler.
func NewIDStats(ids Allocator) *IDStats {
	return &IDStats{ids: ids}
}

func (c *IDStats) Names() []string            { return []string{"idstats", "ids"} }
func (c *IDStats) RequiredAccessLevel() int32 { return admin.AccessViewer }

func (c *IDStats) Handle(_ context.Context, out io.Writer, _ []string) error {
	s := c.ids.Stats()
	fmt.Fprintln(out, "=== ID Factory ===")
	fmt.Fprintf(out, "Start: %d, Next: %d, Max: %d\n", s.Start, s.Next, s.Max)
	fmt.Fprintf(out, "Used: %d, Free: %d\n", s.Used, s.Free)
	return nil
}
