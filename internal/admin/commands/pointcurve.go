package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/itemforge/internal/admin"
)

// PointCurve handles pointcurve [from] [to]: prints enchant points per item level.
// With one argument only that level is printed.
type PointCurve struct {
	curve Curve
}

// NewPointCurve creates the pointcurve command handler.
func NewPointCurve(curve Curve) *PointCurve {
	return &PointCurve{curve: curve}
}

func (c *PointCurve) Names() []string            { return []string{"pointcurve", "curve"} }
func (c *PointCurve) RequiredAccessLevel() int32 { return admin.AccessViewer }

func (c *PointCurve) Handle(_ context.Context, out io.Writer, args []string) error {
	from, to := 1, c.curve.MaxLevel()

	if len(args) >= 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[1], err)
		}
		from, to = v, v
	}
	if len(args) >= 3 {
		v, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[2], err)
		}
		to = v
	}

	if from < 1 || to > c.curve.MaxLevel() || from > to {
		return fmt.Errorf("usage: pointcurve [from] [to], levels 1..%d", c.curve.MaxLevel())
	}
	return c.curve.PrintRange(out, from, to)
}
