// Package pointcurve maps item level to the enchantment point budget.
//
// Budget per level: round(Steepness * GrowthFactor^(level-1) + Baseline),
// precomputed for levels 1..MaxLevel. A roll applies ±variance percent on top.
package pointcurve

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/udisondev/itemforge/internal/game/dice"
)

const (
	// DefaultMaxLevel is the highest item level with a precomputed budget.
	DefaultMaxLevel = 300
	// DefaultVariancePercent is the default ± variance applied to rolled points.
	DefaultVariancePercent = 20
)

// Formula holds the exponential curve parameters.
type Formula struct {
	Steepness    float64
	GrowthFactor float64
	Baseline     float64
}

// DefaultFormula: 7 points at level 1, ~2.1% growth per level.
var DefaultFormula = Formula{Steepness: 7, GrowthFactor: 1.021, Baseline: 0}

// At evaluates the formula for level (unrounded).
func (f Formula) At(level int) float64 {
	return f.Steepness*math.Pow(f.GrowthFactor, float64(level-1)) + f.Baseline
}

// Points is the rolled budget for one item.
type Points struct {
	Points         int
	VarianceFactor float64
	HasMaxVariance bool // variance roll hit the upper bound
}

// Curve is a precomputed level → base points table. Read-only after New.
type Curve struct {
	formula Formula
	points  []int // index = level-1
}

// New precomputes the curve for levels 1..maxLevel.
func New(f Formula, maxLevel int) *Curve {
	if maxLevel < 1 {
		maxLevel = 1
	}
	pts := make([]int, maxLevel)
	for lvl := 1; lvl <= maxLevel; lvl++ {
		pts[lvl-1] = int(math.Round(f.At(lvl)))
	}
	return &Curve{formula: f, points: pts}
}

// NewDefault returns the curve with DefaultFormula and DefaultMaxLevel.
func NewDefault() *Curve {
	return New(DefaultFormula, DefaultMaxLevel)
}

// MaxLevel returns highest level in the table.
func (c *Curve) MaxLevel() int {
	return len(c.points)
}

// Formula returns the formula the curve was built from.
func (c *Curve) Formula() Formula {
	return c.formula
}

// Base returns the unvaried budget for level.
func (c *Curve) Base(level int) (int, bool) {
	if level < 1 || level > len(c.points) {
		return 0, false
	}
	return c.points[level-1], true
}

// Points rolls the budget for level with ±variancePercent.
// Levels outside the table yield zero points and a warning.
func (c *Curve) Points(src dice.Source, level, variancePercent int) Points {
	base, ok := c.Base(level)
	if !ok {
		slog.Warn("no point curve entry for item level", "level", level, "max_level", len(c.points))
		return Points{}
	}
	if variancePercent < 0 {
		variancePercent = 0
	}

	upper := 100 + variancePercent
	pct := dice.Int(src, 100-variancePercent, upper)
	factor := float64(pct) / 100

	return Points{
		Points:         int(math.Round(float64(base) * factor)),
		VarianceFactor: factor,
		HasMaxVariance: pct == upper,
	}
}

// Print writes "Level N: P" for every level of the curve.
func (c *Curve) Print(w io.Writer) error {
	return c.PrintRange(w, 1, len(c.points))
}

// PrintRange writes the curve for levels from..to (clamped to the table).
func (c *Curve) PrintRange(w io.Writer, from, to int) error {
	from = max(from, 1)
	to = min(to, len(c.points))
	for lvl := from; lvl <= to; lvl++ {
		if _, err := fmt.Fprintf(w, "Level %d: %d\n", lvl, c.points[lvl-1]); err != nil {
			return fmt.Errorf("writing level %d: %w", lvl, err)
		}
	}
	return nil
}
