// Command pointcurve prints the enchantment point budget per item level,
// using the curve from the itemforge config (defaults when the file is missing).
//
// Usage:
//
//	go run ./cmd/pointcurve
//	go run ./cmd/pointcurve -from 40 -to 60
//	go run ./cmd/pointcurve -config config/itemforge.yaml -level 50
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/udisondev/itemforge/internal/config"
	"github.com/udisondev/itemforge/internal/game/pointcurve"
)

func main() {
	cfgPath := flag.String("config", config.Path(), "path to itemforge.yaml")
	from := flag.Int("from", 1, "first level")
	to := flag.Int("to", 0, "last level (0 = max level)")
	level := flag.Int("level", 0, "print a single level")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pointcurve: %v\n", err)
		os.Exit(1)
	}

	if err := printCurve(os.Stdout, cfg.Generation.PointCurve(), *from, *to, *level); err != nil {
		fmt.Fprintf(os.Stderr, "pointcurve: %v\n", err)
		os.Exit(1)
	}
}

func printCurve(w io.Writer, curve *pointcurve.Curve, from, to, level int) error {
	if level > 0 {
		from, to = level, level
	}
	if to == 0 {
		to = curve.MaxLevel()
	}
	if from < 1 || to > curve.MaxLevel() || from > to {
		return fmt.Errorf("level range %d..%d outside 1..%d", from, to, curve.MaxLevel())
	}

	f := curve.Formula()
	fmt.Fprintf(w, "# steepness=%g growth=%g baseline=%g\n", f.Steepness, f.GrowthFactor, f.Baseline)
	return curve.PrintRange(w, from, to)
}
