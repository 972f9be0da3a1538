// Package dice provides the random source used by item generation rolls.
//
// All rolls go through Source so tests can script exact outcomes.
// *rand.Rand from math/rand/v2 satisfies Source directly.
package dice

import "math/rand/v2"

// Source is the minimal random generator the generation code needs.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Global returns a goroutine-safe Source backed by the math/rand/v2 top-level generator.
func Global() Source {
	return globalSource{}
}

// Seeded returns a deterministic Source. Not safe for concurrent use.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Int returns a uniform int in [min, max] (both inclusive).
// Returns min when max < min.
func Int(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}

// Chance returns a percentage roll in [0, 99].
func Chance(src Source) int {
	return src.IntN(100)
}
