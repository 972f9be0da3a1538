package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt_Bounds(t *testing.T) {
	t.Parallel()

	src := Seeded(42)
	seenMin, seenMax := false, false
	for range 5000 {
		v := Int(src, 80, 120)
		assert.GreaterOrEqual(t, v, 80)
		assert.LessOrEqual(t, v, 120)
		if v == 80 {
			seenMin = true
		}
		if v == 120 {
			seenMax = true
		}
	}
	assert.True(t, seenMin, "lower bound must be reachable")
	assert.True(t, seenMax, "upper bound must be reachable")
}

func TestInt_Degenerate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 100, Int(Global(), 100, 100))
	assert.Equal(t, 7, Int(Global(), 7, 3))
}

func TestChance_Range(t *testing.T) {
	t.Parallel()

	src := Seeded(7)
	for range 1000 {
		c := Chance(src)
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 100)
	}
}

func TestSeeded_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := Seeded(99), Seeded(99)
	for range 100 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
