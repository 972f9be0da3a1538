package dicetest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/itemforge/internal/game/dice"
)

var _ dice.Source = (*Dice)(nil)

func TestDice_Scripted(t *testing.T) {
	t.Parallel()

	d := NewDice(3, 12, 7).WithFloats(0.25, 0.75)

	assert.Equal(t, 3, d.IntN(10))
	assert.Equal(t, 2, d.IntN(10), "reduced modulo n")
	assert.Equal(t, 1, d.Remaining())
	assert.Equal(t, 0.25, d.Float64())
	assert.Equal(t, 0.75, d.Float64())

	assert.Equal(t, 7, d.IntN(0))
	assert.Zero(t, d.IntN(10), "exhausted ints return 0")
	assert.Zero(t, d.Float64(), "exhausted floats return 0")
}

func TestDice_DrivesHelpers(t *testing.T) {
	t.Parallel()

	// dice.Int принимает смещение от min
	assert.Equal(t, 15, dice.Int(NewDice(5), 10, 20))
}

func TestDice_ConcurrentUse(t *testing.T) {
	t.Parallel()

	ints := make([]int, 100)
	for i := range ints {
		ints[i] = 1
	}
	d := NewDice(ints...)

	var wg sync.WaitGroup
	var mu sync.Mutex
	sum := 0
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				v := d.IntN(2)
				mu.Lock()
				sum += v
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, sum)
	assert.Zero(t, d.Remaining())
}
