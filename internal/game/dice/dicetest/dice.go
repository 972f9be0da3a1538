// Package dicetest provides a scripted dice.Source for deterministic tests.
package dicetest

import "sync"

// Dice is a scripted dice.Source.
//
// IntN returns the next value from Ints (reduced modulo n), Float64 the next
// value from Floats. Exhausted scripts return 0.
// For dice.Int(src, min, max) script the offset (value - min);
// for dice.Chance script the roll itself.
type Dice struct {
	mu     sync.Mutex
	Ints   []int
	Floats []float64
}

// NewDice creates a scripted source returning ints in order.
func NewDice(ints ...int) *Dice {
	return &Dice{Ints: ints}
}

// WithFloats appends scripted floats and returns d.
func (d *Dice) WithFloats(f ...float64) *Dice {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Floats = append(d.Floats, f...)
	return d
}

// IntN implements dice.Source.
func (d *Dice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Ints) == 0 {
		return 0
	}
	v := d.Ints[0]
	d.Ints = d.Ints[1:]
	if n > 0 {
		v %= n
	}
	return v
}

// Float64 implements dice.Source.
func (d *Dice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Floats) == 0 {
		return 0
	}
	v := d.Floats[0]
	d.Floats = d.Floats[1:]
	return v
}

// Remaining returns number of unconsumed ints.
func (d *Dice) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Ints)
}
