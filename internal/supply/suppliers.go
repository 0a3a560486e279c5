package supply

import (
	"math/rand"
	"slices"
)

const (
	NameRandom = "random"
	NameCycle  = "cycle"
)

func init() {
	Register(NameRandom, "uniform pick from the symbol set, seeded", func(symbols []string, seed int64) (Tiles, error) {
		return NewRandom(symbols, seed), nil
	})
	Register(NameCycle, "symbols in order, repeating; ignores the seed", func(symbols []string, _ int64) (Tiles, error) {
		return NewCycle(symbols), nil
	})
}

// Random picks symbols uniformly with a seeded RNG.
type Random struct {
	symbols []string
	rng     *rand.Rand
}

// NewRandom creates a seeded random supplier. The same seed always yields
// the same sequence.
func NewRandom(symbols []string, seed int64) *Random {
	return &Random{
		symbols: slices.Clone(symbols),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Next returns a random symbol.
func (r *Random) Next() string {
	return r.symbols[r.rng.Intn(len(r.symbols))]
}

// Cycle hands out symbols in order and wraps around.
type Cycle struct {
	symbols []string
	next    int
}

// NewCycle creates a cycling supplier.
func NewCycle(symbols []string) *Cycle {
	return &Cycle{symbols: slices.Clone(symbols)}
}

// Next returns the next symbol in order.
func (c *Cycle) Next() string {
	v := c.symbols[c.next]
	c.next = (c.next + 1) % len(c.symbols)
	return v
}

// Script returns a fixed sequence, then falls back to another supplier.
// Used to stage boards and refills.
type Script struct {
	values   []string
	pos      int
	fallback Tiles
}

// NewScript creates a scripted supplier. fallback may be nil, in which case
// the script repeats from the start once exhausted; values must then be
// non-empty.
func NewScript(values []string, fallback Tiles) *Script {
	return &Script{values: slices.Clone(values), fallback: fallback}
}

// Next returns the next scripted value.
func (s *Script) Next() string {
	if s.pos < len(s.values) {
		v := s.values[s.pos]
		s.pos++
		return v
	}
	if s.fallback != nil {
		return s.fallback.Next()
	}
	s.pos = 1
	return s.values[0]
}

// Remaining returns how many scripted values are left.
func (s *Script) Remaining() int {
	return len(s.values) - s.pos
}

// Counting wraps a supplier and counts calls.
type Counting struct {
	Tiles
	Calls int
}

// Next forwards to the wrapped supplier.
func (c *Counting) Next() string {
	c.Calls++
	return c.Tiles.Next()
}
