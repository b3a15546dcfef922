// Package rng provides the single reseedable pseudo-random stream that every
// generation step draws from. Callers reseed it explicitly at the start of each
// independently seeded unit of work, so the order of draws is part of the contract.
package rng

import (
	"math/rand"
)

// Stream is a reseedable pseudo-random source. It is not safe for concurrent use;
// parallel batch work must give each item its own Stream.
type Stream struct {
	r *rand.Rand
}

// New returns a stream seeded with seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Reseed resets the stream so the next draws are a pure function of seed.
func (s *Stream) Reseed(seed int64) {
	s.r.Seed(seed)
}

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntBetween returns an integer in the closed range [lo, hi].
func (s *Stream) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Index returns an index in [0, n). n must be positive.
func (s *Stream) Index(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.Intn(n)
}

// Choice picks one element of items uniformly. It panics on an empty slice,
// which callers rule out by construction.
func Choice[T any](s *Stream, items []T) T {
	return items[s.Index(len(items))]
}
