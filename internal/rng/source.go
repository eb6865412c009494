// Package rng provides the deterministic random stream that drives level
// generation. A stream is fully determined by its string seed.
package rng

import "math"

// Random is a stream of floats in [0, 1). Every generation stage consumes
// randomness through this interface so tests can script the draws.
type Random interface {
	Next() float64
}

// Source is a seeded xorshift64* stream keyed by the polynomial hash of a
// string seed. It is not safe for concurrent use.
type Source struct {
	seed  string
	state uint64
}

// HashSeed folds a seed string to 32 bits with the rolling hash h = h*31 + c,
// wrapping like a signed 32-bit integer.
func HashSeed(seed string) int32 {
	var h int32
	for _, c := range seed {
		h = h*31 + int32(c)
	}
	return h
}

// New creates a stream for the given seed. The same seed always yields the
// same sequence.
func New(seed string) *Source {
	s := &Source{seed: seed}
	s.state = mix(uint64(uint32(HashSeed(seed))))
	if s.state == 0 {
		s.state = 0x9E3779B97F4A7C15
	}
	return s
}

// mix is the splitmix64 finalizer; it spreads the 32-bit hash over the
// whole xorshift state.
func mix(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Seed returns the seed the stream was created from.
func (s *Source) Seed() string {
	return s.seed
}

// Uint64 advances the stream and returns 64 raw bits.
func (s *Source) Uint64() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 2685821657736338717
}

// Next returns the next float in [0, 1).
func (s *Source) Next() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// IntN returns an int in [0, n). It returns 0 when n <= 0.
func IntN(r Random, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(math.Floor(r.Next() * float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}

// Range returns an int in [lo, hi], inclusive on both ends.
func Range(r Random, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + IntN(r, hi-lo+1)
}

// Float returns a float in [lo, hi).
func Float(r Random, lo, hi float64) float64 {
	return lo + r.Next()*(hi-lo)
}

// Chance reports whether a draw falls under p.
func Chance(r Random, p float64) bool {
	return r.Next() < p
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r Random, items []T) T {
	return items[IntN(r, len(items))]
}

// Shuffle permutes items in place with a Fisher-Yates pass.
func Shuffle[T any](r Random, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := IntN(r, i+1)
		items[i], items[j] = items[j], items[i]
	}
}
