// Package rngtest provides scripted random streams for tests.
package rngtest

// Script replays a fixed list of draws, cycling when it runs out.
type Script struct {
	Draws []float64
	pos   int
}

// New returns a script over the given draws.
func New(draws ...float64) *Script {
	return &Script{Draws: draws}
}

// Next returns the next scripted draw.
func (s *Script) Next() float64 {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.pos%len(s.Draws)]
	s.pos++
	return v
}

// Used returns how many draws have been consumed.
func (s *Script) Used() int {
	return s.pos
}
