// Package noise samples 2D coherent noise used to carve organic room shapes.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/samdwyer/dungeongen/internal/rng"
)

// Params holds the fractal noise parameters.
type Params struct {
	Octaves     int
	Frequency   float64
	Amplitude   float64
	Persistence float64
	Lacunarity  float64
}

// DefaultParams are tuned for rooms between 10 and 40 tiles across.
var DefaultParams = Params{
	Octaves:     3,
	Frequency:   0.12,
	Amplitude:   1,
	Persistence: 0.5,
	Lacunarity:  2,
}

// Field is a seeded fractal OpenSimplex field.
type Field struct {
	params Params
	src    opensimplex.Noise
	dx, dy float64
}

// New creates a field seeded from a single draw of r.
func New(r rng.Random, params Params) *Field {
	if params.Octaves < 1 {
		params.Octaves = 1
	}
	if params.Lacunarity <= 0 {
		params.Lacunarity = DefaultParams.Lacunarity
	}
	if params.Amplitude == 0 {
		params.Amplitude = 1
	}
	seed := int64(math.Floor(r.Next() * math.MaxInt32))
	return &Field{params: params, src: opensimplex.New(seed)}
}

// Offset returns a view of the same field translated in noise space, so
// different rooms read unrelated regions.
func (f *Field) Offset(dx, dy float64) *Field {
	return &Field{params: f.params, src: f.src, dx: f.dx + dx, dy: f.dy + dy}
}

// Sample returns the normalized fractal noise at (x, y), roughly in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	freq := f.params.Frequency
	amp := f.params.Amplitude
	total, norm := 0.0, 0.0
	for i := 0; i < f.params.Octaves; i++ {
		total += f.src.Eval2((x+f.dx)*freq, (y+f.dy)*freq) * amp
		norm += amp
		freq *= f.params.Lacunarity
		amp *= f.params.Persistence
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}
