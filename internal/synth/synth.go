// Package synth carves room floor plans. Each of the ten templates is a
// distinct carving algorithm; every result then goes through the same finish
// pass that stamps the wall border, the four doors and the marker overlay.
package synth

import (
	"fmt"

	"github.com/samdwyer/dungeongen/internal/noise"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// MinSize is the smallest room dimension the templates can carve.
const MinSize = 9

// Markers are the base hazard and decoration counts for a template.
type Markers struct {
	Hazards     int
	Decorations int
}

// Config tunes the finish overlay.
type Config struct {
	Markers           map[world.Template]Markers
	HazardDensity     float64 // Multiplier on hazard counts; 0 means 1
	DecorationDensity float64 // Multiplier on decoration counts; 0 means 1
}

// Synthesizer carves rooms from a shared random stream and noise field.
// It is not safe for concurrent use.
type Synthesizer struct {
	rnd   rng.Random
	field *noise.Field
	cfg   Config
}

// New creates a synthesizer drawing from r and sampling f.
func New(r rng.Random, f *noise.Field, cfg Config) *Synthesizer {
	if cfg.HazardDensity <= 0 {
		cfg.HazardDensity = 1
	}
	if cfg.DecorationDensity <= 0 {
		cfg.DecorationDensity = 1
	}
	return &Synthesizer{rnd: r, field: f, cfg: cfg}
}

// Synthesize returns a height×width tile grid for the template. Dimensions
// below the template's minimum (MinSize, or 13 for chambers) are raised to
// it. An unknown template is a programming error and is reported as
// world.ErrUnknownTemplate.
func (s *Synthesizer) Synthesize(width, height int, t world.Template) ([][]world.Tile, error) {
	width = max(width, minSizeFor(t))
	height = max(height, minSizeFor(t))
	c := newCanvas(width, height)

	switch t {
	case world.TemplateStandard:
		s.standard(c)
	case world.TemplateCircular:
		s.circular(c)
	case world.TemplateCorridorNS:
		s.corridor(c, true)
	case world.TemplateCorridorEW:
		s.corridor(c, false)
	case world.TemplateCross:
		s.cross(c)
	case world.TemplateChambers:
		s.chambers(c)
	case world.TemplateHub:
		s.hub(c)
	case world.TemplateBossArena:
		s.bossArena(c)
	case world.TemplateVault:
		s.vault(c)
	case world.TemplateShop:
		s.shop(c)
	default:
		return nil, fmt.Errorf("%w: %q", world.ErrUnknownTemplate, t)
	}

	s.finish(c, t)
	return c.tiles(), nil
}

// minSizeFor returns the smallest dimension a template is carved at.
func minSizeFor(t world.Template) int {
	if t == world.TemplateChambers {
		return chambersMinSize
	}
	return MinSize
}
