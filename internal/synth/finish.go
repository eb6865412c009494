package synth

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// approachDepth is how far the cleared zone in front of each door reaches
// into the room.
const approachDepth = 2

// finish applies the shared post-pass: door approaches, the wall border, the
// doors themselves, door reachability repair and the marker overlay.
func (s *Synthesizer) finish(c *canvas, t world.Template) {
	doors := world.DoorPositions(c.w, c.h)
	for _, side := range world.Sides {
		a := approachZone(c, doors[side], side)
		c.rect(a.x0, a.y0, a.x1, a.y1, world.TileFloor)
	}

	for x := range c.w {
		c.stamp(x, 0, world.TileWall)
		c.stamp(x, c.h-1, world.TileWall)
	}
	for y := range c.h {
		c.stamp(0, y, world.TileWall)
		c.stamp(c.w-1, y, world.TileWall)
	}
	for _, d := range doors {
		c.stamp(d.X, d.Y, world.TileDoor)
	}

	s.linkDoors(c, doors)
	s.overlay(c, t, doors)
}

// approachZone returns the 3-wide strip just inside a door.
func approachZone(c *canvas, door world.Point, side world.Side) box {
	dx, dy := side.Inward()
	near := world.Point{X: door.X + dx, Y: door.Y + dy}
	far := world.Point{X: door.X + dx*approachDepth, Y: door.Y + dy*approachDepth}
	b := box{
		x0: min(near.X, far.X), y0: min(near.Y, far.Y),
		x1: max(near.X, far.X), y1: max(near.Y, far.Y),
	}
	if dx == 0 {
		b.x0--
		b.x1++
	} else {
		b.y0--
		b.y1++
	}
	return b.clip(c)
}

// tilePath implements paths.Pather over the passable tiles of a canvas.
type tilePath struct {
	c   *canvas
	nbs paths.Neighbors
}

func (tp *tilePath) passable(p gruid.Point) bool {
	return tp.c.at(p.X, p.Y).IsPassable()
}

func (tp *tilePath) Neighbors(p gruid.Point) []gruid.Point {
	return tp.nbs.Cardinal(p, tp.passable)
}

// linkDoors makes every door reachable from the room centre. A door whose
// approach lies outside the centre's component gets a straight 1-wide
// corridor to the centre; only walls are converted.
func (s *Synthesizer) linkDoors(c *canvas, doors [4]world.Point) {
	if !c.at(c.cx, c.cy).IsPassable() {
		c.set(c.cx, c.cy, world.TileFloor)
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, c.w, c.h))
	tp := &tilePath{c: c}
	centre := gruid.Point{X: c.cx, Y: c.cy}
	pr.CCMap(tp, centre)

	for _, side := range world.Sides {
		dx, dy := side.Inward()
		a := gruid.Point{X: doors[side].X + dx, Y: doors[side].Y + dy}
		if pr.CCMapAt(a) != -1 {
			continue
		}
		for p := a; p != centre; p = p.Shift(dx, dy) {
			if c.at(p.X, p.Y) == world.TileWall {
				c.set(p.X, p.Y, world.TileFloor)
			}
		}
		pr.CCMap(tp, centre)
	}
}

// overlay sprinkles hazards then decorations over plain floor. Markers never
// touch each other, the central clearing or a door approach.
func (s *Synthesizer) overlay(c *canvas, t world.Template, doors [4]world.Point) {
	m := s.cfg.Markers[t]
	hazards := int(math.Round(float64(m.Hazards) * s.cfg.HazardDensity))
	decorations := int(math.Round(float64(m.Decorations) * s.cfg.DecorationDensity))

	var zones [4]box
	for _, side := range world.Sides {
		zones[side] = approachZone(c, doors[side], side)
	}
	free := func(x, y int) bool {
		if c.at(x, y) != world.TileFloor {
			return false
		}
		if abs(x-c.cx) < 3 && abs(y-c.cy) < 3 {
			return false
		}
		for _, z := range zones {
			if x >= z.x0 && x <= z.x1 && y >= z.y0 && y <= z.y1 {
				return false
			}
		}
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if c.at(nx, ny).IsSpecial() {
					return false
				}
			}
		}
		return true
	}

	scatter := func(n int, tile world.Tile) {
		placed := 0
		for attempts := 0; placed < n && attempts < n*20; attempts++ {
			x, y := rng.Range(s.rnd, 1, c.w-2), rng.Range(s.rnd, 1, c.h-2)
			if free(x, y) {
				c.set(x, y, tile)
				placed++
			}
		}
	}
	scatter(hazards, world.TileHazard)
	scatter(decorations, world.TileDecoration)
}
