package synth

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// standard carves a noise-driven cave with a guaranteed central clearing and
// straight corridors from each door to the middle.
func (s *Synthesizer) standard(c *canvas) {
	f := s.field.Offset(rng.Float(s.rnd, 0, 1000), rng.Float(s.rnd, 0, 1000))
	for y := 1; y < c.h-1; y++ {
		for x := 1; x < c.w-1; x++ {
			edge := min(x, y, c.w-1-x, c.h-1-y)
			threshold := -0.15 + 0.2*float64(max(0, 3-edge))
			if f.Sample(float64(x), float64(y)) > threshold {
				c.set(x, y, world.TileFloor)
			}
		}
	}
	r := math.Max(2, float64(min(c.w, c.h))/5)
	c.disc(float64(c.cx), float64(c.cy), r, world.TileFloor)
	c.approaches(3)
}

// circular carves a noisy disc, sometimes split by an inner ring wall with a
// few passages through it.
func (s *Synthesizer) circular(c *canvas) {
	f := s.field.Offset(rng.Float(s.rnd, 0, 1000), rng.Float(s.rnd, 0, 1000))
	radius := float64(min(c.w, c.h))/2 - 1.5
	for y := 1; y < c.h-1; y++ {
		for x := 1; x < c.w-1; x++ {
			wobble := f.Sample(float64(x), float64(y)) * radius * 0.12
			if c.dist(x, y) <= radius+wobble {
				c.set(x, y, world.TileFloor)
			}
		}
	}
	if !rng.Chance(s.rnd, 0.4) || radius < 5 {
		return
	}

	inner := radius * rng.Float(s.rnd, 0.35, 0.5)
	for y := 1; y < c.h-1; y++ {
		for x := 1; x < c.w-1; x++ {
			if d := c.dist(x, y); d >= inner && d < inner+1.5 {
				c.set(x, y, world.TileWall)
			}
		}
	}
	passages := rng.Range(s.rnd, 2, 4)
	base := rng.Float(s.rnd, 0, 2*math.Pi)
	for i := range passages {
		a := base + float64(i)*2*math.Pi/float64(passages)
		for d := inner - 1; d <= inner+2.5; d += 0.5 {
			px := float64(c.cx) + math.Cos(a)*d
			py := float64(c.cy) + math.Sin(a)*d
			c.disc(px, py, 1, world.TileFloor)
		}
	}
}

// corridor carves a long straight hall with side chambers opening onto it.
func (s *Synthesizer) corridor(c *canvas, vertical bool) {
	cw := rng.Range(s.rnd, 3, 5)
	var lo int
	if vertical {
		lo = c.cx - cw/2
		c.rect(lo, 1, lo+cw-1, c.h-2, world.TileFloor)
	} else {
		lo = c.cy - cw/2
		c.rect(1, lo, c.w-2, lo+cw-1, world.TileFloor)
	}
	hi := lo + cw - 1

	chambers := rng.Range(s.rnd, 1, 3)
	for range chambers {
		along := rng.Range(s.rnd, 3, 6) // extent parallel to the hall
		depth := rng.Range(s.rnd, 3, 6)
		near := rng.Chance(s.rnd, 0.5)
		length := c.h
		if !vertical {
			length = c.w
		}
		start := rng.Range(s.rnd, 2, max(2, length-3-along))

		var b box
		switch {
		case vertical && near:
			b = box{x0: lo - depth, y0: start, x1: lo - 1, y1: start + along - 1}
		case vertical:
			b = box{x0: hi + 1, y0: start, x1: hi + depth, y1: start + along - 1}
		case near:
			b = box{x0: start, y0: lo - depth, x1: start + along - 1, y1: lo - 1}
		default:
			b = box{x0: start, y0: hi + 1, x1: start + along - 1, y1: hi + depth}
		}
		b = b.clip(c)
		c.rect(b.x0, b.y0, b.x1, b.y1, world.TileFloor)
	}
}

// cross carves two full-length bands through the centre.
func (s *Synthesizer) cross(c *canvas) {
	cw := max(3, min(c.w, c.h)/4)
	c.hband(1, c.w-2, c.cy, cw, world.TileFloor)
	c.vband(1, c.h-2, c.cx, cw, world.TileFloor)
}

// chambersMinSize is the smallest room dimension that fits three chambers.
const chambersMinSize = 13

// chambers grows a cluster of rectangles outward from a central one and links
// each to its nearest predecessor.
func (s *Synthesizer) chambers(c *canvas) {
	rooms := s.chamberLayout(c)
	for _, b := range rooms {
		c.rect(b.x0, b.y0, b.x1, b.y1, world.TileFloor)
	}
	for i := 1; i < len(rooms); i++ {
		from := rooms[i].center()
		nearest := rooms[0].center()
		for _, prev := range rooms[1:i] {
			if p := prev.center(); from.DistSq(p) < from.DistSq(nearest) {
				nearest = p
			}
		}
		c.lcorridor(from, nearest, rng.Range(s.rnd, 2, 3), rng.Chance(s.rnd, 0.5))
	}
}

// chamberLayout returns 3 to 5 chambers, the first centred. Each random
// chamber hangs off an earlier one. If the random attempts leave fewer than
// three, 3×3 chambers are set against the first one's sides, aligned on its
// centre, until there are three.
func (s *Synthesizer) chamberLayout(c *canvas) []box {
	n := rng.Range(s.rnd, 3, 5)
	maxW := max(4, (c.w-2)/3)
	maxH := max(4, (c.h-2)/3)

	rw, rh := rng.Range(s.rnd, 4, maxW), rng.Range(s.rnd, 4, maxH)
	first := box{x0: c.cx - rw/2, y0: c.cy - rh/2}
	first.x1, first.y1 = first.x0+rw-1, first.y0+rh-1
	first = first.clip(c)
	rooms := []box{first}

	fits := func(b box) bool {
		return b.width() >= 3 && b.height() >= 3
	}
	for attempts := 0; len(rooms) < n && attempts < n*8; attempts++ {
		parent := rng.Pick(s.rnd, rooms)
		side := rng.Pick(s.rnd, world.Sides[:])
		rw, rh := rng.Range(s.rnd, 3, maxW), rng.Range(s.rnd, 3, maxH)
		gap := rng.Range(s.rnd, 1, 2)

		var across int
		switch side {
		case world.North, world.South:
			across = rng.Range(s.rnd, parent.x0-rw+2, parent.x1-1)
		default:
			across = rng.Range(s.rnd, parent.y0-rh+2, parent.y1-1)
		}
		if b := attach(parent, side, rw, rh, gap, across).clip(c); fits(b) {
			rooms = append(rooms, b)
		}
	}

	mid := first.center()
	for _, side := range world.Sides {
		if len(rooms) >= 3 {
			break
		}
		across := mid.X - 1
		if side == world.East || side == world.West {
			across = mid.Y - 1
		}
		if b := attach(first, side, 3, 3, 1, across).clip(c); fits(b) {
			rooms = append(rooms, b)
		}
	}
	return rooms
}

// attach returns a w×h box beside parent on side, gap cells away. across is
// the box's first column (north/south) or first row (east/west).
func attach(parent box, side world.Side, w, h, gap, across int) box {
	var b box
	switch side {
	case world.North:
		b.y1 = parent.y0 - gap - 1
		b.y0 = b.y1 - h + 1
		b.x0, b.x1 = across, across+w-1
	case world.South:
		b.y0 = parent.y1 + gap + 1
		b.y1 = b.y0 + h - 1
		b.x0, b.x1 = across, across+w-1
	case world.West:
		b.x1 = parent.x0 - gap - 1
		b.x0 = b.x1 - w + 1
		b.y0, b.y1 = across, across+h-1
	default:
		b.x0 = parent.x1 + gap + 1
		b.x1 = b.x0 + w - 1
		b.y0, b.y1 = across, across+h-1
	}
	return b
}

// hub carves a central disc with spokes ending in small round chambers.
// Spokes are at least two tiles wide so diagonal ones stay walkable.
func (s *Synthesizer) hub(c *canvas) {
	cx, cy := float64(c.cx), float64(c.cy)
	hr := float64(min(c.w, c.h))/6 + 1
	c.disc(cx, cy, hr, world.TileFloor)

	spokes := rng.Range(s.rnd, 3, 5)
	base := rng.Float(s.rnd, 0, 2*math.Pi)
	reach := float64(min(c.w, c.h))/2 - 3
	// Spoke ends stay on interior cells so each end chamber overlaps its spoke.
	limit := float64(min(c.w, c.h))/2 - 2
	for i := range spokes {
		a := base + float64(i)*2*math.Pi/float64(spokes) + rng.Float(s.rnd, -0.3, 0.3)
		length := math.Min(rng.Float(s.rnd, hr+2, math.Max(hr+2.5, reach)), limit)
		width := rng.Range(s.rnd, 2, 3)
		ex, ey := c.ray(cx, cy, a, length, width, world.TileFloor)
		c.disc(ex, ey, rng.Float(s.rnd, 2, 3), world.TileFloor)
	}
}
