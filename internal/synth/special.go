package synth

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// bossArena carves an open arena, optionally broken up by columns and short
// walls, with a platform at the centre.
func (s *Synthesizer) bossArena(c *canvas) {
	if rng.Chance(s.rnd, 0.7) {
		r := float64(min(c.w, c.h))/2 - 2
		c.disc(float64(c.cx), float64(c.cy), r, world.TileFloor)
	} else {
		c.rect(2, 2, c.w-3, c.h-3, world.TileFloor)
	}

	if rng.Chance(s.rnd, 0.6) {
		n := rng.Range(s.rnd, 3, 7)
		placed := 0
		for attempts := 0; placed < n && attempts < n*4; attempts++ {
			x, y := rng.Range(s.rnd, 3, c.w-4), rng.Range(s.rnd, 3, c.h-4)
			if abs(x-c.cx) <= 4 && abs(y-c.cy) <= 4 {
				continue
			}
			if c.at(x, y) != world.TileFloor {
				continue
			}
			if rng.Chance(s.rnd, 0.5) {
				c.rect(x, y, x+1, y+1, world.TileWall)
			} else {
				length := rng.Range(s.rnd, 3, 5)
				if rng.Chance(s.rnd, 0.5) {
					c.rect(x, y, x+length-1, y, world.TileWall)
				} else {
					c.rect(x, y, x, y+length-1, world.TileWall)
				}
			}
			placed++
		}
	}

	c.approaches(3)
	c.set(c.cx, c.cy, world.TilePlatform)
}

// vault carves one of three treasure room layouts holding pedestals.
func (s *Synthesizer) vault(c *canvas) {
	switch rng.IntN(s.rnd, 3) {
	case 0:
		r := float64(min(c.w, c.h))/2 - 2
		c.disc(float64(c.cx), float64(c.cy), r, world.TileFloor)
		n := rng.Range(s.rnd, 1, 3)
		base := rng.Float(s.rnd, 0, 2*math.Pi)
		for i := range n {
			a := base + float64(i)*2*math.Pi/float64(n)
			x := int(math.Round(float64(c.cx) + math.Cos(a)*r/2))
			y := int(math.Round(float64(c.cy) + math.Sin(a)*r/2))
			c.set(x, y, world.TilePedestal)
		}
	case 1:
		x0, y0, x1, y1 := 2, 2, c.w-3, c.h-3
		c.rect(x0, y0, x1, y1, world.TileFloor)
		for x := x0 + 1; x < x1; x += 3 {
			c.set(x, y0+1, world.TileWall)
			c.set(x, y1-1, world.TileWall)
		}
		for y := y0 + 4; y < y1-1; y += 3 {
			c.set(x0+1, y, world.TileWall)
			c.set(x1-1, y, world.TileWall)
		}
		c.set(c.cx, c.cy, world.TilePedestal)
	default:
		c.rect(1, 1, c.w-2, c.h-2, world.TileFloor)
		parts := rng.Range(s.rnd, 1, 2)
		vertical := c.w >= c.h
		span := c.h - 2
		if vertical {
			span = c.w - 2
		}
		lo := 1
		for i := 1; i <= parts+1; i++ {
			hi := span
			if i <= parts {
				hi = i * span / (parts + 1)
				if vertical {
					c.rect(hi, 1, hi, c.h-2, world.TileWall)
					c.set(hi, rng.Range(s.rnd, 2, c.h-3), world.TileFloor)
				} else {
					c.rect(1, hi, c.w-2, hi, world.TileWall)
					c.set(rng.Range(s.rnd, 2, c.w-3), hi, world.TileFloor)
				}
				hi--
			}
			mid := (lo + hi) / 2
			if vertical {
				c.set(mid, c.cy, world.TilePedestal)
			} else {
				c.set(c.cx, mid, world.TilePedestal)
			}
			lo = hi + 2
		}
	}
}

// shop carves an open floor with a merchant counter along one side and item
// displays on the customer side, or items around the perimeter.
func (s *Synthesizer) shop(c *canvas) {
	c.rect(1, 1, c.w-2, c.h-2, world.TileFloor)
	lane := func(x, y int) bool {
		return abs(x-c.cx) <= 1 || abs(y-c.cy) <= 1
	}

	if !rng.Chance(s.rnd, 0.8) {
		for x := 3; x <= c.w-4; x += 3 {
			for _, y := range []int{2, c.h - 3} {
				if !lane(x, y) {
					c.set(x, y, world.TileShopItem)
				}
			}
		}
		for y := 5; y <= c.h-6; y += 3 {
			for _, x := range []int{2, c.w - 3} {
				if !lane(x, y) {
					c.set(x, y, world.TileShopItem)
				}
			}
		}
		return
	}

	const depth = 4
	area := box{x0: 2, y0: 2, x1: c.w - 3, y1: c.h - 3}
	switch rng.Pick(s.rnd, world.Sides[:]) {
	case world.North:
		c.rect(1, depth, c.w-2, depth, world.TileWall)
		c.set(rng.Range(s.rnd, 2, c.w-3), depth, world.TileFloor)
		area.y0 = depth + 2
	case world.South:
		y := c.h - 1 - depth
		c.rect(1, y, c.w-2, y, world.TileWall)
		c.set(rng.Range(s.rnd, 2, c.w-3), y, world.TileFloor)
		area.y1 = y - 2
	case world.West:
		c.rect(depth, 1, depth, c.h-2, world.TileWall)
		c.set(depth, rng.Range(s.rnd, 2, c.h-3), world.TileFloor)
		area.x0 = depth + 2
	default:
		x := c.w - 1 - depth
		c.rect(x, 1, x, c.h-2, world.TileWall)
		c.set(x, rng.Range(s.rnd, 2, c.h-3), world.TileFloor)
		area.x1 = x - 2
	}
	for y := area.y0; y <= area.y1; y += 3 {
		for x := area.x0; x <= area.x1; x += 3 {
			if !lane(x, y) {
				c.set(x, y, world.TileShopItem)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
