package synth

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/samdwyer/dungeongen/internal/world"
)

// canvas is the carving surface. Carving helpers only ever write interior
// cells; the border belongs to the finish pass.
type canvas struct {
	gd     rl.Grid
	w, h   int
	cx, cy int
}

func newCanvas(w, h int) *canvas {
	gd := rl.NewGrid(w, h)
	gd.Fill(rl.Cell(world.TileWall))
	return &canvas{gd: gd, w: w, h: h, cx: w / 2, cy: h / 2}
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *canvas) interior(x, y int) bool {
	return x >= 1 && y >= 1 && x < c.w-1 && y < c.h-1
}

func (c *canvas) at(x, y int) world.Tile {
	if !c.inside(x, y) {
		return world.TileWall
	}
	return world.Tile(c.gd.At(gruid.Point{X: x, Y: y}))
}

func (c *canvas) set(x, y int, t world.Tile) {
	if c.interior(x, y) {
		c.gd.Set(gruid.Point{X: x, Y: y}, rl.Cell(t))
	}
}

// stamp writes any in-bounds cell, border included.
func (c *canvas) stamp(x, y int, t world.Tile) {
	if c.inside(x, y) {
		c.gd.Set(gruid.Point{X: x, Y: y}, rl.Cell(t))
	}
}

// rect fills the inclusive rectangle spanned by the two corners.
func (c *canvas) rect(x0, y0, x1, y1 int, t world.Tile) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, t)
		}
	}
}

// disc fills every cell whose centre lies within r of (px, py).
func (c *canvas) disc(px, py, r float64, t world.Tile) {
	for y := int(math.Floor(py - r)); y <= int(math.Ceil(py+r)); y++ {
		for x := int(math.Floor(px - r)); x <= int(math.Ceil(px+r)); x++ {
			dx, dy := float64(x)-px, float64(y)-py
			if dx*dx+dy*dy <= r*r {
				c.set(x, y, t)
			}
		}
	}
}

// square fills a width×width block anchored on (x, y).
func (c *canvas) square(x, y, width int, t world.Tile) {
	lo, hi := -(width-1)/2, width/2
	c.rect(x+lo, y+lo, x+hi, y+hi, t)
}

// hband fills a horizontal band of the given width centred on row y.
func (c *canvas) hband(x0, x1, y, width int, t world.Tile) {
	c.rect(x0, y-(width-1)/2, x1, y+width/2, t)
}

// vband fills a vertical band of the given width centred on column x.
func (c *canvas) vband(y0, y1, x, width int, t world.Tile) {
	c.rect(x-(width-1)/2, y0, x+width/2, y1, t)
}

// lcorridor joins a and b with an L-shaped corridor.
func (c *canvas) lcorridor(a, b world.Point, width int, horizontalFirst bool) {
	if horizontalFirst {
		c.hband(a.X, b.X, a.Y, width, world.TileFloor)
		c.vband(a.Y, b.Y, b.X, width, world.TileFloor)
		return
	}
	c.vband(a.Y, b.Y, a.X, width, world.TileFloor)
	c.hband(a.X, b.X, b.Y, width, world.TileFloor)
}

// ray carves from (px, py) along angle for length tiles and returns the end.
func (c *canvas) ray(px, py, angle, length float64, width int, t world.Tile) (float64, float64) {
	ex, ey := px, py
	for d := 0.0; d <= length; d += 0.5 {
		ex = px + math.Cos(angle)*d
		ey = py + math.Sin(angle)*d
		c.square(int(math.Round(ex)), int(math.Round(ey)), width, t)
	}
	return ex, ey
}

// dist returns the euclidean distance from (x, y) to the canvas centre.
func (c *canvas) dist(x, y int) float64 {
	return math.Hypot(float64(x-c.cx), float64(y-c.cy))
}

// approaches carves 3-wide corridors from every door to the centre.
func (c *canvas) approaches(width int) {
	c.vband(1, c.cy, c.cx, width, world.TileFloor)
	c.vband(c.cy, c.h-2, c.cx, width, world.TileFloor)
	c.hband(1, c.cx, c.cy, width, world.TileFloor)
	c.hband(c.cx, c.w-2, c.cy, width, world.TileFloor)
}

func (c *canvas) tiles() [][]world.Tile {
	rows := make([][]world.Tile, c.h)
	for y := range rows {
		rows[y] = make([]world.Tile, c.w)
		for x := range rows[y] {
			rows[y][x] = world.Tile(c.gd.At(gruid.Point{X: x, Y: y}))
		}
	}
	return rows
}

// box is an inclusive rectangle of cells.
type box struct {
	x0, y0, x1, y1 int
}

func (b box) center() world.Point {
	return world.Point{X: (b.x0 + b.x1) / 2, Y: (b.y0 + b.y1) / 2}
}

func (b box) width() int  { return b.x1 - b.x0 + 1 }
func (b box) height() int { return b.y1 - b.y0 + 1 }

// clip restricts b to the canvas interior.
func (b box) clip(c *canvas) box {
	return box{
		x0: max(b.x0, 1),
		y0: max(b.y0, 1),
		x1: min(b.x1, c.w-2),
		y1: min(b.y1, c.h-2),
	}
}
