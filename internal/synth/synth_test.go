package synth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/samdwyer/dungeongen/internal/noise"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

var testMarkers = map[world.Template]Markers{
	world.TemplateStandard:  {Hazards: 2, Decorations: 3},
	world.TemplateBossArena: {Hazards: 3, Decorations: 2},
	world.TemplateVault:     {Hazards: 0, Decorations: 3},
}

func newTestSynth(seed string) *Synthesizer {
	r := rng.New(seed)
	return New(r, noise.New(r, noise.DefaultParams), Config{Markers: testMarkers})
}

var testSizes = []struct{ w, h int }{
	{9, 9}, {15, 15}, {21, 17}, {17, 25}, {27, 27}, {35, 31},
}

// reachable floods passable tiles from the centre.
func reachable(tiles [][]world.Tile) map[world.Point]bool {
	h, w := len(tiles), len(tiles[0])
	start := world.Center(w, h)
	seen := map[world.Point]bool{start: true}
	queue := []world.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []world.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			q := world.Point{X: p.X + d.X, Y: p.Y + d.Y}
			if q.X < 0 || q.Y < 0 || q.X >= w || q.Y >= h || seen[q] {
				continue
			}
			if tiles[q.Y][q.X].IsPassable() {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return seen
}

// fullyConnected lists the templates whose every passable tile must be
// reachable from the centre.
var fullyConnected = map[world.Template]bool{
	world.TemplateHub:      true,
	world.TemplateChambers: true,
	world.TemplateVault:    true,
}

func TestSynthesizeInvariants(t *testing.T) {
	for _, tmpl := range world.Templates {
		for _, size := range testSizes {
			for i := range 4 {
				name := fmt.Sprintf("%s/%dx%d/%d", tmpl, size.w, size.h, i)
				t.Run(name, func(t *testing.T) {
					s := newTestSynth(name)
					tiles, err := s.Synthesize(size.w, size.h, tmpl)
					if err != nil {
						t.Fatalf("Synthesize: %v", err)
					}
					w, h := max(size.w, minSizeFor(tmpl)), max(size.h, minSizeFor(tmpl))
					if len(tiles) != h || len(tiles[0]) != w {
						t.Fatalf("got %dx%d grid, want %dx%d", len(tiles[0]), len(tiles), w, h)
					}

					doors := world.DoorPositions(w, h)
					isDoor := func(x, y int) bool {
						for _, d := range doors {
							if d.X == x && d.Y == y {
								return true
							}
						}
						return false
					}
					for y, row := range tiles {
						for x, tile := range row {
							border := x == 0 || y == 0 || x == w-1 || y == h-1
							switch {
							case isDoor(x, y):
								if tile != world.TileDoor {
									t.Errorf("door (%d,%d) = %v", x, y, tile)
								}
							case border:
								if tile != world.TileWall {
									t.Errorf("border (%d,%d) = %v, want wall", x, y, tile)
								}
							case tile == world.TileDoor:
								t.Errorf("interior door at (%d,%d)", x, y)
							}
						}
					}

					seen := reachable(tiles)
					for _, d := range doors {
						if !seen[d] {
							t.Errorf("door %v unreachable from centre\n%s", d, render(tiles))
						}
					}
					if !fullyConnected[tmpl] {
						return
					}
					for y, row := range tiles {
						for x, tile := range row {
							if tile.IsPassable() && !seen[world.Point{X: x, Y: y}] {
								t.Fatalf("(%d,%d) %v cut off from the centre\n%s", x, y, tile, render(tiles))
							}
						}
					}
				})
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	for _, tmpl := range world.Templates {
		a, err := newTestSynth("repeat").Synthesize(23, 19, tmpl)
		if err != nil {
			t.Fatalf("%s: %v", tmpl, err)
		}
		b, _ := newTestSynth("repeat").Synthesize(23, 19, tmpl)
		if render(a) != render(b) {
			t.Errorf("%s: same seed produced different rooms", tmpl)
		}
	}
}

func TestSynthesizeUnknownTemplate(t *testing.T) {
	_, err := newTestSynth("x").Synthesize(15, 15, world.Template("ballroom"))
	if !errors.Is(err, world.ErrUnknownTemplate) {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
}

func TestSynthesizeRaisesSmallSizes(t *testing.T) {
	tiles, err := newTestSynth("tiny").Synthesize(3, 4, world.TemplateStandard)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(tiles) != MinSize || len(tiles[0]) != MinSize {
		t.Fatalf("got %dx%d, want %dx%d", len(tiles[0]), len(tiles), MinSize, MinSize)
	}
}

func TestChamberLayout(t *testing.T) {
	for _, size := range testSizes {
		w, h := max(size.w, chambersMinSize), max(size.h, chambersMinSize)
		for i := range 50 {
			s := newTestSynth(fmt.Sprintf("chambers-%d", i))
			c := newCanvas(w, h)
			rooms := s.chamberLayout(c)
			if n := len(rooms); n < 3 || n > 5 {
				t.Fatalf("%dx%d seed %d: %d chambers, want 3 to 5", w, h, i, n)
			}
			for _, b := range rooms {
				if b.width() < 3 || b.height() < 3 || b.x0 < 1 || b.y0 < 1 || b.x1 > w-2 || b.y1 > h-2 {
					t.Errorf("%dx%d seed %d: chamber %+v out of bounds or too small", w, h, i, b)
				}
			}
		}
	}

	tiles, err := newTestSynth("tiny-chambers").Synthesize(MinSize, MinSize, world.TemplateChambers)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(tiles) != chambersMinSize || len(tiles[0]) != chambersMinSize {
		t.Errorf("chambers at %d raised to %dx%d, want %d", MinSize, len(tiles[0]), len(tiles), chambersMinSize)
	}
}

func TestHubSpokesReachEndChambers(t *testing.T) {
	for i := range 40 {
		seed := fmt.Sprintf("hub-%d", i)
		tiles, _ := newTestSynth(seed).Synthesize(27, 25, world.TemplateHub)
		seen := reachable(tiles)
		for y, row := range tiles {
			for x, tile := range row {
				if tile.IsPassable() && !seen[world.Point{X: x, Y: y}] {
					t.Fatalf("%s: (%d,%d) only touches the hub diagonally\n%s", seed, x, y, render(tiles))
				}
			}
		}
	}
}

func TestTemplateFeatures(t *testing.T) {
	count := func(tiles [][]world.Tile, want world.Tile) int {
		n := 0
		for _, row := range tiles {
			for _, tile := range row {
				if tile == want {
					n++
				}
			}
		}
		return n
	}

	for i := range 10 {
		seed := fmt.Sprintf("features-%d", i)

		boss, _ := newTestSynth(seed).Synthesize(31, 31, world.TemplateBossArena)
		if c := world.Center(31, 31); boss[c.Y][c.X] != world.TilePlatform {
			t.Errorf("%s: boss centre = %v, want platform", seed, boss[c.Y][c.X])
		}

		vault, _ := newTestSynth(seed).Synthesize(17, 15, world.TemplateVault)
		if count(vault, world.TilePedestal) == 0 {
			t.Errorf("%s: vault has no pedestal\n%s", seed, render(vault))
		}

		shop, _ := newTestSynth(seed).Synthesize(19, 17, world.TemplateShop)
		if count(shop, world.TileShopItem) == 0 {
			t.Errorf("%s: shop has no items\n%s", seed, render(shop))
		}
	}
}

func TestMarkerOverlay(t *testing.T) {
	for i := range 10 {
		seed := fmt.Sprintf("markers-%d", i)
		tiles, _ := newTestSynth(seed).Synthesize(27, 27, world.TemplateStandard)
		h, w := len(tiles), len(tiles[0])
		c := world.Center(w, h)

		hazards, decorations := 0, 0
		for y, row := range tiles {
			for x, tile := range row {
				if tile != world.TileHazard && tile != world.TileDecoration {
					continue
				}
				if tile == world.TileHazard {
					hazards++
				} else {
					decorations++
				}
				if abs(x-c.X) < 3 && abs(y-c.Y) < 3 {
					t.Errorf("%s: marker at (%d,%d) inside central clearing", seed, x, y)
				}
				for ny := y - 1; ny <= y+1; ny++ {
					for nx := x - 1; nx <= x+1; nx++ {
						if (nx != x || ny != y) && tiles[ny][nx].IsSpecial() && tiles[ny][nx] != world.TileDoor {
							t.Errorf("%s: marker at (%d,%d) touches %v", seed, x, y, tiles[ny][nx])
						}
					}
				}
			}
		}
		if hazards > 2 || decorations > 3 {
			t.Errorf("%s: %d hazards, %d decorations; want at most 2 and 3", seed, hazards, decorations)
		}
	}
}

func TestDensityScalesMarkers(t *testing.T) {
	r := rng.New("dense")
	s := New(r, noise.New(r, noise.DefaultParams), Config{
		Markers:       testMarkers,
		HazardDensity: 0,
	})
	if s.cfg.HazardDensity != 1 || s.cfg.DecorationDensity != 1 {
		t.Fatalf("zero densities should default to 1, got %v/%v", s.cfg.HazardDensity, s.cfg.DecorationDensity)
	}

	r = rng.New("dense")
	s = New(r, noise.New(r, noise.DefaultParams), Config{
		Markers:           testMarkers,
		HazardDensity:     1,
		DecorationDensity: 0.01,
	})
	tiles, _ := s.Synthesize(27, 27, world.TemplateVault)
	for _, row := range tiles {
		for _, tile := range row {
			if tile == world.TileDecoration || tile == world.TileHazard {
				t.Fatalf("expected no markers with near-zero density\n%s", render(tiles))
			}
		}
	}
}

func render(tiles [][]world.Tile) string {
	room := world.Room{Width: len(tiles[0]), Height: len(tiles), Tiles: tiles}
	return room.String()
}
