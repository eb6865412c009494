package preview

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	sim.SetSize(80, 40)
	t.Cleanup(s.Close)
	return s, sim
}

func testLevel() *world.Level {
	tiles := func() [][]world.Tile {
		return [][]world.Tile{
			{world.TileWall, world.TileDoor, world.TileWall},
			{world.TileFloor, world.TileHazard, world.TilePedestal},
			{world.TileWall, world.TileWall, world.TileWall},
		}
	}
	skeleton := &world.Enemy{Archetype: "skeleton", Position: world.Point{X: 0, Y: 1}}
	rooms := []*world.Room{
		{ID: "room-0", Role: world.RoleEntrance, Template: world.TemplateStandard, Width: 3, Height: 3, Tiles: tiles()},
		{ID: "room-1", Role: world.RoleBoss, Template: world.TemplateBossArena, Width: 3, Height: 3, Tiles: tiles(),
			Enemies:   []*world.Enemy{skeleton},
			Treasures: []*world.Treasure{{Rarity: world.RarityLegendary, Position: world.Point{X: 2, Y: 1}}}},
	}
	return &world.Level{ID: "level-t", Theme: "crypt", Rooms: rooms}
}

func TestRenderRoom(t *testing.T) {
	s, sim := newSimScreen(t)
	tables := gamedata.MustDefault()
	level := testLevel()

	NewRenderer(s, tables, level.Theme).Render(level, 0)
	for y, row := range level.Rooms[0].Tiles {
		for x, tile := range row {
			r, _, _, _ := sim.GetContent(x, mapTop+y)
			if r != tile.Rune() {
				t.Errorf("(%d,%d) = %q, want %q", x, y, r, tile.Rune())
			}
		}
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != 'r' {
		t.Errorf("header starts with %q, want the room id", r)
	}

	_, _, style, _ := sim.GetContent(0, mapTop)
	fg, _, _ := style.Decompose()
	if want := tables.Theme("crypt").WallColor(); fg != want {
		t.Errorf("wall color = %v, want theme color %v", fg, want)
	}
}

func TestRenderEntities(t *testing.T) {
	s, sim := newSimScreen(t)
	tables := gamedata.MustDefault()
	level := testLevel()

	NewRenderer(s, tables, level.Theme).Render(level, 1)
	want := tables.Archetypes.GetByID("skeleton").GlyphRune()
	if r, _, _, _ := sim.GetContent(0, mapTop+1); r != want {
		t.Errorf("enemy glyph = %q, want %q", r, want)
	}
	r, _, style, _ := sim.GetContent(2, mapTop+1)
	if r != treasureGlyph {
		t.Errorf("treasure glyph = %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != RarityColor(world.RarityLegendary) {
		t.Errorf("treasure color = %v", fg)
	}
}

func TestViewerKeys(t *testing.T) {
	s, _ := newSimScreen(t)
	v := NewViewer(s, gamedata.MustDefault(), testLevel())

	steps := []struct {
		ev   *tcell.EventKey
		want int
	}{
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 1},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), 1},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), 0},
	}
	for i, st := range steps {
		v.HandleEvent(st.ev)
		if v.Current() != st.want {
			t.Fatalf("step %d: current = %d, want %d", i, v.Current(), st.want)
		}
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if v.running {
		t.Error("q did not stop the viewer")
	}
}

func TestViewerRun(t *testing.T) {
	s, sim := newSimScreen(t)
	v := NewViewer(s, gamedata.MustDefault(), testLevel())

	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Current() != 1 {
		t.Errorf("current = %d, want 1 after one Tab", v.Current())
	}
}

func TestPaletteFallback(t *testing.T) {
	p := NewPalette(nil)
	if fg, _, _ := p.Style(world.TileWall).Decompose(); fg != tcell.ColorDarkGray {
		t.Errorf("default wall color = %v", fg)
	}
	if p.Style(world.Tile(99)) != tcell.StyleDefault {
		t.Error("unknown tile should use the default style")
	}
}
