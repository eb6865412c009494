package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// mapTop is the first screen row of the room map; the rows above hold the
// header.
const mapTop = 2

// treasureGlyph marks a treasure on the map.
const treasureGlyph = '!'

// Renderer handles drawing a level to the screen.
type Renderer struct {
	screen  *Screen
	tables  *gamedata.Tables
	palette Palette
}

// NewRenderer creates a renderer for the given screen, colored by the
// level's theme.
func NewRenderer(screen *Screen, tables *gamedata.Tables, theme string) *Renderer {
	return &Renderer{
		screen:  screen,
		tables:  tables,
		palette: NewPalette(tables.Theme(theme)),
	}
}

// Render draws room index of the level with its entities.
func (r *Renderer) Render(level *world.Level, index int) {
	r.screen.Clear()
	room := level.Rooms[index]

	header := fmt.Sprintf("%s [%s/%s] %d/%d", room.ID, room.Role, room.Template, index+1, len(level.Rooms))
	r.screen.DrawText(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	info := fmt.Sprintf("%s  theme %s  links %v", level.ID, level.Theme, room.Connections)
	r.screen.DrawText(0, 1, info, tcell.StyleDefault.Foreground(tcell.ColorGray))

	for y, row := range room.Tiles {
		for x, t := range row {
			r.screen.SetContent(x, mapTop+y, t.Rune(), r.palette.Style(t))
		}
	}

	for _, tr := range room.Treasures {
		style := tcell.StyleDefault.Foreground(RarityColor(tr.Rarity)).Bold(true)
		r.screen.SetContent(tr.Position.X, mapTop+tr.Position.Y, treasureGlyph, style)
	}
	for _, en := range room.Enemies {
		glyph, color := 'e', tcell.ColorRed
		if a := r.tables.Archetypes.GetByID(en.Archetype); a != nil {
			glyph, color = a.GlyphRune(), a.TCellColor()
		}
		r.screen.SetContent(en.Position.X, mapTop+en.Position.Y, glyph, tcell.StyleDefault.Foreground(color))
	}

	footer := "Tab/Right next  Shift-Tab/Left prev  q quit"
	r.screen.DrawText(0, mapTop+room.Height+1, footer, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}
