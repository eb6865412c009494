package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Palette maps tiles to styles for one theme.
type Palette struct {
	tiles map[world.Tile]tcell.Style
}

// NewPalette builds a palette from a theme. A nil theme uses plain colors.
func NewPalette(theme *gamedata.ThemeDef) Palette {
	if theme == nil {
		theme = &gamedata.ThemeDef{}
	}
	fg := func(c tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(c)
	}
	return Palette{tiles: map[world.Tile]tcell.Style{
		world.TileWall:       fg(theme.WallColor()),
		world.TileFloor:      fg(theme.FloorColor()),
		world.TilePlatform:   fg(tcell.ColorYellow).Bold(true),
		world.TilePedestal:   fg(tcell.ColorGold),
		world.TileShopItem:   fg(tcell.ColorAqua),
		world.TileDoor:       fg(tcell.ColorSaddleBrown).Bold(true),
		world.TileHazard:     fg(theme.HazardColor()),
		world.TileDecoration: fg(theme.DecorationColor()),
	}}
}

// Style returns the style for a tile.
func (p Palette) Style(t world.Tile) tcell.Style {
	if s, ok := p.tiles[t]; ok {
		return s
	}
	return tcell.StyleDefault
}

// RarityColor returns the display color of a treasure rarity.
func RarityColor(r world.Rarity) tcell.Color {
	switch r {
	case world.RarityRare:
		return tcell.ColorDodgerBlue
	case world.RarityEpic:
		return tcell.ColorMediumPurple
	case world.RarityLegendary:
		return tcell.ColorOrange
	default:
		return tcell.ColorWhite
	}
}
