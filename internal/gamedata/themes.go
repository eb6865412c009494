package gamedata

import (
	"github.com/gdamore/tcell/v2"
)

// ThemeColors are the preview colors of a theme.
type ThemeColors struct {
	Wall       string `json:"wall"`
	Floor      string `json:"floor"`
	Hazard     string `json:"hazard"`
	Decoration string `json:"decoration"`
}

// ThemeDef defines a level theme loaded from JSON.
type ThemeDef struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	HazardDensity     float64     `json:"hazardDensity"`     // Multiplier on template hazard counts
	DecorationDensity float64     `json:"decorationDensity"` // Multiplier on template decoration counts
	Resources         []string    `json:"resources"`         // Resource treasure labels
	Colors            ThemeColors `json:"colors"`
}

// WallColor returns the wall color as a tcell.Color.
func (t *ThemeDef) WallColor() tcell.Color {
	return colorOr(t.Colors.Wall, tcell.ColorDarkGray)
}

// FloorColor returns the floor color as a tcell.Color.
func (t *ThemeDef) FloorColor() tcell.Color {
	return colorOr(t.Colors.Floor, tcell.ColorGray)
}

// HazardColor returns the hazard color as a tcell.Color.
func (t *ThemeDef) HazardColor() tcell.Color {
	return colorOr(t.Colors.Hazard, tcell.ColorRed)
}

// DecorationColor returns the decoration color as a tcell.Color.
func (t *ThemeDef) DecorationColor() tcell.Color {
	return colorOr(t.Colors.Decoration, tcell.ColorGreen)
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}
