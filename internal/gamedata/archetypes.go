package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/world"
)

// ArchetypeDef defines an enemy archetype loaded from JSON.
type ArchetypeDef struct {
	ID             string     `json:"id"`             // Unique identifier (e.g., "skeleton")
	Name           string     `json:"name"`           // Display name
	Tier           world.Tier `json:"tier"`           // Tier this archetype spawns at
	Kind           string     `json:"kind"`           // Behaviour kind handed to the enemy runtime
	Glyph          string     `json:"glyph"`          // Single character for previews
	Color          string     `json:"color"`          // Hex color code
	DetectionRange float64    `json:"detectionRange"` // Tiles
	AttackRange    float64    `json:"attackRange"`    // Tiles
	Speed          float64    `json:"speed"`          // Tiles per second
	AttackRate     float64    `json:"attackRate"`     // Attacks per second
	SpawnWeight    int        `json:"spawnWeight"`    // Relative spawn frequency within the tier
}

// Behavior returns the runtime behaviour descriptor for the archetype.
func (a *ArchetypeDef) Behavior() world.Behavior {
	return world.Behavior{
		Kind:           a.Kind,
		DetectionRange: a.DetectionRange,
		AttackRange:    a.AttackRange,
		Speed:          a.Speed,
		AttackRate:     a.AttackRate,
	}
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ArchetypeDef) GlyphRune() rune {
	if len(a.Glyph) == 0 {
		return '?'
	}
	return rune(a.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (a *ArchetypeDef) TCellColor() tcell.Color {
	return colorOr(a.Color, tcell.ColorWhite)
}

// ArchetypesFile represents the structure of archetypes.json.
type ArchetypesFile struct {
	Archetypes []ArchetypeDef `json:"archetypes"`
}

// Validate checks that every tier has at least one spawnable archetype.
func (f *ArchetypesFile) Validate() error {
	weights := make(map[world.Tier]int)
	for _, a := range f.Archetypes {
		switch a.Tier {
		case world.TierNormal, world.TierElite, world.TierBoss:
		default:
			return fmt.Errorf("archetype %q has unknown tier %q", a.ID, a.Tier)
		}
		if a.SpawnWeight > 0 {
			weights[a.Tier] += a.SpawnWeight
		}
	}
	for _, t := range []world.Tier{world.TierNormal, world.TierElite, world.TierBoss} {
		if weights[t] == 0 {
			return fmt.Errorf("no spawnable archetype for tier %q", t)
		}
	}
	return nil
}

// LoadArchetypes loads archetype definitions from the embedded archetypes.json file.
func LoadArchetypes() ([]ArchetypeDef, error) {
	file, err := Load[ArchetypesFile]("archetypes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Archetypes) == 0 {
		return nil, errors.New("no archetypes loaded from archetypes.json")
	}
	return file.Archetypes, nil
}
