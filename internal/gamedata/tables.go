package gamedata

import (
	"errors"
	"sync"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Tables bundles every table the generator reads. It is read-only once
// loaded and may be shared between generator instances.
type Tables struct {
	Archetypes *ArchetypeRegistry
	Names      NamesFile
	Items      ItemsFile
	Rooms      RoomsFile
	Themes     []ThemeDef
}

// LoadTables loads every embedded table.
func LoadTables() (*Tables, error) {
	archetypes, err := LoadArchetypeRegistry()
	if err != nil {
		return nil, err
	}
	names, err := Load[NamesFile]("names.json")
	if err != nil {
		return nil, err
	}
	items, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	rooms, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	themes, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	if len(themes.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return &Tables{
		Archetypes: archetypes,
		Names:      names,
		Items:      items,
		Rooms:      rooms,
		Themes:     themes.Themes,
	}, nil
}

var defaultTables = sync.OnceValues(LoadTables)

// Default returns the embedded tables, loading them on first use.
func Default() (*Tables, error) {
	return defaultTables()
}

// MustDefault returns the embedded tables, panicking on error.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Theme returns the theme with the given ID, or nil if not found.
func (t *Tables) Theme(id string) *ThemeDef {
	for i := range t.Themes {
		if t.Themes[i].ID == id {
			return &t.Themes[i]
		}
	}
	return nil
}

// ThemeIDs returns the IDs of every theme in table order.
func (t *Tables) ThemeIDs() []string {
	ids := make([]string, len(t.Themes))
	for i := range t.Themes {
		ids[i] = t.Themes[i].ID
	}
	return ids
}

// TemplatesFor returns the weighted template table for a room key (a role
// name or ShopKey).
func (t *Tables) TemplatesFor(key string) []TemplateWeight {
	return t.Rooms.Templates[key]
}

// SizeFor returns the size range for a room key (a role name or ShopKey).
func (t *Tables) SizeFor(key string) SizeRange {
	return t.Rooms.Sizes[key]
}

// MarkersFor returns the base marker counts for a template.
func (t *Tables) MarkersFor(tpl world.Template) MarkerCounts {
	return t.Rooms.Markers[tpl]
}
