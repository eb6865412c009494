package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeongen/internal/world"
)

// ShopKey is the template-table key for shop rooms, which carry the normal role.
const ShopKey = "shop"

// SizeRange bounds a room dimension.
type SizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TemplateWeight pairs a template with its selection weight. Unknown template
// names fail when the table is decoded.
type TemplateWeight struct {
	Template world.Template `json:"template"`
	Weight   float64        `json:"weight"`
}

// MarkerCounts are the base hazard and decoration counts for a template.
type MarkerCounts struct {
	Hazards     int `json:"hazards"`
	Decorations int `json:"decorations"`
}

// RoomsFile represents the structure of rooms.json. Size and template tables
// are keyed by role name, plus ShopKey.
type RoomsFile struct {
	Sizes     map[string]SizeRange            `json:"sizes"`
	Templates map[string][]TemplateWeight     `json:"templates"`
	Markers   map[world.Template]MarkerCounts `json:"markers"`
}

func roomKeys() []string {
	keys := make([]string, 0, len(world.Roles)+1)
	for _, r := range world.Roles {
		keys = append(keys, string(r))
	}
	return append(keys, ShopKey)
}

// Validate checks every key names a role (or the shop) and every role is covered.
func (f *RoomsFile) Validate() error {
	known := make(map[string]bool)
	for _, k := range roomKeys() {
		known[k] = true
		if _, ok := f.Sizes[k]; !ok {
			return fmt.Errorf("no size range for %q", k)
		}
		if len(f.Templates[k]) == 0 {
			return fmt.Errorf("no templates for %q", k)
		}
	}
	for k := range f.Sizes {
		if !known[k] {
			return fmt.Errorf("%w: size table key %q", world.ErrUnknownRole, k)
		}
	}
	for k := range f.Templates {
		if !known[k] {
			return fmt.Errorf("%w: template table key %q", world.ErrUnknownRole, k)
		}
	}
	for t := range f.Markers {
		if !t.Valid() {
			return fmt.Errorf("%w: marker table key %q", world.ErrUnknownTemplate, t)
		}
	}
	return nil
}
