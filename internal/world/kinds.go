package world

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRole is returned when a role name is not recognised.
	ErrUnknownRole = errors.New("unknown room role")
	// ErrUnknownTemplate is returned when a template name is not recognised.
	ErrUnknownTemplate = errors.New("unknown room template")
)

// Role is a room's gameplay category. Shops are normal rooms synthesized
// with the shop template.
type Role string

const (
	RoleEntrance Role = "entrance"
	RoleNormal   Role = "normal"
	RoleElite    Role = "elite"
	RoleTreasure Role = "treasure"
	RoleBoss     Role = "boss"
)

// Roles lists every valid role.
var Roles = []Role{RoleEntrance, RoleNormal, RoleElite, RoleTreasure, RoleBoss}

// Valid reports whether r is an enumerated role.
func (r Role) Valid() bool {
	switch r {
	case RoleEntrance, RoleNormal, RoleElite, RoleTreasure, RoleBoss:
		return true
	}
	return false
}

// ParseRole converts a name to a Role, failing on unknown names.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Template names one of the room-layout carving algorithms.
type Template string

const (
	TemplateStandard   Template = "standard"
	TemplateCircular   Template = "circular"
	TemplateCorridorNS Template = "corridor-ns"
	TemplateCorridorEW Template = "corridor-ew"
	TemplateCross      Template = "cross"
	TemplateChambers   Template = "chambers"
	TemplateHub        Template = "hub"
	TemplateBossArena  Template = "boss-arena"
	TemplateVault      Template = "treasure-vault"
	TemplateShop       Template = "shop"
)

// Templates lists every valid template.
var Templates = []Template{
	TemplateStandard, TemplateCircular, TemplateCorridorNS, TemplateCorridorEW, TemplateCross,
	TemplateChambers, TemplateHub, TemplateBossArena, TemplateVault, TemplateShop,
}

// Valid reports whether t is an enumerated template.
func (t Template) Valid() bool {
	for _, v := range Templates {
		if t == v {
			return true
		}
	}
	return false
}

// ParseTemplate converts a name to a Template, failing on unknown names.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
	}
	return t, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Template) UnmarshalText(b []byte) error {
	v, err := ParseTemplate(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
