package generator

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/noise"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/synth"
	"github.com/samdwyer/dungeongen/internal/world"
)

// maxEliteChance caps the position-weighted elite probability.
const maxEliteChance = 0.9

// roomPlan is a room's role, table key and template before synthesis.
type roomPlan struct {
	role     world.Role
	key      string
	template world.Template
}

// buildRooms plans and synthesizes the entrance, the mid pool and the boss
// room, in that order.
func (g *Generator) buildRooms(ctx context.Context, r rng.Random, field *noise.Field, theme *gamedata.ThemeDef) ([]*world.Room, error) {
	_, span := g.tracer.Start(ctx, "level.rooms")
	defer span.End()

	n := g.opts.RoomCount
	plans := make([]roomPlan, 0, n)
	plans = append(plans, roomPlan{role: world.RoleEntrance, key: string(world.RoleEntrance), template: world.TemplateStandard})
	mid := n - 2
	for i := range mid {
		p, err := g.planMid(r, i, mid)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	plans = append(plans, roomPlan{role: world.RoleBoss, key: string(world.RoleBoss), template: world.TemplateBossArena})

	markers := make(map[world.Template]synth.Markers, len(world.Templates))
	for _, t := range world.Templates {
		m := g.tables.MarkersFor(t)
		markers[t] = synth.Markers{Hazards: m.Hazards, Decorations: m.Decorations}
	}
	s := synth.New(r, field, synth.Config{
		Markers:           markers,
		HazardDensity:     theme.HazardDensity,
		DecorationDensity: theme.DecorationDensity,
	})

	rooms := make([]*world.Room, len(plans))
	for i, p := range plans {
		size := g.tables.SizeFor(p.key)
		w := rng.Range(r, size.Min, size.Max)
		h := rng.Range(r, size.Min, size.Max)
		tiles, err := s.Synthesize(w, h, p.template)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		rooms[i] = &world.Room{
			ID:         "room-" + strconv.Itoa(i),
			Role:       p.role,
			Template:   p.template,
			Width:      len(tiles[0]),
			Height:     len(tiles),
			Tiles:      tiles,
			IsEntrance: p.role == world.RoleEntrance,
		}
	}

	span.SetAttributes(attribute.Int("rooms", len(rooms)))
	return rooms, nil
}

// planMid picks the role and template of mid-pool room i of n. Elite odds
// rise with the room's position and the difficulty; forced rooms skip the
// draw.
func (g *Generator) planMid(r rng.Random, i, n int) (roomPlan, error) {
	if f, ok := g.opts.Forced[i]; ok {
		role := f.Role
		if role == "" {
			role = world.RoleNormal
		}
		p := roomPlan{role: role, key: string(role), template: f.Template}
		if p.template == world.TemplateShop && role == world.RoleNormal {
			p.key = gamedata.ShopKey
		}
		if p.template == "" {
			return g.pickTemplate(r, p)
		}
		return p, nil
	}

	sp := g.opts.Special
	pos := float64(i+1) / float64(n+1)
	elite := min(maxEliteChance, sp.Elite*(0.5+pos)*(1+g.opts.Difficulty/MaxDifficulty))

	p := roomPlan{role: world.RoleNormal, key: string(world.RoleNormal)}
	switch roll := r.Next(); {
	case roll < sp.Treasure:
		p.role, p.key = world.RoleTreasure, string(world.RoleTreasure)
	case roll < sp.Treasure+elite:
		p.role, p.key = world.RoleElite, string(world.RoleElite)
	case roll < sp.Treasure+elite+sp.Shop:
		p.key = gamedata.ShopKey
	}
	return g.pickTemplate(r, p)
}

// pickTemplate draws a template from the weighted table for p.key.
func (g *Generator) pickTemplate(r rng.Random, p roomPlan) (roomPlan, error) {
	table := g.tables.TemplatesFor(p.key)
	choices := make([]rng.Choice[world.Template], len(table))
	for i, tw := range table {
		choices[i] = rng.Choice[world.Template]{Value: tw.Template, Weight: tw.Weight}
	}
	t, ok := rng.Choose(r, choices)
	if !ok {
		return p, fmt.Errorf("%w: no weighted templates for %q", world.ErrUnknownTemplate, p.key)
	}
	p.template = t
	return p, nil
}
