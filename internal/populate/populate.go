// Package populate places enemies and treasure in synthesized rooms.
package populate

import (
	"fmt"
	"math"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// eliteShare is the chance that an elite room enemy beyond the first is also
// elite tier.
const eliteShare = 0.3

// Engine fills rooms from one random stream.
type Engine struct {
	rnd       rng.Random
	tables    *gamedata.Tables
	ids       IDSource
	resources []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithResources sets the labels resource treasure draws from.
func WithResources(labels ...string) Option {
	return func(e *Engine) {
		if len(labels) > 0 {
			e.resources = labels
		}
	}
}

// New creates an engine.
func New(r rng.Random, tables *gamedata.Tables, ids IDSource, opts ...Option) *Engine {
	e := &Engine{rnd: r, tables: tables, ids: ids, resources: []string{"gold"}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnemyCount returns how many enemies a room of the given role receives.
func EnemyCount(role world.Role, difficulty float64) int {
	switch role {
	case world.RoleNormal:
		return int(math.Floor(1 + difficulty))
	case world.RoleElite:
		return int(math.Floor(1 + difficulty*1.5))
	case world.RoleBoss:
		return 1
	default:
		return 0
	}
}

// Populate places the room's enemies then its treasure. Entities only land
// on tiles connected to the room's doors. They are appended to room.Enemies
// and room.Treasures.
func (e *Engine) Populate(room *world.Room, difficulty float64, rewards world.RarityTable) error {
	if !room.Role.Valid() {
		return fmt.Errorf("%w: %q", world.ErrUnknownRole, room.Role)
	}

	walk := walkable(room)
	n := EnemyCount(room.Role, difficulty)
	taken := make([]world.Point, 0, n)
	for i := range n {
		tier := world.TierNormal
		switch {
		case room.Role == world.RoleBoss:
			tier = world.TierBoss
		case room.Role == world.RoleElite && (i == 0 || rng.Chance(e.rnd, eliteShare)):
			tier = world.TierElite
		}
		pos := e.place(room, walk, taken)
		taken = append(taken, pos)
		room.Enemies = append(room.Enemies, e.enemy(room.ID, tier, pos))
	}

	e.treasure(room, walk, rewards)
	return nil
}

func (e *Engine) enemy(roomID string, tier world.Tier, pos world.Point) *world.Enemy {
	stats := world.StatsFor(tier)
	enemy := &world.Enemy{
		ID:         e.ids.NewID("enemy"),
		RoomID:     roomID,
		Archetype:  string(tier),
		Tier:       tier,
		Health:     stats.Health,
		MaxHealth:  stats.Health,
		Position:   pos,
		Damage:     stats.Damage,
		Experience: stats.Experience,
	}
	if a := e.tables.Archetypes.SpawnRandom(e.rnd, tier); a != nil {
		enemy.Archetype = a.ID
		enemy.Behavior = a.Behavior()
	}
	return enemy
}
