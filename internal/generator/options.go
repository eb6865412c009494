package generator

import (
	"fmt"
	"math"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Option bounds.
const (
	MinRooms      = 2
	MaxRooms      = 64
	MaxDifficulty = 10
)

// SpecialChances are the per-room probabilities of the special mid-pool
// roles. Anything left over becomes a normal room.
type SpecialChances struct {
	Treasure float64 `json:"treasure"`
	Elite    float64 `json:"elite"`
	Shop     float64 `json:"shop"`
}

// DefaultSpecialChances is used when Options.Special is the zero value.
var DefaultSpecialChances = SpecialChances{Treasure: 0.15, Elite: 0.2, Shop: 0.1}

// ForcedRoom pins the role and/or template of one mid-pool room. An empty
// template is drawn from the role's table; an empty role means normal.
type ForcedRoom struct {
	Role     world.Role     `json:"role,omitempty"`
	Template world.Template `json:"template,omitempty"`
}

// Options configure one generation call. Numeric fields outside their
// documented ranges are clamped, never rejected.
type Options struct {
	Seed string `json:"seed"`

	// Difficulty scales enemy counts and elite odds, in [0, 10].
	Difficulty float64 `json:"difficulty"`

	// RoomCount is the total number of rooms, in [2, 64].
	RoomCount int `json:"roomCount"`

	// MainPathLength is the number of rooms from entrance to boss, in
	// [2, RoomCount]. Zero means 60% of RoomCount.
	MainPathLength int `json:"mainPathLength"`

	// BranchingFactor is the share of extra loop edges, in [0, 1].
	BranchingFactor float64 `json:"branchingFactor"`

	// Themes restricts the theme draw. Empty means every theme.
	Themes []string `json:"themes"`

	// Special is the mid-pool role table. The zero value means
	// DefaultSpecialChances.
	Special SpecialChances `json:"special"`

	// Rewards is the rarity table. A table with no positive weight means
	// world.DefaultRarityTable.
	Rewards world.RarityTable `json:"rewards"`

	// Forced pins mid-pool rooms, keyed by mid-pool position.
	Forced map[int]ForcedRoom `json:"forced,omitempty"`
}

// DefaultOptions returns a medium-sized level configuration.
func DefaultOptions() Options {
	return Options{
		Difficulty:      1,
		RoomCount:       8,
		BranchingFactor: 0.2,
		Special:         DefaultSpecialChances,
		Rewards:         world.DefaultRarityTable,
	}
}

// Normalize returns o with every numeric field clamped and defaults filled.
func (o Options) Normalize() Options {
	o.RoomCount = min(max(o.RoomCount, MinRooms), MaxRooms)
	if o.MainPathLength == 0 {
		o.MainPathLength = int(math.Ceil(float64(o.RoomCount) * 0.6))
	}
	o.MainPathLength = min(max(o.MainPathLength, 2), o.RoomCount)
	o.BranchingFactor = clamp(o.BranchingFactor, 0, 1)
	o.Difficulty = clamp(o.Difficulty, 0, MaxDifficulty)

	if o.Special == (SpecialChances{}) {
		o.Special = DefaultSpecialChances
	}
	o.Special.Treasure = max(o.Special.Treasure, 0)
	o.Special.Elite = max(o.Special.Elite, 0)
	o.Special.Shop = max(o.Special.Shop, 0)

	if o.Rewards.Total() == 0 {
		o.Rewards = world.DefaultRarityTable
	}
	return o
}

// validate checks the named fields the clamps cannot repair.
func (o Options) validate() error {
	for pos, f := range o.Forced {
		switch f.Role {
		case "", world.RoleNormal, world.RoleElite, world.RoleTreasure:
		default:
			return fmt.Errorf("forced room %d: %w: %q is not a mid-pool role", pos, world.ErrUnknownRole, f.Role)
		}
		if f.Template != "" && !f.Template.Valid() {
			return fmt.Errorf("forced room %d: %w: %q", pos, world.ErrUnknownTemplate, f.Template)
		}
	}
	return nil
}

// clamp bounds v to [lo, hi]; NaN becomes lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}
