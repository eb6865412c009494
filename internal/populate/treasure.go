package populate

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// suffixChance is the chance a rare-or-better item gets a name suffix.
const suffixChance = 0.7

// TreasureCount returns how many treasures a room of the given role receives.
func (e *Engine) TreasureCount(role world.Role) int {
	switch role {
	case world.RoleTreasure:
		return rng.Range(e.rnd, 1, 2)
	case world.RoleBoss:
		return 1
	case world.RoleElite:
		if rng.Chance(e.rnd, 0.7) {
			return 1
		}
	default:
		if rng.Chance(e.rnd, 0.2) {
			return 1
		}
	}
	return 0
}

func (e *Engine) treasure(room *world.Room, walk mapset.Set[world.Point], rewards world.RarityTable) {
	n := e.TreasureCount(room.Role)
	if n == 0 {
		return
	}

	var pedestals []world.Point
	for y, row := range room.Tiles {
		for x, t := range row {
			p := world.Point{X: x, Y: y}
			if t == world.TilePedestal && walk.Has(p) {
				pedestals = append(pedestals, p)
			}
		}
	}
	taken := make([]world.Point, 0, len(room.Enemies)+n)
	for _, en := range room.Enemies {
		taken = append(taken, en.Position)
	}

	for range n {
		var pos world.Point
		if len(pedestals) > 0 {
			i := rng.IntN(e.rnd, len(pedestals))
			pos = pedestals[i]
			pedestals = append(pedestals[:i], pedestals[i+1:]...)
		} else {
			pos = e.place(room, walk, taken)
		}
		taken = append(taken, pos)

		rarity := e.RollRarity(room.Role, rewards)
		t := &world.Treasure{
			ID:       e.ids.NewID("treasure"),
			RoomID:   room.ID,
			Rarity:   rarity,
			Position: pos,
		}
		if e.dropsEquipment(room.Role) {
			t.Kind = world.TreasureEquipment
			t.Equipment = e.Equipment(rarity)
		} else {
			t.Kind = world.TreasureResource
			t.Resource = rng.Pick(e.rnd, e.resources)
		}
		room.Treasures = append(room.Treasures, t)
	}
}

func (e *Engine) dropsEquipment(role world.Role) bool {
	switch role {
	case world.RoleBoss:
		return true
	case world.RoleTreasure:
		return rng.Chance(e.rnd, 0.8)
	default:
		return rng.Chance(e.rnd, 0.6)
	}
}

// RollRarity draws a rarity from the table. Elite and treasure rooms shift
// weight toward the higher rarities; boss rooms only roll epic or better.
func (e *Engine) RollRarity(role world.Role, table world.RarityTable) world.Rarity {
	weights := make(map[world.Rarity]float64, len(world.Rarities))
	for _, r := range world.Rarities {
		weights[r] = max(0, table.Weight(r))
	}
	switch role {
	case world.RoleElite, world.RoleTreasure:
		weights[world.RarityRare] *= 1.5
		weights[world.RarityEpic] *= 2
		weights[world.RarityLegendary] *= 2
	case world.RoleBoss:
		weights[world.RarityCommon] = 0
		weights[world.RarityRare] = 0
		if weights[world.RarityEpic]+weights[world.RarityLegendary] == 0 {
			return world.RarityEpic
		}
	}

	choices := make([]rng.Choice[world.Rarity], 0, len(world.Rarities))
	for _, r := range world.Rarities {
		choices = append(choices, rng.Choice[world.Rarity]{Value: r, Weight: weights[r]})
	}
	r, ok := rng.Choose(e.rnd, choices)
	if !ok {
		return world.RarityCommon
	}
	return r
}

// Equipment synthesizes an item of the given rarity. Stat rolls are scaled
// by the rarity multiplier.
func (e *Engine) Equipment(rarity world.Rarity) *world.Equipment {
	slot := rng.Pick(e.rnd, world.Slots)
	mult := rarity.Multiplier()
	stats := make(map[world.Stat]float64)
	for _, sr := range e.tables.Items.Slots[slot] {
		stats[sr.Stat] = rng.Float(e.rnd, sr.Min, sr.Max) * mult
	}

	names := e.tables.Names
	name := rng.Pick(e.rnd, names.Prefixes[rarity]) + " " + rng.Pick(e.rnd, names.Nouns[slot])
	if rarity.AtLeast(world.RarityRare) && rng.Chance(e.rnd, suffixChance) {
		name += " " + rng.Pick(e.rnd, names.Suffixes)
	}

	return &world.Equipment{
		ID:     e.ids.NewID("equipment"),
		Name:   name,
		Slot:   slot,
		Rarity: rarity,
		Stats:  stats,
	}
}
