package gamedata

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ArchetypeRegistry holds loaded archetypes grouped by tier and provides
// weighted spawning.
type ArchetypeRegistry struct {
	all    []ArchetypeDef
	byTier map[world.Tier][]rng.Choice[*ArchetypeDef]
}

// NewArchetypeRegistry creates a registry from loaded archetype definitions.
// Definition order is preserved within each tier, which keeps weighted
// spawning stable for a given seed.
func NewArchetypeRegistry(archetypes []ArchetypeDef) *ArchetypeRegistry {
	r := &ArchetypeRegistry{
		all:    archetypes,
		byTier: make(map[world.Tier][]rng.Choice[*ArchetypeDef]),
	}
	for i := range archetypes {
		a := &archetypes[i]
		r.byTier[a.Tier] = append(r.byTier[a.Tier], rng.Choice[*ArchetypeDef]{Value: a, Weight: float64(a.SpawnWeight)})
	}
	return r
}

// LoadArchetypeRegistry loads and creates a registry from the embedded archetypes.json.
func LoadArchetypeRegistry() (*ArchetypeRegistry, error) {
	archetypes, err := LoadArchetypes()
	if err != nil {
		return nil, err
	}
	return NewArchetypeRegistry(archetypes), nil
}

// SpawnRandom selects an archetype of the given tier using weighted
// probability. It returns nil when the tier has no spawnable archetype.
func (r *ArchetypeRegistry) SpawnRandom(rnd rng.Random, tier world.Tier) *ArchetypeDef {
	a, ok := rng.Choose(rnd, r.byTier[tier])
	if !ok {
		return nil
	}
	return a
}

// GetByID returns the archetype with the given ID, or nil if not found.
func (r *ArchetypeRegistry) GetByID(id string) *ArchetypeDef {
	for i := range r.all {
		if r.all[i].ID == id {
			return &r.all[i]
		}
	}
	return nil
}

// Count returns the number of archetypes in the registry.
func (r *ArchetypeRegistry) Count() int {
	return len(r.all)
}
