package populate

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	// placementTries is the number of random draws before falling back to
	// the deterministic scan.
	placementTries = 50
	// minSpacingSq is the squared distance kept from doors and from other
	// entities.
	minSpacingSq = 9
)

// place picks a walkable floor tile away from the doors and from every taken
// point. Random draws come first. After placementTries misses, the room is
// scanned outward from the centre for the nearest valid tile; the bare centre
// is returned only when no valid tile exists. The scan is a deliberate step
// between the random draws and the centre fallback.
func (e *Engine) place(room *world.Room, walk mapset.Set[world.Point], taken []world.Point) world.Point {
	doors := room.Doors()
	valid := func(p world.Point) bool {
		if room.TileAt(p) != world.TileFloor || !walk.Has(p) {
			return false
		}
		for _, d := range doors {
			if p.DistSq(d) < minSpacingSq {
				return false
			}
		}
		for _, q := range taken {
			if p.DistSq(q) < minSpacingSq {
				return false
			}
		}
		return true
	}

	for range placementTries {
		p := world.Point{X: rng.IntN(e.rnd, room.Width), Y: rng.IntN(e.rnd, room.Height)}
		if valid(p) {
			return p
		}
	}
	for _, p := range byCentreDistance(room) {
		if valid(p) {
			return p
		}
	}
	return room.Center()
}

// byCentreDistance lists every cell of the room ordered by distance from the
// centre, ties broken by row then column.
func byCentreDistance(room *world.Room) []world.Point {
	c := room.Center()
	cells := make([]world.Point, 0, room.Width*room.Height)
	for y := range room.Height {
		for x := range room.Width {
			cells = append(cells, world.Point{X: x, Y: y})
		}
	}
	slices.SortStableFunc(cells, func(a, b world.Point) int {
		return a.DistSq(c) - b.DistSq(c)
	})
	return cells
}
