package populate

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/world"
)

// roomPath implements paths.Pather over the passable tiles of a room.
type roomPath struct {
	room *world.Room
	nbs  paths.Neighbors
}

func (rp *roomPath) passable(p gruid.Point) bool {
	return rp.room.TileAt(world.Point{X: p.X, Y: p.Y}).IsPassable()
}

func (rp *roomPath) Neighbors(p gruid.Point) []gruid.Point {
	return rp.nbs.Cardinal(p, rp.passable)
}

// walkable returns the tiles a player entering through a door can reach.
// The flood starts at the first passable door, or at the centre when the
// room has none; a room with neither reaches nothing.
func walkable(room *world.Room) mapset.Set[world.Point] {
	reach := mapset.New[world.Point]()
	start, ok := entry(room)
	if !ok {
		return reach
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, room.Width, room.Height))
	for _, p := range pr.CCMap(&roomPath{room: room}, gruid.Point{X: start.X, Y: start.Y}) {
		reach.Put(world.Point{X: p.X, Y: p.Y})
	}
	return reach
}

func entry(room *world.Room) (world.Point, bool) {
	for _, d := range room.Doors() {
		if room.TileAt(d).IsPassable() {
			return d, true
		}
	}
	if c := room.Center(); room.TileAt(c).IsPassable() {
		return c, true
	}
	return world.Point{}, false
}
