// Package connect wires generated rooms into a connected graph: a main path
// from the entrance to the boss, branch rooms hanging off it, and a few
// optional loops.
package connect

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

var (
	// ErrTooFewRooms is returned for fewer than two rooms.
	ErrTooFewRooms = errors.New("at least two rooms are required")
	// ErrNoBoss is returned when no room has the boss role.
	ErrNoBoss = errors.New("no boss room")
)

// Params tunes the graph shape.
type Params struct {
	MainPathLength  int     // Rooms on the entrance→boss path, clamped to [2, len(rooms)]
	BranchingFactor float64 // Loop edges per room, in [0, 1]
}

// Plan builds the room graph. rooms[0] is the entrance; exactly one room must
// have the boss role. Graph indices match the rooms slice.
func Plan(r rng.Random, rooms []*world.Room, p Params) (*world.Graph, error) {
	n := len(rooms)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRooms, n)
	}
	boss := slices.IndexFunc(rooms, func(room *world.Room) bool {
		return room.Role == world.RoleBoss
	})
	if boss < 0 {
		return nil, ErrNoBoss
	}
	if boss == 0 {
		return nil, fmt.Errorf("%w: entrance cannot be the boss room", ErrNoBoss)
	}

	g := world.NewGraph(n)
	if n == 2 {
		return g, g.Connect(0, 1)
	}

	mid := make([]int, 0, n-2)
	for i := 1; i < n; i++ {
		if i != boss {
			mid = append(mid, i)
		}
	}
	rng.Shuffle(r, mid)
	slices.SortStableFunc(mid, func(a, b int) int {
		return treasureRank(rooms[a]) - treasureRank(rooms[b])
	})

	length := min(max(p.MainPathLength, 2), n)
	onPath := min(length-2, len(mid))
	path := make([]int, 0, onPath+2)
	path = append(path, 0)
	path = append(path, mid[:onPath]...)
	path = append(path, boss)
	for i := 1; i < len(path); i++ {
		if err := g.Connect(path[i-1], path[i]); err != nil {
			return nil, fmt.Errorf("main path: %w", err)
		}
	}

	attached := slices.Clone(path)
	for _, room := range mid[onPath:] {
		host, ok := pickHost(r, g, path, rooms[room].Role == world.RoleTreasure)
		if !ok {
			host, ok = pickHost(r, g, attached, false)
		}
		if !ok {
			return nil, fmt.Errorf("branch %d: %w", room, world.ErrDegreeCap)
		}
		if err := g.Connect(host, room); err != nil {
			return nil, fmt.Errorf("branch %d: %w", room, err)
		}
		attached = append(attached, room)
	}

	bf := min(max(p.BranchingFactor, 0), 1)
	loops := int(float64(n) * bf)
	for added, attempts := 0, 0; added < loops && attempts < n*10; attempts++ {
		a, b := rng.IntN(r, n), rng.IntN(r, n)
		if g.CanConnect(a, b) {
			_ = g.Connect(a, b)
			added++
		}
	}
	return g, nil
}

// pickHost returns a random candidate with a free door. Treasure rooms
// prefer the first half of the candidate list.
func pickHost(r rng.Random, g *world.Graph, candidates []int, early bool) (int, bool) {
	free := func(list []int) []int {
		var out []int
		for _, c := range list {
			if g.Degree(c) < world.MaxDegree {
				out = append(out, c)
			}
		}
		return out
	}
	if early {
		if hosts := free(candidates[:max(1, len(candidates)/2)]); len(hosts) > 0 {
			return rng.Pick(r, hosts), true
		}
	}
	hosts := free(candidates)
	if len(hosts) == 0 {
		return 0, false
	}
	return rng.Pick(r, hosts), true
}

func treasureRank(room *world.Room) int {
	if room.Role == world.RoleTreasure {
		return 1
	}
	return 0
}

// Link copies the graph into each room's Connections, in edge insertion
// order.
func Link(rooms []*world.Room, g *world.Graph) {
	for i, room := range rooms {
		nbs := g.Neighbors(i)
		room.Connections = make([]string, len(nbs))
		for j, n := range nbs {
			room.Connections[j] = rooms[n].ID
		}
	}
}
