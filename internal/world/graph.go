package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// MaxDegree is the most connections a room may have: one per door.
const MaxDegree = 4

var (
	// ErrSelfLoop is returned when connecting a room to itself.
	ErrSelfLoop = errors.New("room cannot connect to itself")
	// ErrAlreadyConnected is returned for a duplicate edge.
	ErrAlreadyConnected = errors.New("rooms already connected")
	// ErrDegreeCap is returned when an endpoint has no free door.
	ErrDegreeCap = errors.New("room degree cap reached")
	// ErrNoSuchRoom is returned for an out-of-range room index.
	ErrNoSuchRoom = errors.New("no such room")
)

// Graph is an undirected room adjacency. Connect keeps both directions in
// sync and enforces MaxDegree, so the two sides can never drift apart.
type Graph struct {
	adj [][]int
}

// NewGraph creates a graph with n isolated rooms.
func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

// Len returns the number of rooms.
func (g *Graph) Len() int {
	return len(g.adj)
}

func (g *Graph) valid(i int) bool {
	return i >= 0 && i < len(g.adj)
}

// Connect adds the undirected edge a–b.
func (g *Graph) Connect(a, b int) error {
	switch {
	case !g.valid(a) || !g.valid(b):
		return fmt.Errorf("%w: %d-%d", ErrNoSuchRoom, a, b)
	case a == b:
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	case g.Connected(a, b):
		return fmt.Errorf("%w: %d-%d", ErrAlreadyConnected, a, b)
	case len(g.adj[a]) >= MaxDegree:
		return fmt.Errorf("%w: room %d", ErrDegreeCap, a)
	case len(g.adj[b]) >= MaxDegree:
		return fmt.Errorf("%w: room %d", ErrDegreeCap, b)
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return nil
}

// CanConnect reports whether Connect(a, b) would succeed.
func (g *Graph) CanConnect(a, b int) bool {
	return g.valid(a) && g.valid(b) && a != b && !g.Connected(a, b) &&
		len(g.adj[a]) < MaxDegree && len(g.adj[b]) < MaxDegree
}

// Connected reports whether a and b share an edge.
func (g *Graph) Connected(a, b int) bool {
	if !g.valid(a) {
		return false
	}
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Degree returns the number of edges at room i.
func (g *Graph) Degree(i int) int {
	if !g.valid(i) {
		return 0
	}
	return len(g.adj[i])
}

// Neighbors returns a copy of room i's neighbours in insertion order.
func (g *Graph) Neighbors(i int) []int {
	if !g.valid(i) {
		return nil
	}
	return append([]int(nil), g.adj[i]...)
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	n := 0
	for _, a := range g.adj {
		n += len(a)
	}
	return n / 2
}

// Reachable returns the set of rooms reachable from start by breadth-first search.
func (g *Graph) Reachable(start int) mapset.Set[int] {
	visited := mapset.New[int]()
	if !g.valid(start) {
		return visited
	}
	queue := []int{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.adj[current] {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}
