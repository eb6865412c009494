package world

// Point is a room-local tile coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistSq returns the squared euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Side names one of the four room edges.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists the edges in door order.
var Sides = [4]Side{North, East, South, West}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Inward returns the unit step pointing from the edge into the room.
func (s Side) Inward() (dx, dy int) {
	switch s {
	case North:
		return 0, 1
	case East:
		return -1, 0
	case South:
		return 0, -1
	default:
		return 1, 0
	}
}

// DoorPositions returns the four cardinal edge midpoints of a width×height
// grid, in Sides order. Doors follow this fixed convention regardless of
// where the connected neighbour lies.
func DoorPositions(width, height int) [4]Point {
	return [4]Point{
		North: {X: width / 2, Y: 0},
		East:  {X: width - 1, Y: height / 2},
		South: {X: width / 2, Y: height - 1},
		West:  {X: 0, Y: height / 2},
	}
}

// Center returns the geometric centre of a width×height grid.
func Center(width, height int) Point {
	return Point{X: width / 2, Y: height / 2}
}
