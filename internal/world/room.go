package world

import "strings"

// Room is one node of the level graph with its synthesized floor plan.
type Room struct {
	ID          string      `json:"id"`
	Role        Role        `json:"role"`
	Template    Template    `json:"template"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Tiles       [][]Tile    `json:"tiles"` // [y][x]
	Connections []string    `json:"connections"`
	IsEntrance  bool        `json:"isEntrance"`
	Enemies     []*Enemy    `json:"enemies"`
	Treasures   []*Treasure `json:"treasures"`
}

// Center returns the center coordinates of the room.
func (r *Room) Center() Point {
	return Center(r.Width, r.Height)
}

// Doors returns the four door midpoints in Sides order.
func (r *Room) Doors() [4]Point {
	return DoorPositions(r.Width, r.Height)
}

// Contains returns true if the given point is inside the room.
func (r *Room) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// TileAt returns the tile at p, or TileWall outside the room.
func (r *Room) TileAt(p Point) Tile {
	if !r.Contains(p) {
		return TileWall
	}
	return r.Tiles[p.Y][p.X]
}

// IsConnected reports whether the room links to the room with the given id.
func (r *Room) IsConnected(id string) bool {
	for _, c := range r.Connections {
		if c == id {
			return true
		}
	}
	return false
}

// String renders the tile grid as ASCII, one line per row.
func (r *Room) String() string {
	var sb strings.Builder
	for y, row := range r.Tiles {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
	}
	return sb.String()
}
