package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zyedidia/generic/mapset"
)

// Level is the aggregate produced by one generation call. It is not mutated
// after generation returns.
type Level struct {
	ID         string      `json:"id"`
	Seed       string      `json:"seed"`
	Difficulty float64     `json:"difficulty"`
	Theme      string      `json:"theme"`
	Rooms      []*Room     `json:"rooms"`
	Enemies    []*Enemy    `json:"enemies"`
	Treasures  []*Treasure `json:"treasures"`
	Boss       *Enemy      `json:"boss,omitempty"`
}

// LevelID returns the identity of the level generated from seed.
func LevelID(seed string) string {
	return "level-" + seed
}

// Room returns the room with the given id, or nil.
func (l *Level) Room(id string) *Room {
	for _, r := range l.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Entrance returns the entrance room, or nil.
func (l *Level) Entrance() *Room {
	for _, r := range l.Rooms {
		if r.IsEntrance {
			return r
		}
	}
	return nil
}

// Reachable returns the ids of every room reachable from the room with id
// start by following connections.
func (l *Level) Reachable(start string) mapset.Set[string] {
	visited := mapset.New[string]()
	if l.Room(start) == nil {
		return visited
	}
	visited.Put(start)
	queue := []string{start}
	for len(queue) > 0 {
		current := l.Room(queue[0])
		queue = queue[1:]
		if current == nil {
			continue
		}
		for _, id := range current.Connections {
			if !visited.Has(id) {
				visited.Put(id)
				queue = append(queue, id)
			}
		}
	}
	return visited
}

// Fingerprint returns a structural digest of the level. Two levels with the
// same fingerprint have the same rooms, tiles, graph and entities.
func (l *Level) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte
	str := func(s string) {
		buf = binary.AppendUvarint(buf[:0], uint64(len(s)))
		buf = append(buf, s...)
		d.Write(buf)
	}
	num := func(v int) {
		buf = binary.AppendVarint(buf[:0], int64(v))
		d.Write(buf)
	}
	flt := func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], math.Float64bits(v))
		d.Write(buf)
	}
	enemy := func(e *Enemy) {
		d.Write(e.ID[:])
		str(string(e.Tier))
		num(e.Health)
		num(e.Position.X)
		num(e.Position.Y)
		str(e.Behavior.Kind)
	}

	str(l.ID)
	str(l.Theme)
	flt(l.Difficulty)
	num(len(l.Rooms))
	for _, r := range l.Rooms {
		str(r.ID)
		str(string(r.Role))
		str(string(r.Template))
		num(r.Width)
		num(r.Height)
		for _, row := range r.Tiles {
			for _, t := range row {
				num(int(t))
			}
		}
		num(len(r.Connections))
		for _, c := range r.Connections {
			str(c)
		}
		num(len(r.Enemies))
		for _, e := range r.Enemies {
			enemy(e)
		}
		num(len(r.Treasures))
		for _, t := range r.Treasures {
			d.Write(t.ID[:])
			str(string(t.Kind))
			str(string(t.Rarity))
			str(t.Resource)
			if t.Equipment != nil {
				str(t.Equipment.Name)
				for _, s := range StatOrder {
					flt(t.Equipment.Stats[s])
				}
			}
		}
	}
	return d.Sum64()
}
