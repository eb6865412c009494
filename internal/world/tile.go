// Package world provides the level data model produced by the generator:
// tiles, rooms, the room graph and the entities placed in rooms.
package world

import "fmt"

// Tile is a closed enumeration of cell kinds. The integer codes are stable:
// rendering and physics consumers key their geometry on them.
type Tile int

const (
	// TileWall is impassable rock.
	TileWall Tile = iota
	// TileFloor is open walkable ground.
	TileFloor
	// TilePlatform marks an elevated platform (the boss arena centre).
	TilePlatform
	// TilePedestal holds treasure in vaults.
	TilePedestal
	// TileShopItem marks a merchant display slot.
	TileShopItem
	// TileDoor is the traversable connector to a neighbouring room.
	TileDoor
	// TileHazard is walkable but harmful ground.
	TileHazard
	// TileDecoration is set dressing.
	TileDecoration

	tileCount
)

var tileNames = [...]string{"wall", "floor", "platform", "pedestal", "shop-item", "door", "hazard", "decoration"}

var tileRunes = [...]rune{'#', '.', '^', 'P', '$', '+', '~', '*'}

// Valid reports whether t is one of the enumerated kinds.
func (t Tile) Valid() bool {
	return t >= TileWall && t < tileCount
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Valid() && t != TileWall
}

// IsSpecial reports whether the tile is a marker rather than plain wall or floor.
func (t Tile) IsSpecial() bool {
	return t.Valid() && t != TileWall && t != TileFloor
}

// Rune returns the tile's ASCII display character.
func (t Tile) Rune() rune {
	if !t.Valid() {
		return '?'
	}
	return tileRunes[t]
}

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", int(t))
	}
	return tileNames[t]
}
