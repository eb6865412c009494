package world

import (
	"strings"
	"testing"
)

func testLevel() *Level {
	tiles := func(w, h int) [][]Tile {
		rows := make([][]Tile, h)
		for y := range rows {
			rows[y] = make([]Tile, w)
			for x := range rows[y] {
				rows[y][x] = TileFloor
			}
		}
		return rows
	}
	a := &Room{ID: "room-0", Role: RoleEntrance, Width: 3, Height: 2, Tiles: tiles(3, 2), IsEntrance: true, Connections: []string{"room-1"}}
	b := &Room{ID: "room-1", Role: RoleBoss, Width: 3, Height: 2, Tiles: tiles(3, 2), Connections: []string{"room-0"}}
	c := &Room{ID: "room-2", Role: RoleNormal, Width: 3, Height: 2, Tiles: tiles(3, 2)}
	return &Level{ID: LevelID("t"), Seed: "t", Rooms: []*Room{a, b, c}}
}

func TestLevelLookup(t *testing.T) {
	l := testLevel()

	if l.ID != "level-t" {
		t.Errorf("Unexpected level id %q", l.ID)
	}
	if e := l.Entrance(); e == nil || e.ID != "room-0" {
		t.Errorf("Entrance() = %v", e)
	}
	if l.Room("room-9") != nil {
		t.Error("Room() should return nil for unknown ids")
	}
}

func TestLevelReachable(t *testing.T) {
	l := testLevel()
	reach := l.Reachable("room-0")

	if reach.Size() != 2 || !reach.Has("room-1") || reach.Has("room-2") {
		t.Errorf("Unexpected reachable set of size %d", reach.Size())
	}
}

func TestFingerprintTracksTiles(t *testing.T) {
	l1, l2 := testLevel(), testLevel()
	if l1.Fingerprint() != l2.Fingerprint() {
		t.Fatal("Identical levels should share a fingerprint")
	}

	l2.Rooms[2].Tiles[1][1] = TileHazard
	if l1.Fingerprint() == l2.Fingerprint() {
		t.Error("Changing a tile should change the fingerprint")
	}
}

func TestRoomString(t *testing.T) {
	r := testLevel().Rooms[0]
	r.Tiles[0][0] = TileWall
	r.Tiles[1][2] = TileDoor

	want := "#..\n..+"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(r.String(), "\n") != r.Height-1 {
		t.Error("Expected one line per row")
	}
}

func TestTileEncodingIsStable(t *testing.T) {
	tests := []struct {
		tile Tile
		code int
	}{
		{TileWall, 0},
		{TileFloor, 1},
		{TilePlatform, 2},
		{TilePedestal, 3},
		{TileShopItem, 4},
		{TileDoor, 5},
		{TileHazard, 6},
		{TileDecoration, 7},
	}

	for _, tt := range tests {
		if int(tt.tile) != tt.code {
			t.Errorf("%s encodes as %d, want %d", tt.tile, int(tt.tile), tt.code)
		}
	}
	if Tile(8).Valid() || Tile(-1).Valid() {
		t.Error("Out-of-range tiles should be invalid")
	}
	if TileWall.IsPassable() || !TileDoor.IsPassable() {
		t.Error("Unexpected passability")
	}
}

func TestParseKinds(t *testing.T) {
	if _, err := ParseTemplate("boss-arena"); err != nil {
		t.Errorf("ParseTemplate(boss-arena) failed: %v", err)
	}
	if _, err := ParseTemplate("maze"); err == nil {
		t.Error("ParseTemplate(maze) should fail")
	}
	if _, err := ParseRole("shopkeeper"); err == nil {
		t.Error("ParseRole(shopkeeper) should fail")
	}
	if len(Templates) != 10 {
		t.Errorf("Expected 10 templates, got %d", len(Templates))
	}
}

func TestDoorPositions(t *testing.T) {
	doors := DoorPositions(21, 15)
	want := [4]Point{{10, 0}, {20, 7}, {10, 14}, {0, 7}}
	if doors != want {
		t.Errorf("DoorPositions = %v, want %v", doors, want)
	}
}
