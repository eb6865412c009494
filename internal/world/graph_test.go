package world

import (
	"errors"
	"testing"
)

func TestGraphConnectIsSymmetric(t *testing.T) {
	g := NewGraph(3)
	if err := g.Connect(0, 2); err != nil {
		t.Fatalf("Connect(0, 2) failed: %v", err)
	}

	if !g.Connected(0, 2) || !g.Connected(2, 0) {
		t.Error("Edge should be visible from both ends")
	}
	if g.Degree(0) != 1 || g.Degree(2) != 1 || g.Degree(1) != 0 {
		t.Errorf("Unexpected degrees: %d %d %d", g.Degree(0), g.Degree(1), g.Degree(2))
	}
	if g.Edges() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.Edges())
	}
}

func TestGraphConnectErrors(t *testing.T) {
	g := NewGraph(6)
	for i := 1; i <= MaxDegree; i++ {
		if err := g.Connect(0, i); err != nil {
			t.Fatalf("Connect(0, %d) failed: %v", i, err)
		}
	}

	tests := []struct {
		name string
		a, b int
		want error
	}{
		{"self loop", 1, 1, ErrSelfLoop},
		{"duplicate", 1, 0, ErrAlreadyConnected},
		{"degree cap", 5, 0, ErrDegreeCap},
		{"out of range", 0, 9, ErrNoSuchRoom},
	}

	for _, tt := range tests {
		err := g.Connect(tt.a, tt.b)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Connect(%d, %d) = %v, want %v", tt.name, tt.a, tt.b, err, tt.want)
		}
		if g.CanConnect(tt.a, tt.b) {
			t.Errorf("%s: CanConnect(%d, %d) should be false", tt.name, tt.a, tt.b)
		}
	}

	if g.Degree(0) != MaxDegree {
		t.Errorf("Failed connects must not change degree, got %d", g.Degree(0))
	}
}

func TestGraphReachable(t *testing.T) {
	g := NewGraph(5)
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)
	_ = g.Connect(3, 4)

	reach := g.Reachable(0)
	if reach.Size() != 3 {
		t.Fatalf("Expected 3 reachable rooms, got %d", reach.Size())
	}
	for _, i := range []int{0, 1, 2} {
		if !reach.Has(i) {
			t.Errorf("Room %d should be reachable", i)
		}
	}
	if reach.Has(3) {
		t.Error("Room 3 should not be reachable")
	}
}
