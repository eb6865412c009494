package noise

import (
	"testing"

	"github.com/samdwyer/dungeongen/internal/rng"
)

func TestFieldReproducibility(t *testing.T) {
	f1 := New(rng.New("noise"), DefaultParams)
	f2 := New(rng.New("noise"), DefaultParams)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			a, b := f1.Sample(float64(x), float64(y)), f2.Sample(float64(x), float64(y))
			if a != b {
				t.Fatalf("Sample(%d,%d) mismatch: %v != %v", x, y, a, b)
			}
		}
	}
}

func TestFieldRange(t *testing.T) {
	f := New(rng.New("range"), DefaultParams)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			v := f.Sample(float64(x), float64(y))
			if v < -1.01 || v > 1.01 {
				t.Fatalf("Sample(%d,%d) = %v out of range", x, y, v)
			}
		}
	}
}

func TestOffsetShiftsField(t *testing.T) {
	f := New(rng.New("offset"), DefaultParams)
	g := f.Offset(3, 4)

	if f.Sample(3, 4) != g.Sample(0, 0) {
		t.Error("Offset view should read the translated region")
	}
}

func TestFieldConsumesOneDraw(t *testing.T) {
	s1 := rng.New("draws")
	s2 := rng.New("draws")
	New(s1, DefaultParams)
	s2.Next()

	if s1.Next() != s2.Next() {
		t.Error("New should consume exactly one draw from the source")
	}
}
