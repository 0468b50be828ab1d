package pointgen

import "testing"

func TestUniformStaysWithinBounds(t *testing.T) {
	b := Bounds{MinX: -10, MaxX: 10, MinY: 0, MaxY: 5}
	pts := Uniform(200, b, 1)
	for i := 0; i < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		if x < b.MinX || x > b.MaxX || y < b.MinY || y > b.MaxY {
			t.Fatalf("point (%v, %v) outside bounds %+v", x, y, b)
		}
	}
}

func TestUniformIsDeterministicForSeed(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	a := Uniform(50, b, 7)
	c := Uniform(50, b, 7)
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("same seed produced different output at index %d", i)
		}
	}
}

func TestBlobsReturnsExpectedCount(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	pts, n := Blobs(3, 20, 1.5, 10, b, 3)
	if n != 3*20+10 {
		t.Fatalf("expected %d points, got %d", 3*20+10, n)
	}
	if len(pts) != n*2 {
		t.Fatalf("expected buffer length %d, got %d", n*2, len(pts))
	}
}
