package core

import "testing"

func TestWrapFoldsOutOfRangeCoordinates(t *testing.T) {
	const w, h = 4, 3
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 3, 2},
		{4, 3, 0, 0},
		{0, 0, 0, 0},
		{-5, 7, 3, 1},
	}
	for _, c := range cases {
		x, y := WrapIndex(c.x, w), WrapIndex(c.y, h)
		if x != c.wx || y != c.wy {
			t.Fatalf("WrapIndex(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[int](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestAtAndClear(t *testing.T) {
	g := NewGrid[int](3, 2)
	*g.At(2, 1) = 7
	if got := g.Cells()[g.Index(2, 1)]; got != 7 {
		t.Fatalf("expected 7 at (2,1), got %d", got)
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %d", i, v)
		}
	}
}
