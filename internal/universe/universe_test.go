package universe

import (
	"slices"
	"testing"

	"mad-life/internal/core"
)

func newEmpty(w, h int) *Universe {
	u := New(w, h, core.NewRNG(1))
	u.Clear()
	return u
}

func aliveSet(u *Universe) map[[2]int]bool {
	alive := map[[2]int]bool{}
	size := u.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if u.Cell(x, y).State {
				alive[[2]int{x, y}] = true
			}
		}
	}
	return alive
}

func expectAlive(t *testing.T, u *Universe, want ...[2]int) {
	t.Helper()
	got := aliveSet(u)
	if len(got) != len(want) {
		t.Fatalf("generation %d: expected %d alive cells, got %d (%v)", u.Generation(), len(want), len(got), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("generation %d: expected cell (%d,%d) alive, got %v", u.Generation(), p[0], p[1], got)
		}
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		alive, age := NextState(true, n, 4)
		wantAlive := n == 2 || n == 3
		if alive != wantAlive {
			t.Fatalf("alive cell with %d neighbours: got alive=%v", n, alive)
		}
		if wantAlive && age != 5 {
			t.Fatalf("surviving cell should age to 5, got %d", age)
		}
		if !wantAlive && age != 0 {
			t.Fatalf("dying cell should reset age, got %d", age)
		}

		alive, age = NextState(false, n, 0)
		if alive != (n == 3) {
			t.Fatalf("dead cell with %d neighbours: got alive=%v", n, alive)
		}
		if age != 0 {
			t.Fatalf("dead or newborn cell must have age 0, got %d", age)
		}
	}
}

func TestNeighboursWrapAtCorners(t *testing.T) {
	u := newEmpty(6, 5)
	u.Set(5, 4, true)
	if n := u.Neighbours(0, 0); n != 1 {
		t.Fatalf("(0,0) should see (w-1,h-1) as a diagonal neighbour, got %d", n)
	}

	u.Clear()
	u.Set(0, 0, true)
	for _, corner := range [][2]int{{5, 0}, {0, 4}, {5, 4}} {
		if n := u.Neighbours(corner[0], corner[1]); n != 1 {
			t.Fatalf("corner (%d,%d) should see (0,0) across the edge, got %d", corner[0], corner[1], n)
		}
	}

	u.Clear()
	u.Set(0, 2, true)
	if n := u.Neighbours(5, 2); n != 1 {
		t.Fatalf("left edge should neighbour right edge, got %d", n)
	}
	u.Set(3, 0, true)
	if n := u.Neighbours(3, 4); n != 1 {
		t.Fatalf("top edge should neighbour bottom edge, got %d", n)
	}
}

func TestBlockStillLife(t *testing.T) {
	u := newEmpty(8, 8)
	block := [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}}
	for _, p := range block {
		u.Set(p[0], p[1], true)
	}
	for i := 0; i < 12; i++ {
		u.Step()
		expectAlive(t, u, block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u := newEmpty(9, 9)
	horizontal := [][2]int{{3, 4}, {4, 4}, {5, 4}}
	vertical := [][2]int{{4, 3}, {4, 4}, {4, 5}}
	for _, p := range horizontal {
		u.Set(p[0], p[1], true)
	}
	for i := 1; i <= 6; i++ {
		u.Step()
		if i%2 == 1 {
			expectAlive(t, u, vertical...)
		} else {
			expectAlive(t, u, horizontal...)
		}
	}
}

func TestBlinkerAcrossSeam(t *testing.T) {
	u := newEmpty(7, 7)
	u.Set(6, 0, true)
	u.Set(0, 0, true)
	u.Set(1, 0, true)
	u.Step()
	expectAlive(t, u, [2]int{0, 6}, [2]int{0, 0}, [2]int{0, 1})
}

func TestStepRecordsHistoryAndSwapsBuffers(t *testing.T) {
	u := newEmpty(9, 9)
	u.Set(3, 4, true)
	u.Set(4, 4, true)
	u.Set(5, 4, true)
	u.Step()

	if c := u.Cell(3, 4); !c.DiedRecently() || c.LivingNeighbours != 1 {
		t.Fatalf("(3,4) should have died recently with 1 neighbour, got %+v", *c)
	}
	if c := u.Cell(4, 3); !c.State || c.StatePrevGen {
		t.Fatalf("(4,3) should be newly born, got %+v", *c)
	}
	if c := u.Cell(4, 4); !c.State || !c.StatePrevGen || c.Age != 1 {
		t.Fatalf("(4,4) should survive with age 1, got %+v", *c)
	}

	u.Step()
	// Two generations later the vertical ends died and nothing from the
	// original horizontal buffer may leak into their history.
	if c := u.Cell(4, 3); !c.DiedRecently() {
		t.Fatalf("(4,3) should have died recently, got %+v", *c)
	}
	if c := u.Cell(3, 4); !c.State || c.StatePrevGen {
		t.Fatalf("(3,4) should be reborn with dead history, got %+v", *c)
	}
	if c := u.Cell(0, 0); c.State || c.StatePrevGen {
		t.Fatalf("far cell should be long dead, got %+v", *c)
	}
}

func TestCellCoordinatesMatchPositions(t *testing.T) {
	u := New(5, 4, core.NewRNG(3))
	u.Reseed(5, 4)
	for i := 0; i < 3; i++ {
		u.Step()
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				if c := u.Cell(x, y); c.X != x || c.Y != y {
					t.Fatalf("cell at (%d,%d) reports (%d,%d)", x, y, c.X, c.Y)
				}
			}
		}
	}
}

func TestAgeTracking(t *testing.T) {
	u := newEmpty(8, 8)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		u.Set(p[0], p[1], true)
	}
	for i := 0; i < 5; i++ {
		u.Step()
	}
	if age := u.Cell(2, 2).Age; age != 5 {
		t.Fatalf("block cell alive for 5 generations should have age 5, got %d", age)
	}

	// Isolate (2,2) by removing the rest of the block.
	u.Set(3, 2, false)
	u.Set(2, 3, false)
	u.Set(3, 3, false)
	u.Step()
	if c := u.Cell(2, 2); c.State || c.Age != 0 {
		t.Fatalf("isolated cell should die with age 0, got %+v", *c)
	}
}

func TestReseedIsDeterministicAndResetsGeneration(t *testing.T) {
	a := New(12, 10, core.NewRNG(42))
	b := New(12, 10, core.NewRNG(42))
	a.Reseed(12, 10)
	b.Reseed(12, 10)
	a.Step()
	a.Reseed(12, 10)
	b.Reseed(12, 10)

	if a.Generation() != 0 {
		t.Fatalf("reseed must restart the generation counter, got %d", a.Generation())
	}
	if !slices.Equal(states(a), states(b)) {
		t.Fatal("equal seeds produced different reseeds")
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 12; x++ {
			if c := a.Cell(x, y); c.Age != 0 || c.StatePrevGen {
				t.Fatalf("reseeded cell (%d,%d) carries history: %+v", x, y, *c)
			}
		}
	}
}

func TestPrimeDoesNotCountGenerations(t *testing.T) {
	u := New(6, 6, core.NewRNG(5))
	u.Reseed(6, 6)
	u.Prime(2)
	if u.Generation() != 0 {
		t.Fatalf("priming must not advance the generation, got %d", u.Generation())
	}
}

func TestShrinkKeepsStateAndGrowthIsRejected(t *testing.T) {
	u := New(10, 10, core.NewRNG(9))
	u.Reseed(10, 10)
	u.Step()
	before := *u.Cell(3, 3)

	if !u.Shrink(8, 10) {
		t.Fatal("shrinking width should succeed")
	}
	if u.Generation() != 1 {
		t.Fatalf("shrink must keep generation, got %d", u.Generation())
	}
	if got := *u.Cell(3, 3); got != before {
		t.Fatalf("shrink must keep cell state, got %+v want %+v", got, before)
	}
	if u.Shrink(9, 10) {
		t.Fatal("regrowing past the active region must be rejected")
	}
	if s := u.Size(); s.W != 8 || s.H != 10 {
		t.Fatalf("unexpected active size %+v", s)
	}
	if c := u.Capacity(); c.W != 10 || c.H != 10 {
		t.Fatalf("shrink must keep the allocation, got %+v", c)
	}
}

func TestWrapAtShrunkEdge(t *testing.T) {
	u := newEmpty(10, 10)
	// Live cells just past the shrunk region must not count as neighbours.
	u.Set(8, 0, true)
	u.Set(9, 0, true)
	u.Set(4, 8, true)
	if !u.Shrink(8, 8) {
		t.Fatal("shrink should succeed")
	}
	u.Set(7, 0, true)
	u.Set(0, 0, true)
	u.Set(1, 0, true)
	u.Set(4, 7, true)
	u.Set(4, 0, true)
	u.Set(4, 1, true)

	u.Step()
	expectAlive(t, u,
		[2]int{0, 7}, [2]int{0, 0}, [2]int{0, 1},
		[2]int{3, 0}, [2]int{4, 0}, [2]int{5, 0})
	if c := u.Cell(7, 0); c.LivingNeighbours != 1 {
		t.Fatalf("(7,0) should only see (0,0) across the seam, got %d neighbours", c.LivingNeighbours)
	}

	u.Step()
	expectAlive(t, u,
		[2]int{7, 0}, [2]int{0, 0}, [2]int{1, 0},
		[2]int{4, 7}, [2]int{4, 0}, [2]int{4, 1})
}

func TestDegenerateGrids(t *testing.T) {
	single := newEmpty(1, 1)
	single.Set(0, 0, true)
	single.Step()
	if single.Cell(0, 0).State {
		t.Fatal("a lone cell sees itself 8 times and must die of overcrowding")
	}

	dead := newEmpty(4, 4)
	dead.Step()
	if dead.LiveCells() != 0 {
		t.Fatal("an empty universe must stay empty")
	}
}

func states(u *Universe) []bool {
	size := u.Size()
	out := make([]bool, 0, size.W*size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			out = append(out, u.Cell(x, y).State)
		}
	}
	return out
}
