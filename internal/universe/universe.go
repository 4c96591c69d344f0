package universe

import (
	"mad-life/internal/core"
)

// Universe implements Conway's Game of Life on a toroidal grid with two
// alternating cell buffers.
//
// The buffers may be allocated larger than the active region after a shrink;
// only the active Width x Height region is evolved and neighbour lookups wrap
// at the active edges.
type Universe struct {
	w, h int
	cur  *core.Grid[Cell]
	nxt  *core.Grid[Cell]
	rng  *core.RNG

	generation int
}

// New returns an all-dead universe with the provided dimensions.
func New(w, h int, rng *core.RNG) *Universe {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	u := &Universe{rng: rng}
	u.allocate(w, h)
	return u
}

// Size returns the active grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Capacity returns the allocated buffer dimensions.
func (u *Universe) Capacity() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Generation returns the number of counted generations since the last reseed.
func (u *Universe) Generation() int { return u.generation }

// Cell returns the current-generation record at (x, y). Callers must treat it
// as read-only.
func (u *Universe) Cell(x, y int) *Cell { return u.cur.At(x, y) }

// Set overrides the current state of the cell at (x, y), wrapping the
// coordinates onto the torus. The cell's age and history are cleared.
func (u *Universe) Set(x, y int, alive bool) {
	x, y = core.WrapIndex(x, u.w), core.WrapIndex(y, u.h)
	c := u.cur.At(x, y)
	c.State = alive
	c.StatePrevGen = false
	c.Age = 0
}

// Clear kills every cell in both buffers.
func (u *Universe) Clear() {
	for _, g := range []*core.Grid[Cell]{u.cur, u.nxt} {
		cells := g.Cells()
		for i := range cells {
			c := &cells[i]
			c.State, c.StatePrevGen, c.Age, c.LivingNeighbours = false, false, 0, 0
		}
	}
}

// Reseed resizes the active region to w x h, reallocating only when the
// buffers are too small, and gives every active cell an independent 50/50
// random state with age 0. The generation counter restarts at 0.
func (u *Universe) Reseed(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w > u.cur.W || h > u.cur.H {
		u.allocate(w, h)
	}
	u.w, u.h = w, h
	u.generation = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := u.cur.At(x, y)
			c.State = u.rng.Bool()
			c.StatePrevGen = false
			c.Age = 0
			c.LivingNeighbours = 0

			n := u.nxt.At(x, y)
			n.State = c.State
			n.StatePrevGen = false
			n.Age = 0
			n.LivingNeighbours = 0
		}
	}
}

// Shrink restricts the active region to w x h without touching cell state.
// It reports false, leaving the universe unchanged, when either dimension
// would exceed the current active region.
func (u *Universe) Shrink(w, h int) bool {
	if w <= 0 || h <= 0 || w > u.w || h > u.h {
		return false
	}
	u.w, u.h = w, h
	return true
}

// Step advances the universe by one counted generation.
func (u *Universe) Step() {
	u.evolve()
	u.generation++
}

// Prime evolves n generations without counting them, so StatePrevGen carries
// real history before the first counted generation.
func (u *Universe) Prime(n int) {
	for i := 0; i < n; i++ {
		u.evolve()
	}
}

// LiveCells counts the alive cells in the active region.
func (u *Universe) LiveCells() int {
	alive := 0
	for y := 0; y < u.h; y++ {
		for x := 0; x < u.w; x++ {
			if u.cur.At(x, y).State {
				alive++
			}
		}
	}
	return alive
}

// Neighbours counts the living cells among the eight wraparound neighbours
// of (x, y) in the current generation.
func (u *Universe) Neighbours(x, y int) int {
	w, h := u.w, u.h
	g := u.cur
	cells := g.Cells()
	xm, xp := (x-1+w)%w, (x+1)%w
	ym, yp := (y-1+h)%h, (y+1)%h
	n := 0
	for _, i := range [8]int{
		g.Index(xm, ym), g.Index(x, ym), g.Index(xp, ym),
		g.Index(xm, y), g.Index(xp, y),
		g.Index(xm, yp), g.Index(x, yp), g.Index(xp, yp),
	} {
		if cells[i].State {
			n++
		}
	}
	return n
}

func (u *Universe) evolve() {
	for y := 0; y < u.h; y++ {
		for x := 0; x < u.w; x++ {
			cur := u.cur.At(x, y)
			neighbours := u.Neighbours(x, y)
			alive, age := NextState(cur.State, neighbours, cur.Age)

			nxt := u.nxt.At(x, y)
			nxt.State = alive
			nxt.StatePrevGen = cur.State
			nxt.Age = age
			nxt.LivingNeighbours = neighbours
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

// NextState applies the Game of Life rule to a cell with the given state,
// living neighbour count and age, returning the next state and age.
func NextState(alive bool, neighbours, age int) (bool, int) {
	if alive {
		if neighbours == 2 || neighbours == 3 {
			return true, age + 1
		}
		return false, 0
	}
	if neighbours == 3 {
		return true, 0
	}
	return false, 0
}

func (u *Universe) allocate(w, h int) {
	u.cur = core.NewGrid[Cell](w, h)
	u.nxt = core.NewGrid[Cell](w, h)
	u.w, u.h = u.cur.W, u.cur.H
	for _, g := range []*core.Grid[Cell]{u.cur, u.nxt} {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				c := g.At(x, y)
				c.X, c.Y = x, y
			}
		}
	}
}
