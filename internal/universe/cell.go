package universe

// Cell is one grid position's simulation record.
type Cell struct {
	X, Y int

	// State is the cell's liveness in the current generation.
	State bool
	// StatePrevGen is the liveness in the generation before State.
	StatePrevGen bool
	// Age counts consecutive generations survived; it is 0 on birth and death.
	Age int
	// LivingNeighbours caches the neighbour count State was computed from.
	LivingNeighbours int
}

// Alive reports whether the cell is alive in the current generation.
func (c *Cell) Alive() bool { return c.State }

// DiedRecently reports whether the cell was alive one generation ago and is
// dead now.
func (c *Cell) DiedRecently() bool { return c.StatePrevGen && !c.State }
