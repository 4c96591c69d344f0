package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// At returns a pointer to the value stored at (x, y).
func (g *Grid[T]) At(x, y int) *T { return &g.data[y*g.W+x] }

// WrapIndex folds i into [0, n). n must be positive.
func WrapIndex(i, n int) int {
	return (i%n + n) % n
}

// Clear resets every value to its zero value.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
