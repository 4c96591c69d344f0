package core

import (
	"image/color"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value with even odds.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Color returns an opaque colour with each channel drawn from [1, 255].
func (r *RNG) Color() color.RGBA {
	return color.RGBA{
		R: uint8(1 + r.r.IntN(255)),
		G: uint8(1 + r.r.IntN(255)),
		B: uint8(1 + r.r.IntN(255)),
		A: 0xff,
	}
}
