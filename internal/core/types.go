package core

import "time"

// Size describes a width/height pair, in cells or pixels depending on use.
type Size struct {
	W int
	H int
}

// Viewport reports the current pixel size of the area the simulation is shown in.
type Viewport interface {
	ViewportSize() Size
}

// ViewportFunc adapts a plain function to the Viewport interface.
type ViewportFunc func() Size

// ViewportSize calls f.
func (f ViewportFunc) ViewportSize() Size { return f() }

// Scheduler runs a callback periodically until stopped.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
	Running() bool
}
