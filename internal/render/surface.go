package render

import (
	"image/color"

	"mad-life/internal/core"
)

// CompositeMode selects how new shapes combine with pixels already on a
// surface.
type CompositeMode int

const (
	// CompositeSourceOver paints shapes over the destination using alpha.
	CompositeSourceOver CompositeMode = iota
	// CompositeLighter adds source and destination colours.
	CompositeLighter
)

func (m CompositeMode) String() string {
	switch m {
	case CompositeLighter:
		return "lighter"
	default:
		return "source-over"
	}
}

// Surface is a persistent 2D drawing target. Pixels survive between frames
// until painted over.
type Surface interface {
	Size() core.Size
	Resize(w, h int)
	SetCompositeMode(m CompositeMode)
	FillRect(x, y, w, h float64, c color.Color)
	Fill(p *Path, c color.Color)
	Stroke(p *Path, width float64, c color.Color)
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct{ X, Y, W, H float64 }

// Disc is a filled circle in pixels.
type Disc struct{ CX, CY, R float64 }

// Line is a straight segment in pixels.
type Line struct{ X0, Y0, X1, Y1 float64 }

// Path batches shapes so a surface can fill or stroke them in one call.
// Paths are reused across frames; Reset keeps the backing storage.
type Path struct {
	Rects []Rect
	Discs []Disc
	Lines []Line
}

// Reset empties the path.
func (p *Path) Reset() {
	p.Rects = p.Rects[:0]
	p.Discs = p.Discs[:0]
	p.Lines = p.Lines[:0]
}

// Rect appends a rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.Rects = append(p.Rects, Rect{X: x, Y: y, W: w, H: h})
}

// Disc appends a full circle centred on (cx, cy).
func (p *Path) Disc(cx, cy, r float64) {
	p.Discs = append(p.Discs, Disc{CX: cx, CY: cy, R: r})
}

// Line appends a segment from (x0, y0) to (x1, y1).
func (p *Path) Line(x0, y0, x1, y1 float64) {
	p.Lines = append(p.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// Len returns the number of shapes in the path.
func (p *Path) Len() int { return len(p.Rects) + len(p.Discs) + len(p.Lines) }
