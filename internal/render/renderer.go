package render

import (
	"image/color"

	"mad-life/internal/universe"
)

// smallCellPx is the cell size below which cells are drawn as squares.
const smallCellPx = 5

// FrameStats summarises what a Render call painted.
type FrameStats struct {
	Alive        int
	DiedRecently int
	GridLines    int
}

// Renderer paints universe generations onto a Surface. It only draws cells
// that are alive or died in the last generation; everything else fades out
// under a translucent overlay painted at the start of each frame.
type Renderer struct {
	surface Surface
	palette Palette

	cellSize     int
	gridLines    bool
	diedRecently bool

	alive Path
	dying Path
	grid  Path
}

// NewRenderer returns a renderer drawing cellSize-pixel cells onto s.
func NewRenderer(s Surface, palette Palette, cellSize int) *Renderer {
	r := &Renderer{surface: s, palette: palette, gridLines: true}
	r.SetCellSize(cellSize)
	return r
}

// SetCellSize changes the pixel edge length of a cell.
func (r *Renderer) SetCellSize(px int) {
	if px < 1 {
		px = 1
	}
	r.cellSize = px
}

// CellSize returns the pixel edge length of a cell.
func (r *Renderer) CellSize() int { return r.cellSize }

// SetGridLines toggles the grid overlay.
func (r *Renderer) SetGridLines(enabled bool) { r.gridLines = enabled }

// GridLines reports whether the grid overlay is drawn.
func (r *Renderer) GridLines() bool { return r.gridLines }

// SetDiedRecently toggles painting of cells that died in the last generation.
func (r *Renderer) SetDiedRecently(enabled bool) { r.diedRecently = enabled }

// DiedRecently reports whether recently dead cells are painted.
func (r *Renderer) DiedRecently() bool { return r.diedRecently }

// Palette returns the active colours.
func (r *Renderer) Palette() Palette { return r.palette }

// SetAliveColor switches the live cell colour and the derived dim colour.
func (r *Renderer) SetAliveColor(c color.Color) { r.palette = r.palette.WithAlive(c) }

// Clear paints the whole surface with the opaque background colour.
func (r *Renderer) Clear() {
	size := r.surface.Size()
	r.surface.SetCompositeMode(CompositeSourceOver)
	r.surface.FillRect(0, 0, float64(size.W), float64(size.H), r.palette.Background)
}

// Render paints the current generation of u.
func (r *Renderer) Render(u *universe.Universe) FrameStats {
	s := r.surface
	size := s.Size()

	s.SetCompositeMode(CompositeSourceOver)
	s.FillRect(0, 0, float64(size.W), float64(size.H), r.palette.Fade)
	s.SetCompositeMode(CompositeLighter)

	r.alive.Reset()
	r.dying.Reset()
	grid := u.Size()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := u.Cell(x, y)
			switch {
			case c.Alive():
				r.addCell(&r.alive, x, y)
			case r.diedRecently && c.DiedRecently():
				r.addCell(&r.dying, x, y)
			}
		}
	}

	stats := FrameStats{Alive: r.alive.Len(), DiedRecently: r.dying.Len()}
	if r.dying.Len() > 0 {
		s.Fill(&r.dying, r.palette.DiedRecently)
	}
	if r.alive.Len() > 0 {
		s.Fill(&r.alive, r.palette.Alive)
	}
	if r.gridLines {
		stats.GridLines = r.drawGrid(size.W, size.H)
	}
	return stats
}

func (r *Renderer) addCell(p *Path, x, y int) {
	px := float64(r.cellSize)
	if r.cellSize < smallCellPx {
		p.Rect(float64(x)*px, float64(y)*px, px, px)
		return
	}
	p.Disc(float64(x)*px+px/2, float64(y)*px+px/2, px/3)
}

func (r *Renderer) drawGrid(w, h int) int {
	r.grid.Reset()
	step := float64(r.cellSize)
	fw, fh := float64(w), float64(h)
	for y := 0.5; y < fh; y += step {
		r.grid.Line(0, y, fw, y)
	}
	for x := 0.5; x < fw; x += step {
		r.grid.Line(x, 0, x, fh)
	}
	if r.grid.Len() > 0 {
		r.surface.Stroke(&r.grid, 1, r.palette.Grid)
	}
	return r.grid.Len()
}
