//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mad-life/internal/core"
)

// shapesPerBatch bounds how many shapes go into one vector path so the
// generated vertex count stays within uint16 indices.
const shapesPerBatch = 256

// EbitenSurface keeps a persistent offscreen image that the game copies to the
// screen every frame.
type EbitenSurface struct {
	img   *ebiten.Image
	white *ebiten.Image
	blend ebiten.Blend

	vs []ebiten.Vertex
	is []uint16
}

// NewEbitenSurface allocates a w x h offscreen surface.
func NewEbitenSurface(w, h int) *EbitenSurface {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	s := &EbitenSurface{
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		blend: ebiten.BlendSourceOver,
	}
	s.Resize(w, h)
	return s
}

// Image returns the offscreen image to draw onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// Size returns the pixel dimensions.
func (s *EbitenSurface) Size() core.Size {
	b := s.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Resize reallocates the offscreen image when the size changes.
func (s *EbitenSurface) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
}

// SetCompositeMode selects the blend used by subsequent draws.
func (s *EbitenSurface) SetCompositeMode(m CompositeMode) {
	switch m {
	case CompositeLighter:
		s.blend = ebiten.BlendLighter
	default:
		s.blend = ebiten.BlendSourceOver
	}
}

// FillRect fills a rectangle with c.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	var path vector.Path
	appendRect(&path, Rect{X: x, Y: y, W: w, H: h})
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.flush(c, false)
}

// Fill fills every rectangle and disc in p with c.
func (s *EbitenSurface) Fill(p *Path, c color.Color) {
	var path vector.Path
	n := 0
	emit := func() {
		if n == 0 {
			return
		}
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		s.flush(c, true)
		path = vector.Path{}
		n = 0
	}
	for _, r := range p.Rects {
		appendRect(&path, r)
		if n++; n == shapesPerBatch {
			emit()
		}
	}
	for _, d := range p.Discs {
		path.MoveTo(float32(d.CX+d.R), float32(d.CY))
		path.Arc(float32(d.CX), float32(d.CY), float32(d.R), 0, 2*math.Pi, vector.Clockwise)
		path.Close()
		if n++; n == shapesPerBatch {
			emit()
		}
	}
	emit()
}

// Stroke strokes every line in p with c.
func (s *EbitenSurface) Stroke(p *Path, width float64, c color.Color) {
	var path vector.Path
	for _, l := range p.Lines {
		path.MoveTo(float32(l.X0), float32(l.Y0))
		path.LineTo(float32(l.X1), float32(l.Y1))
	}
	op := &vector.StrokeOptions{Width: float32(width)}
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.flush(c, false)
}

func (s *EbitenSurface) flush(c color.Color, antialias bool) {
	if len(s.is) == 0 {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b, a := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{Blend: s.blend, AntiAlias: antialias}
	s.img.DrawTriangles(s.vs, s.is, s.white, op)
}

func appendRect(p *vector.Path, r Rect) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
}
