package render

import (
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"mad-life/internal/core"
)

// CanvasSurface draws onto an in-memory RGBA image through the software
// backend of tfriedel6/canvas. It needs no window or GPU.
//
// In CompositeLighter mode each draw goes to a transparent layer whose
// premultiplied pixels are then added onto the base image, saturating at 255.
type CanvasSurface struct {
	w, h    int
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	mode    CompositeMode

	layer   *softwarebackend.SoftwareBackend
	layerCv *canvas.Canvas
}

// NewCanvasSurface allocates a w x h surface.
func NewCanvasSurface(w, h int) *CanvasSurface {
	s := &CanvasSurface{}
	s.Resize(w, h)
	return s
}

// Size returns the pixel dimensions.
func (s *CanvasSurface) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Resize reallocates the backing image when the size changes. Pixel content
// is discarded.
func (s *CanvasSurface) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.cv != nil && w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.backend = softwarebackend.New(w, h)
	s.cv = canvas.New(s.backend)
	s.layer = softwarebackend.New(w, h)
	s.layerCv = canvas.New(s.layer)
}

// SetCompositeMode selects how subsequent draws combine with the image.
func (s *CanvasSurface) SetCompositeMode(m CompositeMode) { s.mode = m }

// CompositeMode returns the last requested composite mode.
func (s *CanvasSurface) CompositeMode() CompositeMode { return s.mode }

// FillRect fills a rectangle with c.
func (s *CanvasSurface) FillRect(x, y, w, h float64, c color.Color) {
	cv := s.begin()
	cv.SetFillStyle(c)
	cv.FillRect(x, y, w, h)
	s.commit()
}

// Fill fills every rectangle and disc in p with c as one path.
func (s *CanvasSurface) Fill(p *Path, c color.Color) {
	if p.Len() == 0 {
		return
	}
	cv := s.begin()
	cv.BeginPath()
	for _, r := range p.Rects {
		cv.Rect(r.X, r.Y, r.W, r.H)
	}
	for _, d := range p.Discs {
		cv.MoveTo(d.CX+d.R, d.CY)
		cv.Arc(d.CX, d.CY, d.R, 0, 2*math.Pi, false)
		cv.ClosePath()
	}
	cv.SetFillStyle(c)
	cv.Fill()
	s.commit()
}

// Stroke strokes every line in p with c as one path.
func (s *CanvasSurface) Stroke(p *Path, width float64, c color.Color) {
	if len(p.Lines) == 0 {
		return
	}
	cv := s.begin()
	cv.BeginPath()
	for _, l := range p.Lines {
		cv.MoveTo(l.X0, l.Y0)
		cv.LineTo(l.X1, l.Y1)
	}
	cv.SetStrokeStyle(c)
	cv.SetLineWidth(width)
	cv.Stroke()
	s.commit()
}

// begin returns the canvas the next draw targets, clearing the additive
// layer when one is in use.
func (s *CanvasSurface) begin() *canvas.Canvas {
	if s.mode != CompositeLighter {
		return s.cv
	}
	clear(s.layer.Image.Pix)
	return s.layerCv
}

// commit adds the layer onto the base image after a lighter draw.
func (s *CanvasSurface) commit() {
	if s.mode != CompositeLighter {
		return
	}
	addSaturating(s.backend.Image.Pix, s.layer.Image.Pix)
}

// addSaturating adds src into dst per channel, capping at 255.
func addSaturating(dst, src []byte) {
	for i, v := range src {
		if v == 0 {
			continue
		}
		sum := int(dst[i]) + int(v)
		if sum > 0xff {
			sum = 0xff
		}
		dst[i] = uint8(sum)
	}
}

// Image exposes the rendered pixels.
func (s *CanvasSurface) Image() *image.RGBA { return s.backend.Image }
