//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"mad-life/internal/render"
	"mad-life/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type universeSource interface {
	Universe() *universe.Universe
	Renderer() *render.Renderer
}

const (
	// labelMinCellPx is the smallest cell that fits a neighbour count.
	labelMinCellPx = 14
	maxLabels      = 8000
)

// Overlay draws optional diagnostics on top of the simulation surface.
type Overlay struct {
	src        universeSource
	maxAge     int
	showAge    bool
	showLabels bool

	ageImg *ebiten.Image
	ageBuf []byte
}

// NewOverlay constructs an overlay reading cells from src.
func NewOverlay(src universeSource) *Overlay {
	return &Overlay{src: src, maxAge: render.DefaultMaxAge}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAge = !o.showAge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLabels = !o.showLabels
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || (!o.showAge && !o.showLabels) {
		return
	}
	u := o.src.Universe()
	cellPx := o.src.Renderer().CellSize()
	if o.showAge {
		o.drawAge(screen, u, cellPx)
	}
	if o.showLabels && cellPx >= labelMinCellPx {
		o.drawLabels(screen, u, cellPx)
	}
}

func (o *Overlay) drawAge(screen *ebiten.Image, u *universe.Universe, cellPx int) {
	size := u.Size()
	total := size.W * size.H
	if o.ageImg == nil || o.ageImg.Bounds().Dx() != size.W || o.ageImg.Bounds().Dy() != size.H {
		if o.ageImg != nil {
			o.ageImg.Dispose()
		}
		o.ageImg = ebiten.NewImage(size.W, size.H)
		o.ageBuf = make([]byte, 4*total)
	}
	render.FillAgeRGBA(o.ageBuf, u, o.maxAge)
	o.ageImg.WritePixels(o.ageBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellPx), float64(cellPx))
	screen.DrawImage(o.ageImg, op)
}

func (o *Overlay) drawLabels(screen *ebiten.Image, u *universe.Universe, cellPx int) {
	size := u.Size()
	if size.W*size.H > maxLabels {
		return
	}
	face := basicfont.Face7x13
	alive := color.RGBA{R: 255, G: 255, B: 255, A: 230}
	dead := color.RGBA{R: 150, G: 150, B: 170, A: 160}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := u.Cell(x, y)
			if c.LivingNeighbours == 0 {
				continue
			}
			fg := dead
			if c.Alive() {
				fg = alive
			}
			text.Draw(screen, strconv.Itoa(c.LivingNeighbours), face, x*cellPx+3, y*cellPx+13, fg)
		}
	}
}
