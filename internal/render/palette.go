package render

import "image/color"

// Palette holds the colours the renderer paints with.
type Palette struct {
	Background   color.Color
	Fade         color.Color
	Alive        color.Color
	DiedRecently color.Color
	Grid         color.Color
}

// DefaultPalette returns the stock colours: magenta cells on black with a
// translucent white grid.
func DefaultPalette() Palette {
	alive := color.NRGBA{R: 240, G: 80, B: 235, A: 255}
	return Palette{
		Background:   color.NRGBA{A: 255},
		Fade:         color.NRGBA{A: 102},
		Alive:        alive,
		DiedRecently: Dim(alive, 4),
		Grid:         color.NRGBA{R: 255, G: 255, B: 255, A: 128},
	}
}

// WithAlive returns a copy of the palette using c for alive cells and a
// dimmed c for recently dead cells.
func (p Palette) WithAlive(c color.Color) Palette {
	p.Alive = c
	p.DiedRecently = Dim(c, 4)
	return p
}

// Dim divides the colour channels of c by factor, keeping it opaque.
func Dim(c color.Color, factor uint8) color.NRGBA {
	if factor == 0 {
		factor = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{R: n.R / factor, G: n.G / factor, B: n.B / factor, A: 255}
}
