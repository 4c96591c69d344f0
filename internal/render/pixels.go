package render

import (
	"image"
	"image/color"
	"math"

	"mad-life/internal/universe"
)

// StateImage returns a one-pixel-per-cell image of the universe's active
// region, coloured by each cell's render classification.
func StateImage(u *universe.Universe, p Palette) *image.RGBA {
	size := u.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillStateRGBA(img.Pix, u, p.Alive, p.DiedRecently, p.Background)
	return img
}

// fillStateRGBA converts cell classifications into RGBA pixels in buf.
func fillStateRGBA(buf []byte, u *universe.Universe, alive, dying, dead color.Color) {
	rgba := func(c color.Color) [4]byte {
		r, g, b, a := c.RGBA()
		return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	on, recent, off := rgba(alive), rgba(dying), rgba(dead)
	size := u.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			c := u.Cell(x, y)
			px := off
			switch {
			case c.Alive():
				px = on
			case c.DiedRecently():
				px = recent
			}
			copy(buf[base:base+4], px[:])
		}
	}
}

// DefaultMaxAge is the age at which the age heat map saturates.
const DefaultMaxAge = 20

// AgeHeatImage returns a one-pixel-per-cell heat map of how long each alive
// cell has survived. Dead cells are transparent.
func AgeHeatImage(u *universe.Universe, maxAge int) *image.RGBA {
	size := u.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	FillAgeRGBA(img.Pix, u, maxAge)
	return img
}

// FillAgeRGBA writes the age heat map of u's active region into buf, four
// bytes per cell in row-major order. buf must hold at least W*H*4 bytes.
func FillAgeRGBA(buf []byte, u *universe.Universe, maxAge int) {
	size := u.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			c := u.Cell(x, y)
			if !c.Alive() {
				buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
				continue
			}
			col := AgeColor(c.Age, maxAge)
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = col.R, col.G, col.B, col.A
		}
	}
}

// AgeColor maps age onto a cold-to-hot ramp that saturates at maxAge. The
// colour is premultiplied.
func AgeColor(age, maxAge int) color.RGBA {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	t := clamp01(float64(age) / float64(maxAge))
	stops := []struct {
		t   float64
		col color.NRGBA
	}{
		{0.0, color.NRGBA{R: 40, G: 70, B: 190, A: 150}},
		{0.35, color.NRGBA{R: 60, G: 190, B: 170, A: 170}},
		{0.7, color.NRGBA{R: 240, G: 140, B: 40, A: 200}},
		{1.0, color.NRGBA{R: 255, G: 245, B: 220, A: 230}},
	}
	out := stops[len(stops)-1].col
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].t {
			prev := stops[i-1]
			local := (t - prev.t) / (stops[i].t - prev.t)
			out = lerpNRGBA(prev.col, stops[i].col, local)
			break
		}
	}
	return color.RGBAModel.Convert(out).(color.RGBA)
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
