//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// KeyHelp is the list of key bindings shown under the parameters.
var KeyHelp = []string{
	"SPACE start/stop   N step   R reset",
	"G grid   D died-recently   H hide",
	"+/- cell size   [/] cycle time",
	"1 age map   2 neighbour counts   S freeze frame",
}

// HUD renders a translucent parameter panel in the top-left corner.
type HUD struct {
	src      parameterProvider
	visible  bool
	snapshot core.ParameterSnapshot

	pixel *ebiten.Image
}

// NewHUD constructs a HUD reading parameters from src.
func NewHUD(src parameterProvider) *HUD {
	h := &HUD{src: src, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached snapshot and handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if h.visible {
		h.snapshot = h.src.Parameters()
	}
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := make([]string, 0, 16)
	for _, g := range h.snapshot.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-22s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, "")
	lines = append(lines, KeyHelp...)

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + 2*panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorM.Scale(16.0/255, 16.0/255, 20.0/255, 0.8)
	screen.DrawImage(h.pixel, op)

	y := panelPadding + lineHeight - 3
	for _, l := range lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if len(l) > 0 && l[0] != ' ' {
			fg = color.RGBA{R: 200, G: 160, B: 230, A: 255}
		}
		text.Draw(screen, l, face, panelPadding, y, fg)
		y += lineHeight
	}
}

const (
	panelPadding = 8
	lineHeight   = 15
)
