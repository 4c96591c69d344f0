//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/engine"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	engine  *engine.Engine
	surface *render.EbitenSurface
	sched   *core.Interval
	hud     *ui.HUD
	overlay *ui.Overlay

	viewport core.Size
}

// New constructs a Game for a w x h window. Evolution starts immediately
// unless paused is set.
func New(cfg engine.Config, w, h int, paused bool, logger *slog.Logger) *Game {
	g := &Game{
		surface:  render.NewEbitenSurface(w, h),
		sched:    core.NewInterval(time.Now),
		viewport: core.Size{W: w, H: h},
	}
	vp := core.ViewportFunc(func() core.Size { return g.viewport })
	g.engine = engine.New(cfg, g.surface, vp, g.sched, logger)
	g.hud = ui.NewHUD(g.engine)
	g.overlay = ui.NewOverlay(g.engine)
	if !paused {
		g.engine.StartEvolving()
	}
	return g
}

// Update handles input and runs due scheduler ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.ToggleEvolution()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.engine.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.engine.ToggleDiedRecently()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.SetRenderingSuppressed(!g.engine.RenderingSuppressed())
	}

	cfg := g.engine.Config()
	if justPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		g.engine.SetIntParameter("cell_px", cfg.CellPixelSize+cellStep(cfg.CellPixelSize))
	}
	if justPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		g.engine.SetIntParameter("cell_px", cfg.CellPixelSize-cellStep(cfg.CellPixelSize-1))
	}
	cycleMs := int(cfg.CycleTime / time.Millisecond)
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.engine.SetIntParameter("cycle_ms", cycleMs/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.engine.SetIntParameter("cycle_ms", cycleMs*2)
	}

	g.overlay.Update()
	g.hud.Update()
	g.sched.Poll()
	return nil
}

// Draw copies the persistent simulation surface to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size; the engine picks it up on its next step.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.viewport = core.Size{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// cellStep is the +/- increment for a cell size of px.
func cellStep(px int) int {
	if px < 10 {
		return 1
	}
	return 5
}
