package engine

import (
	"context"
	"log/slog"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/universe"
)

// primingSteps is the number of uncounted evolutions run after a reseed so
// the first rendered frame has real previous-generation history.
const primingSteps = 2

// Engine couples a Universe to a Renderer, a viewport and a scheduler. It is
// not safe for concurrent use; every method must run on the same goroutine
// as the scheduler callbacks.
type Engine struct {
	cfg       Config
	surface   render.Surface
	viewport  core.Viewport
	scheduler core.Scheduler
	log       *slog.Logger

	rng      *core.RNG
	universe *universe.Universe
	renderer *render.Renderer

	viewportPx core.Size
	grid       core.Size

	suppressRendering bool
	lastFrame         render.FrameStats
}

// New configures an engine, sizes the grid from the viewport, seeds it and
// paints the surface. A nil logger discards output.
func New(cfg Config, surface render.Surface, viewport core.Viewport, scheduler core.Scheduler, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = core.NopLogger()
	}
	cfg = cfg.normalized()
	rng := core.NewRNG(cfg.Seed)
	e := &Engine{
		cfg:       cfg,
		surface:   surface,
		viewport:  viewport,
		scheduler: scheduler,
		log:       logger,
		rng:       rng,
		universe:  universe.New(1, 1, rng),
		renderer:  render.NewRenderer(surface, render.DefaultPalette(), cfg.CellPixelSize),
	}
	e.renderer.SetGridLines(cfg.GridLines)
	e.renderer.SetDiedRecently(cfg.DiedRecently)
	e.log.Debug("engine configured",
		slog.Int("cell_px", cfg.CellPixelSize),
		slog.Duration("cycle", cfg.CycleTime),
		slog.Bool("grid", cfg.GridLines))
	e.resize(true)
	return e
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Universe exposes the simulated grid.
func (e *Engine) Universe() *universe.Universe { return e.universe }

// Renderer exposes the renderer.
func (e *Engine) Renderer() *render.Renderer { return e.renderer }

// GridSize returns the grid capacity derived from the viewport.
func (e *Engine) GridSize() core.Size { return e.grid }

// Generation returns the number of counted steps since the last reset.
func (e *Engine) Generation() int { return e.universe.Generation() }

// LiveCells counts alive cells in the current generation.
func (e *Engine) LiveCells() int { return e.universe.LiveCells() }

// LastFrame returns what the most recent render painted.
func (e *Engine) LastFrame() render.FrameStats { return e.lastFrame }

// Resize recomputes the grid capacity from the viewport. Growth in either
// dimension reseeds the universe; a pure shrink keeps the current state.
func (e *Engine) Resize(force bool) { e.resize(force) }

func (e *Engine) resize(force bool) (reseeded bool) {
	vp := e.viewport.ViewportSize()
	grid := core.Size{W: cellsFor(vp.W, e.cfg.CellPixelSize), H: cellsFor(vp.H, e.cfg.CellPixelSize)}
	if !force && vp == e.viewportPx && grid == e.grid {
		return false
	}
	prev := e.grid
	e.viewportPx = vp
	e.grid = grid
	e.surface.Resize(vp.W, vp.H)
	e.log.Debug("viewport resized",
		slog.Int("width_px", vp.W), slog.Int("height_px", vp.H),
		slog.Int("grid_w", grid.W), slog.Int("grid_h", grid.H))

	if grid.W > prev.W || grid.H > prev.H {
		e.Reset()
		return true
	}
	e.universe.Shrink(grid.W, grid.H)
	e.renderer.Clear()
	return false
}

// Reset reseeds every cell at random, repaints the surface as empty and
// primes the cell history with uncounted evolutions.
func (e *Engine) Reset() {
	e.universe.Reseed(e.grid.W, e.grid.H)
	if e.cfg.RandomColors {
		c := e.rng.Color()
		e.renderer.SetAliveColor(c)
		e.log.Debug("live cell colour", slog.Any("rgba", c))
	}
	e.renderer.Clear()
	e.universe.Prime(primingSteps)
	e.lastFrame = render.FrameStats{}
	e.log.Debug("universe reset", slog.Int("cells", e.grid.W*e.grid.H))
}

// Step advances the universe by one generation and renders it.
func (e *Engine) Step() {
	start := time.Now()
	e.resize(false)
	e.universe.Step()
	if !e.suppressRendering {
		e.lastFrame = e.renderer.Render(e.universe)
	}
	e.log.Log(context.Background(), core.LevelTrace, "step",
		slog.Int("generation", e.universe.Generation()),
		slog.Int("alive", e.lastFrame.Alive),
		slog.Duration("elapsed", time.Since(start)))
}

// SetRenderingSuppressed stops Step from painting while enabled.
func (e *Engine) SetRenderingSuppressed(suppressed bool) { e.suppressRendering = suppressed }

// RenderingSuppressed reports whether Step paints.
func (e *Engine) RenderingSuppressed() bool { return e.suppressRendering }

// SetGridEnabled toggles the grid overlay from the next frame on.
func (e *Engine) SetGridEnabled(enabled bool) {
	e.cfg.GridLines = enabled
	e.renderer.SetGridLines(enabled)
}

// ToggleGrid flips the grid overlay.
func (e *Engine) ToggleGrid() { e.SetGridEnabled(!e.cfg.GridLines) }

// ToggleDiedRecently flips painting of recently dead cells.
func (e *Engine) ToggleDiedRecently() {
	e.cfg.DiedRecently = !e.cfg.DiedRecently
	e.renderer.SetDiedRecently(e.cfg.DiedRecently)
}

// IsEvolving reports whether steps are scheduled.
func (e *Engine) IsEvolving() bool { return e.scheduler.Running() }

// StartEvolving schedules Step every cycle. It is a no-op while evolving.
func (e *Engine) StartEvolving() {
	if e.IsEvolving() {
		return
	}
	e.log.Debug("starting evolution", slog.Duration("cycle", e.cfg.CycleTime))
	e.scheduler.Start(e.cfg.CycleTime, e.Step)
}

// StopEvolving cancels scheduled steps, leaving the last frame on the
// surface. Stopping an idle engine is a no-op.
func (e *Engine) StopEvolving() {
	if !e.IsEvolving() {
		return
	}
	e.log.Debug("halting evolution", slog.Int("generation", e.Generation()))
	e.scheduler.Stop()
}

// ToggleEvolution starts or stops scheduled steps.
func (e *Engine) ToggleEvolution() {
	if e.IsEvolving() {
		e.StopEvolving()
		return
	}
	e.StartEvolving()
}

// SetCycleTime changes the step interval, rescheduling immediately when
// evolving.
func (e *Engine) SetCycleTime(d time.Duration) {
	e.cfg.CycleTime = d
	e.cfg = e.cfg.normalized()
	if e.IsEvolving() {
		e.scheduler.Start(e.cfg.CycleTime, e.Step)
	}
	e.log.Debug("cycle time changed", slog.Duration("cycle", e.cfg.CycleTime))
}

// SetCellSize changes the cell pixel size and reseeds the universe.
func (e *Engine) SetCellSize(px int) {
	e.cfg.CellPixelSize = px
	e.cfg = e.cfg.normalized()
	e.renderer.SetCellSize(e.cfg.CellPixelSize)
	if !e.resize(true) {
		e.Reset()
	}
}

func cellsFor(px, cell int) int {
	n := (px + cell - 1) / cell
	if n < 1 {
		n = 1
	}
	return n
}
