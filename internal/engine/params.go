package engine

import (
	"strconv"
	"time"

	"mad-life/internal/core"
)

var _ core.IntParameterSetter = (*Engine)(nil)

// Parameters reports the engine state for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Universe",
			Params: []core.Parameter{
				intParam("grid_w", "Grid width", e.grid.W),
				intParam("grid_h", "Grid height", e.grid.H),
				intParam("generation", "Generation", e.Generation()),
				intParam("alive", "Alive (last frame)", e.LastFrame().Alive),
				intParam("died_recently_painted", "Dying (last frame)", e.LastFrame().DiedRecently),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(e.cfg.Seed, 10)},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("cycle_ms", "Cycle (ms)", int(e.cfg.CycleTime/time.Millisecond)),
				boolParam("evolving", "Evolving", e.IsEvolving()),
			},
		},
		{
			Name: "Rendering",
			Params: []core.Parameter{
				intParam("cell_px", "Cell size (px)", e.cfg.CellPixelSize),
				boolParam("grid", "Grid lines", e.cfg.GridLines),
				boolParam("died_recently", "Died recently", e.cfg.DiedRecently),
				boolParam("suppressed", "Rendering suppressed", e.RenderingSuppressed()),
			},
		},
	}}
}

// SetIntParameter updates cell_px or cycle_ms. It reports whether key was
// recognised.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "cell_px":
		e.SetCellSize(value)
	case "cycle_ms":
		e.SetCycleTime(time.Duration(value) * time.Millisecond)
	default:
		return false
	}
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}
