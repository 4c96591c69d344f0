//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := engine.FromMap(engine.EnvSettings(os.Environ()))
	cfg.Bind(flag.CommandLine)
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 800, "initial window height")
	paused := flag.Bool("paused", false, "start with evolution stopped")
	flag.Parse()

	logger := core.NewLogger(os.Stderr, cfg.Verbose, cfg.ExtremeVerbose)
	game := app.New(cfg, *width, *height, *paused, logger)

	ebiten.SetWindowTitle("mad-life")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
