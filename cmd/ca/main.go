//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellsim/internal/app"
	"cellsim/internal/core"
	"cellsim/internal/simulator"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	kind, err := cfg.ParseKind()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := simulator.New(kind, cfg.SimulatorOptions()...)
	if err != nil {
		log.Fatal(err)
	}
	sim.SetFloatParameter("density", cfg.Density)

	editor := app.NewEditor(sim, core.Speed(cfg.Speed), cfg.Seed)
	if cfg.Seed != 0 {
		editor.Reseed(cfg.Seed)
	}

	game := app.New(editor, cfg.Scale, cfg.HUDWidth)
	vp := sim.State().Viewport()

	ebiten.SetWindowTitle("cellsim — " + kind.String())
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowSize(max(vp.Width(), 40)*cfg.Scale+cfg.HUDWidth, max(vp.Height(), 30)*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
