// Command cellsim runs an automaton in the terminal and prints the field.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cellsim/internal/app"
	"cellsim/internal/core"
	"cellsim/internal/simulator"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Uint("gens", 10, "generations to simulate")
	trace := flag.Bool("trace", false, "print the field after every generation")
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
	if cfg.Seed != 0 {
		sim.Seed(cfg.Seed)
	} else if kind == core.KindElementary {
		vp := sim.State().Viewport()
		sim.SwitchValue(vp.Origin.Add(core.Pt(vp.Width()/2, 0)))
	}

	if *trace {
		report(sim)
		for i := uint(0); i < *gens; i++ {
			if _, err := sim.Simulate(1); err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(os.Stdout)
			report(sim)
		}
		return
	}
	if _, err := sim.Simulate(*gens); err != nil {
		log.Fatal(err)
	}
	report(sim)
}

func report(sim *simulator.Simulator) {
	s := sim.State()
	fmt.Printf("%s gen %d viewport %v population %d\n", sim.Automaton().Name(), sim.Generation(), s.Viewport(), s.Population())
	fmt.Println(s)
}
