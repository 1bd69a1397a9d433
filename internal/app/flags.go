package app

import (
	"flag"
	"strconv"

	"cellsim/internal/core"
	"cellsim/internal/simulator"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Kind     string
	Scale    int
	Speed    int
	Seed     int64
	Density  float64
	Rule     int
	Width    int
	Height   int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Kind:     core.KindLife.String(),
		Scale:    16,
		Speed:    int(core.SpeedNormal),
		Seed:     0,
		Density:  0.3,
		Rule:     90,
		Width:    -1,
		Height:   -1,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Kind, "kind", c.Kind, "automaton to run: life or elementary")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "0 slow, 1 normal, 2 fast")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random starting field; 0 starts empty")
	fs.Float64Var(&c.Density, "density", c.Density, "share of live cells when seeding")
	fs.IntVar(&c.Rule, "rule", c.Rule, "elementary rule number")
	fs.IntVar(&c.Width, "w", c.Width, "initial field width; -1 keeps the automaton default")
	fs.IntVar(&c.Height, "h", c.Height, "initial field height (life only); -1 keeps the automaton default")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels; 0 hides it")
}

// ParseKind resolves the -kind flag.
func (c *Config) ParseKind() (core.Kind, error) { return core.ParseKind(c.Kind) }

// SimulatorOptions turns the automaton flags into per-kind factory configs.
func (c *Config) SimulatorOptions() []simulator.Option {
	elementary := map[string]string{"rule": strconv.Itoa(c.Rule)}
	life := map[string]string{}
	if c.Width >= 0 {
		elementary["w"] = strconv.Itoa(c.Width)
		life["w"] = strconv.Itoa(c.Width)
	}
	if c.Height >= 0 {
		life["h"] = strconv.Itoa(c.Height)
	}
	return []simulator.Option{
		simulator.WithConfig(core.KindElementary, elementary),
		simulator.WithConfig(core.KindLife, life),
	}
}
