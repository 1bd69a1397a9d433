package elementary

import (
	"fmt"
	"strconv"

	"cellsim/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width int
	Rule  uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Rule: 90}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code. Each generation is
// appended as a new row below the previous one, widening the strip by one
// cell on either side.
type Elementary struct {
	Rule  uint8
	width int
}

// New creates an automaton for the given rule whose fresh states are width
// cells wide.
func New(width int, rule uint8) *Elementary {
	return &Elementary{Rule: rule, width: width}
}

// Name returns the automaton identifier.
func (e *Elementary) Name() string { return fmt.Sprintf("elementary rule %d", e.Rule) }

// Kind reports core.KindElementary.
func (e *Elementary) Kind() core.Kind { return core.KindElementary }

// DefaultViewport is a single row at the origin.
func (e *Elementary) DefaultViewport() core.Rect { return core.NewRect(0, 0, e.width, 1) }

// Step appends one generation below the bottom row. An empty viewport is left
// as is.
func (e *Elementary) Step(s *core.State) error {
	if s.Kind() != core.KindElementary {
		return fmt.Errorf("%s: %w: got %v", e.Name(), core.ErrKindMismatch, s.Kind())
	}
	vp := s.Viewport()
	if vp.Empty() {
		return nil
	}
	y := vp.MaxY() - 1
	s.SetViewport(vp.Resizing(vp.LeftBottom()).Resizing(vp.RightBottom()))

	g := s.Grid()
	grown := g.Viewport()
	for x := grown.Origin.X; x < grown.MaxX(); x++ {
		l := g.Raw(core.Pt(x-1, y)) & 1
		m := g.Raw(core.Pt(x, y)) & 1
		r := g.Raw(core.Pt(x+1, y)) & 1
		bit := (e.Rule >> uint(l<<2|m<<1|r)) & 1
		g.SetRaw(core.Pt(x, y+1), int8(bit))
	}
	return nil
}

func init() {
	core.Register(core.KindElementary, func(cfg map[string]string) core.Automaton {
		c := FromMap(cfg)
		return New(c.Width, c.Rule)
	})
}

// Parameters exposes the rule number.
func (e *Elementary) Parameters() []core.Parameter {
	return []core.Parameter{core.IntParam("rule", "Rule", int(e.Rule))}
}

// ParameterControls lets the HUD step through the 256 rules.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "rule", Label: "Rule", Type: core.ParamTypeInt,
		Step: 1, HasMin: true, Max: 255, HasMax: true,
	}}
}

// SetIntParameter changes the rule for subsequent generations.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	e.Rule = uint8(value)
	return true
}
