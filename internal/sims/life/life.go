package life

import (
	"fmt"
	"strconv"

	"cellsim/internal/core"
)

// Config controls the initial field of the Life automaton.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 15, Height: 15}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life on packed cells. Each cell stores its
// live-neighbor count next to its own state, so a generation only needs one
// pass and neighbors are adjusted as cells are born or die.
type Life struct {
	w, h int
}

// New returns a Life automaton whose fresh states cover w×h cells.
func New(w, h int) *Life {
	return &Life{w: w, h: h}
}

// Name returns the automaton identifier.
func (l *Life) Name() string { return "life" }

// Kind reports core.KindLife.
func (l *Life) Kind() core.Kind { return core.KindLife }

// DefaultViewport is the w×h square at the origin.
func (l *Life) DefaultViewport() core.Rect { return core.NewRect(0, 0, l.w, l.h) }

// Step advances s by one generation. A state whose live cells touch the
// viewport edge is first grown so their neighbors are stored.
func (l *Life) Step(s *core.State) error {
	if s.Kind() != core.KindLife {
		return fmt.Errorf("%s: %w: got %v", l.Name(), core.ErrKindMismatch, s.Kind())
	}
	s.CoverVicinity()
	vp := s.Viewport()
	cur := s.Grid()
	next := core.NewState(core.KindLife, vp)
	g := next.Grid()

	for y := vp.Origin.Y; y < vp.MaxY(); y++ {
		for x := vp.Origin.X; x < vp.MaxX(); x++ {
			p := core.Pt(x, y)
			old := core.PackedCell(cur.Raw(p))
			if old == 0 {
				continue
			}
			nv := old.Next()
			switch {
			case !old.IsActive() && nv.IsActive():
				next.AdjustVicinity(p, 1)
			case old.IsActive() && !nv.IsActive():
				next.AdjustVicinity(p, -1)
			}
			g.AddRaw(p, nv.Raw())
		}
	}

	*s = *next
	return nil
}

func init() {
	core.Register(core.KindLife, func(cfg map[string]string) core.Automaton {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
