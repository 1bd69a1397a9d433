// Package simulator drives one cellular automaton at a time: it owns the
// live state, steps it, applies edits coming from a host and keeps an undo
// stack of snapshots.
//
// A Simulator is not safe for concurrent use. Hosts call it from a single
// loop, typically scheduling Simulate(1) from a timer.
package simulator

import (
	"errors"
	"fmt"
	"log"

	"cellsim/internal/core"
	_ "cellsim/internal/sims/elementary"
	_ "cellsim/internal/sims/life"
	"cellsim/pkg/rng"
)

// Option customises a Simulator.
type Option func(*Simulator)

// WithLogger routes diagnostics to l instead of log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConfig passes cfg to the factory of kind whenever that automaton is
// selected.
func WithConfig(kind core.Kind, cfg map[string]string) Option {
	return func(s *Simulator) { s.configs[kind] = cfg }
}

type snapshot struct {
	state      *core.State
	generation uint
}

// Simulator owns one automaton, its current state and a LIFO stack of deep
// copies of earlier states.
type Simulator struct {
	automaton  core.Automaton
	state      *core.State
	generation uint
	snapshots  []snapshot
	density    float64

	configs map[core.Kind]map[string]string
	logger  *log.Logger
}

// New returns a Simulator running kind on its default field.
func New(kind core.Kind, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		configs: map[core.Kind]map[string]string{},
		logger:  log.Default(),
		density: 0.3,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.SelectAutomaton(kind); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulator) build(kind core.Kind) (core.Automaton, error) {
	factory, err := core.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return factory(s.configs[kind]), nil
}

// SelectAutomaton switches to kind and resets the field to that kind's
// default viewport. Snapshots are kept.
func (s *Simulator) SelectAutomaton(kind core.Kind) error {
	a, err := s.build(kind)
	if err != nil {
		return fmt.Errorf("select automaton: %w", err)
	}
	s.automaton = a
	s.state = core.NewState(kind, a.DefaultViewport())
	s.generation = 0
	return nil
}

// Kind reports the active automaton kind.
func (s *Simulator) Kind() core.Kind { return s.automaton.Kind() }

// Automaton returns the active stepping strategy.
func (s *Simulator) Automaton() core.Automaton { return s.automaton }

// State returns the live state. Callers must not keep it across mutating
// calls; use Clone for that.
func (s *Simulator) State() *core.State { return s.state }

// Generation counts generations simulated since the automaton was selected.
func (s *Simulator) Generation() uint { return s.generation }

// Simulate advances the field by the given number of generations. The steps
// run on a copy that replaces the live state only once all of them
// succeeded; on failure the prior state is returned unchanged together with
// the error.
func (s *Simulator) Simulate(generations uint) (*core.State, error) {
	if generations == 0 {
		return s.state, nil
	}
	next := s.state.Clone()
	for i := uint(0); i < generations; i++ {
		if err := s.automaton.Step(next); err != nil {
			s.logger.Printf("simulator: %s: step %d of %d failed, keeping generation %d: %v",
				s.automaton.Name(), i+1, generations, s.generation, err)
			return s.state, fmt.Errorf("simulate: %w", err)
		}
	}
	s.state = next
	s.generation += generations
	return s.state, nil
}

// SwitchValue toggles the cell at p.
func (s *Simulator) SwitchValue(p core.Point) { s.state.Toggle(p) }

// InsertSubState makes the cells inside r match sub.
func (s *Simulator) InsertSubState(r core.Rect, sub *core.State) {
	s.state.SetRegion(r, sub)
}

// SubStateInRect copies the cells inside r into a new state.
func (s *Simulator) SubStateInRect(r core.Rect) *core.State {
	return s.state.Region(r)
}

// ClearFieldInRect kills every cell inside r.
func (s *Simulator) ClearFieldInRect(r core.Rect) {
	s.state.SetRegion(r, core.NewState(s.state.Kind(), r))
}

// ClearField kills every cell of the current viewport.
func (s *Simulator) ClearField() { s.ClearFieldInRect(s.state.Viewport()) }

// ErrFieldTooLarge is returned by ResizeField for sides above MaxSide.
var ErrFieldTooLarge = errors.New("field too large")

// MaxSide bounds each side of a resized field.
const MaxSide = 1024

// ResizeField crops or extends the field to width×height at its origin.
// Sides above MaxSide are rejected and leave the field as it was.
func (s *Simulator) ResizeField(width, height uint) error {
	if width > MaxSide || height > MaxSide {
		return fmt.Errorf("resize to %d×%d: %w (max side %d)", width, height, ErrFieldTooLarge, MaxSide)
	}
	s.state.Resize(int(width), int(height))
	return nil
}

// Translate moves the field so that its top-left cell sits at origin.
func (s *Simulator) Translate(origin core.Point) { s.state.Translate(origin) }

// Seed clears the field and switches on cells at random with the configured
// density. Elementary fields only seed their bottom row, the one the next
// generation is computed from.
func (s *Simulator) Seed(seed int64) {
	s.ClearField()
	r := rng.New(seed)
	vp := s.state.Viewport()
	if s.state.Kind() == core.KindElementary && !vp.Empty() {
		vp = core.NewRect(vp.Origin.X, vp.MaxY()-1, vp.Width(), 1)
	}
	for _, p := range vp.Points() {
		if r.Chance(s.density) {
			s.state.Toggle(p)
		}
	}
}

// MakeSnapshot pushes a deep copy of the current state.
func (s *Simulator) MakeSnapshot() {
	s.snapshots = append(s.snapshots, snapshot{state: s.state.Clone(), generation: s.generation})
}

// SnapshotDepth returns the number of stored snapshots.
func (s *Simulator) SnapshotDepth() int { return len(s.snapshots) }

// LastSnapshot pops the most recent snapshot and makes it the live state.
// It reports false and changes nothing when the stack is empty. A snapshot
// taken under another automaton kind re-selects that kind.
func (s *Simulator) LastSnapshot() (*core.State, bool) {
	n := len(s.snapshots)
	if n == 0 {
		return nil, false
	}
	last := s.snapshots[n-1]
	if kind := last.state.Kind(); kind != s.automaton.Kind() {
		a, err := s.build(kind)
		if err != nil {
			s.logger.Printf("simulator: cannot restore %v snapshot: %v", kind, err)
			return nil, false
		}
		s.automaton = a
	}
	s.snapshots[n-1] = snapshot{}
	s.snapshots = s.snapshots[:n-1]
	s.state = last.state
	s.generation = last.generation
	return s.state, true
}
