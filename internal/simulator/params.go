package simulator

import (
	"maps"
	"strconv"

	"cellsim/internal/core"
)

// parameterSource is implemented by automata exposing their own tunables.
type parameterSource interface {
	Parameters() []core.Parameter
}

// Parameters describes the simulator for display.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	vp := s.state.Viewport()
	automaton := []core.Parameter{
		core.TextParam("kind", "Kind", s.automaton.Kind().String()),
		core.IntParam("generation", "Generation", int(s.generation)),
	}
	if src, ok := s.automaton.(parameterSource); ok {
		automaton = append(automaton, src.Parameters()...)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Automaton", Params: automaton},
		{
			Name: "Field",
			Params: []core.Parameter{
				core.TextParam("origin", "Origin", vp.Origin.String()),
				core.IntParam("w", "Width", vp.Width()),
				core.IntParam("h", "Height", vp.Height()),
				core.IntParam("population", "Population", s.state.Population()),
				core.FloatParam("density", "Seed density", s.density),
			},
		},
		{
			Name:   "History",
			Params: []core.Parameter{core.IntParam("snapshots", "Snapshots", len(s.snapshots))},
		},
	}}
}

// ParameterControls lists the values a HUD may adjust.
func (s *Simulator) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 1, HasMin: true, Max: MaxSide, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 1, HasMin: true, Max: MaxSide, HasMax: true},
		{Key: "density", Label: "Seed density", Type: core.ParamTypeFloat, Step: 0.05, HasMin: true, Max: 1, HasMax: true},
	}
	if p, ok := s.automaton.(core.ParameterControlsProvider); ok {
		controls = append(p.ParameterControls(), controls...)
	}
	return controls
}

// SetIntParameter resizes the field for "w" and "h" and hands any other key
// to the automaton.
func (s *Simulator) SetIntParameter(key string, value int) bool {
	vp := s.state.Viewport()
	switch key {
	case "w":
		return value >= 0 && s.ResizeField(uint(value), uint(vp.Height())) == nil
	case "h":
		return value >= 0 && s.ResizeField(uint(vp.Width()), uint(value)) == nil
	}
	setter, ok := s.automaton.(core.IntParameterSetter)
	if !ok || !setter.SetIntParameter(key, value) {
		return false
	}
	s.remember(key, strconv.Itoa(value))
	return true
}

// remember records an automaton setting in the factory config of the active
// kind so that re-selecting the kind or reverting to a snapshot keeps it.
func (s *Simulator) remember(key, value string) {
	kind := s.automaton.Kind()
	cfg := maps.Clone(s.configs[kind])
	if cfg == nil {
		cfg = map[string]string{}
	}
	cfg[key] = value
	s.configs[kind] = cfg
}

// SetFloatParameter updates the seed density.
func (s *Simulator) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	s.density = value
	return true
}
