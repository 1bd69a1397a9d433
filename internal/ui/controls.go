package ui

import (
	"math"
	"strconv"

	"cellsim/internal/core"
)

// Source is what the HUD reads and adjusts. The simulator implements it.
type Source interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// adjust returns the value one step from current in direction, clamped to the
// control's bounds, and whether it differs from current.
func adjust(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-current) > 1e-9
}

// apply pushes value through the matching setter of src.
func apply(src Source, ctrl core.ParameterControl, value float64) bool {
	switch ctrl.Type {
	case core.ParamTypeInt:
		return src.SetIntParameter(ctrl.Key, int(value))
	case core.ParamTypeFloat:
		return src.SetFloatParameter(ctrl.Key, value)
	}
	return false
}

// controlValue parses the current value of ctrl out of snap.
func controlValue(snap core.ParameterSnapshot, ctrl core.ParameterControl) (float64, bool) {
	p, ok := snap.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	precision := 2
	if ctrl.Step >= 0.1 {
		precision = 1
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Step nudges the control key of src by one step in direction and reports
// whether anything changed.
func Step(src Source, key string, direction int) bool {
	for _, ctrl := range src.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		current, ok := controlValue(src.Parameters(), ctrl)
		if !ok {
			return false
		}
		target, changed := adjust(ctrl, current, direction)
		if !changed {
			return false
		}
		return apply(src, ctrl, target)
	}
	return false
}
