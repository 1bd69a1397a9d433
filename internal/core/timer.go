package core

import "time"

// Speed is a preset pace for automatic stepping.
type Speed int

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

// Interval is the time between generations at speed s.
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return time.Second
	case SpeedFast:
		return 200 * time.Millisecond
	default:
		return 500 * time.Millisecond
	}
}

// Next cycles slow → normal → fast → slow.
func (s Speed) Next() Speed { return (s + 1) % 3 }

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "normal"
	}
}

// FixedStep tells the host loop when the next generation is due.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing once per interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the pace. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = SpeedNormal.Interval()
	}
	f.step = interval
}

// ShouldStep reports whether a generation is due, measured on the wall clock.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance feeds delta of elapsed time and reports whether a step is due.
func (f *FixedStep) Advance(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
