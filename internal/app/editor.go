package app

import (
	"fmt"
	"time"

	"cellsim/internal/core"
	"cellsim/internal/simulator"
)

// Editor turns host gestures into simulator calls: cell edits, rectangular
// selections with a clipboard, snapshots and paced playback. It holds no
// rendering state so it runs the same with or without a window.
type Editor struct {
	sim *simulator.Simulator

	clock    *core.FixedStep
	speed    core.Speed
	paused   bool
	tickOnce bool
	heat     bool
	lastErr  error

	anchor    core.Point
	selection core.Rect
	selecting bool
	hasSel    bool
	clipboard *core.State

	seed int64
}

// NewEditor wraps sim. Playback starts paused at speed.
func NewEditor(sim *simulator.Simulator, speed core.Speed, seed int64) *Editor {
	return &Editor{
		sim:    sim,
		clock:  core.NewFixedStep(speed.Interval()),
		speed:  speed,
		paused: true,
		seed:   seed,
	}
}

// Simulator exposes the wrapped simulator.
func (e *Editor) Simulator() *simulator.Simulator { return e.sim }

// CellAt maps a pixel of the field view to a lattice point.
func (e *Editor) CellAt(px, py, scale int) core.Point {
	if scale <= 0 {
		scale = 1
	}
	return e.sim.State().Viewport().Origin.Add(core.Pt(floorDiv(px, scale), floorDiv(py, scale)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// Toggle flips one cell.
func (e *Editor) Toggle(p core.Point) { e.sim.SwitchValue(p) }

// BeginSelection starts a drag at p.
func (e *Editor) BeginSelection(p core.Point) {
	e.anchor, e.selecting = p, true
	e.selection, e.hasSel = core.Rect{Origin: p, Size: core.NewSize(1, 1)}, true
}

// ExtendSelection moves the dragged corner to p.
func (e *Editor) ExtendSelection(p core.Point) {
	if !e.selecting {
		return
	}
	e.selection = core.Rect{Origin: e.anchor, Size: core.NewSize(1, 1)}.Resizing(p)
}

// EndSelection finishes the drag, keeping the selected rect.
func (e *Editor) EndSelection() { e.selecting = false }

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() { e.hasSel, e.selecting = false, false }

// Selection returns the selected rect, if any.
func (e *Editor) Selection() (core.Rect, bool) { return e.selection, e.hasSel }

// Copy stores the selected cells on the clipboard.
func (e *Editor) Copy() bool {
	if !e.hasSel {
		return false
	}
	e.clipboard = e.sim.SubStateInRect(e.selection)
	return true
}

// Cut copies the selection and clears it on the field.
func (e *Editor) Cut() bool {
	if !e.Copy() {
		return false
	}
	e.sim.ClearFieldInRect(e.selection)
	return true
}

// Paste writes the clipboard with its top-left corner at p and selects the
// pasted area.
func (e *Editor) Paste(p core.Point) bool {
	if e.clipboard == nil {
		return false
	}
	r := core.Rect{Origin: p, Size: e.clipboard.Viewport().Size}
	e.sim.InsertSubState(r, e.clipboard)
	e.selection, e.hasSel = r, true
	return true
}

// Erase clears the selection, or the whole field without one.
func (e *Editor) Erase() {
	if e.hasSel {
		e.sim.ClearFieldInRect(e.selection)
		return
	}
	e.sim.ClearField()
}

// Snapshot pushes the current field onto the undo stack.
func (e *Editor) Snapshot() { e.sim.MakeSnapshot() }

// Revert restores the latest snapshot.
func (e *Editor) Revert() bool {
	_, ok := e.sim.LastSnapshot()
	if ok {
		e.ClearSelection()
	}
	return ok
}

// SwitchKind cycles to the next registered automaton on a fresh field.
func (e *Editor) SwitchKind() error {
	kinds := core.Kinds()
	next := kinds[0]
	for i, k := range kinds {
		if k == e.sim.Kind() {
			next = kinds[(i+1)%len(kinds)]
		}
	}
	e.ClearSelection()
	e.paused = true
	return e.sim.SelectAutomaton(next)
}

// Reseed fills the field at random. A zero seed draws a fresh one from the
// clock.
func (e *Editor) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.seed = seed
	e.sim.Seed(seed)
}

// TogglePause starts or stops playback.
func (e *Editor) TogglePause() { e.paused = !e.paused }

// Paused reports whether playback is stopped.
func (e *Editor) Paused() bool { return e.paused }

// RequestStep schedules a single generation for the next tick.
func (e *Editor) RequestStep() { e.tickOnce = true }

// CycleSpeed moves to the next playback speed.
func (e *Editor) CycleSpeed() {
	e.speed = e.speed.Next()
	e.clock.SetInterval(e.speed.Interval())
}

// ToggleHeat switches between plain and neighbor-count rendering.
func (e *Editor) ToggleHeat() { e.heat = !e.heat }

// Heat reports whether neighbor counts should be rendered.
func (e *Editor) Heat() bool { return e.heat }

// Tick advances playback against the wall clock.
func (e *Editor) Tick() { e.advance(e.clock.ShouldStep()) }

// TickAfter advances playback as if delta had elapsed.
func (e *Editor) TickAfter(delta time.Duration) { e.advance(e.clock.Advance(delta)) }

func (e *Editor) advance(due bool) {
	if !(due && !e.paused) && !e.tickOnce {
		return
	}
	e.tickOnce = false
	if _, err := e.sim.Simulate(1); err != nil {
		e.lastErr = err
		e.paused = true
		return
	}
	e.lastErr = nil
}

// Status summarises the editor for the status line.
func (e *Editor) Status() string {
	state := "playing"
	if e.paused {
		state = "paused"
	}
	s := fmt.Sprintf("%s gen %d | %s %s | snapshots %d", e.sim.Kind(), e.sim.Generation(), state, e.speed, e.sim.SnapshotDepth())
	if e.lastErr != nil {
		s += " | " + e.lastErr.Error()
	}
	return s
}
