package core

import (
	"slices"
	"strings"
)

// State is the lattice of one automaton kind. The kind decides how the raw
// byte of each cell is interpreted: PlainCell for KindElementary and
// PackedCell for KindLife.
type State struct {
	kind Kind
	grid *Grid
}

// NewState returns an all-dead state of the given kind covering viewport.
func NewState(kind Kind, viewport Rect) *State {
	return &State{kind: kind, grid: NewGrid(viewport)}
}

func (s *State) Kind() Kind { return s.kind }

func (s *State) Viewport() Rect { return s.grid.Viewport() }

// Grid exposes the raw storage for stepping loops.
func (s *State) Grid() *Grid { return s.grid }

// SetViewport conforms the state to r, keeping the cells both regions share.
func (s *State) SetViewport(r Rect) {
	if r == s.grid.Viewport() {
		return
	}
	s.grid.Remap(r)
	s.recount()
}

func (s *State) cell(raw int8) Cell {
	if s.kind == KindLife {
		return PackedCell(raw)
	}
	return PlainCell(raw)
}

// At returns the cell at p. Points outside the viewport read as dead.
func (s *State) At(p Point) Cell { return s.cell(s.grid.Raw(p)) }

// IsActive reports whether the cell at p is alive.
func (s *State) IsActive(p Point) bool { return s.At(p).IsActive() }

// Set stores c at p, growing the viewport to include p. This is a raw write:
// on a KindLife state it does not touch the neighbors, use Toggle for edits.
func (s *State) Set(p Point, c Cell) { s.grid.SetRaw(p, c.Raw()) }

// Toggle flips the liveness at p. On KindLife the neighbor counts of the
// eight surrounding cells follow.
func (s *State) Toggle(p Point) {
	raw := s.grid.Raw(p)
	if s.kind != KindLife {
		s.grid.SetRaw(p, (raw^1)&1)
		return
	}
	if PackedCell(raw).IsActive() {
		s.grid.SetRaw(p, raw&^PackedAliveBit)
		s.AdjustVicinity(p, -1)
		return
	}
	s.grid.SetRaw(p, raw|PackedAliveBit)
	s.AdjustVicinity(p, 1)
}

var vicinity = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// AdjustVicinity adds delta to the stored count of each of the eight cells
// around p, growing the viewport where a neighbor falls outside it.
func (s *State) AdjustVicinity(p Point, delta int8) {
	for _, d := range vicinity {
		s.grid.AddRaw(p.Add(d), delta)
	}
}

// Region extracts the cells inside r as a new state whose viewport is r.
// Points of r outside the viewport come back dead.
func (s *State) Region(r Rect) *State {
	out := &State{kind: s.kind, grid: s.grid.Crop(r)}
	out.recount()
	return out
}

// SetRegion makes the liveness inside r match sub. When sub's viewport is
// not r, a copy of sub is moved to r's origin and cropped or extended to r's
// size first; sub itself is never modified and may be of either kind. Every
// change goes through Toggle so that neighbor counts stay exact.
func (s *State) SetRegion(r Rect, sub *State) {
	src := sub
	if sub.Viewport() != r {
		src = sub.Clone()
		src.Translate(r.Origin)
		src.Resize(r.Width(), r.Height())
	}
	for y := r.Origin.Y; y < r.MaxY(); y++ {
		for x := r.Origin.X; x < r.MaxX(); x++ {
			p := Point{X: x, Y: y}
			if s.IsActive(p) != src.IsActive(p) {
				s.Toggle(p)
			}
		}
	}
}

// Resize crops or extends the state to w×h at the current origin. Cells that
// fall outside are dropped.
func (s *State) Resize(w, h int) {
	s.grid.Resize(w, h)
	s.recount()
}

// CoverVicinity grows a KindLife viewport until every live cell has its eight
// neighbors stored, then recounts. Edits keep this true on their own; crops
// through Resize or SetViewport can leave live cells on the edge.
func (s *State) CoverVicinity() {
	if s.kind != KindLife {
		return
	}
	vp := s.grid.Viewport()
	need := vp
	for i, raw := range s.grid.Cells() {
		if raw&PackedAliveBit == 0 {
			continue
		}
		p := vp.Origin.Add(Point{X: i % vp.Width(), Y: i / vp.Width()})
		need = need.Union(Rect{Origin: p.Add(Point{X: -1, Y: -1}), Size: NewSize(3, 3)})
	}
	s.SetViewport(need)
}

// Translate moves the viewport origin. Cells keep their offsets relative to
// the origin, so the whole pattern moves with it.
func (s *State) Translate(origin Point) { s.grid.Translate(origin) }

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{kind: s.kind, grid: s.grid.Clone()}
}

// Clear kills every cell without changing the viewport.
func (s *State) Clear() { s.grid.Clear() }

// recount rebuilds packed neighbor counts from liveness after cells were
// dropped wholesale. The viewport edge is treated as a dead border.
func (s *State) recount() {
	if s.kind != KindLife {
		return
	}
	vp := s.grid.Viewport()
	cells := s.grid.Cells()
	for i, raw := range cells {
		cells[i] = raw & PackedAliveBit
	}
	for y := vp.Origin.Y; y < vp.MaxY(); y++ {
		for x := vp.Origin.X; x < vp.MaxX(); x++ {
			p := Point{X: x, Y: y}
			if s.grid.Raw(p)&PackedAliveBit == 0 {
				continue
			}
			for _, d := range vicinity {
				if i, ok := s.grid.Index(p.Add(d)); ok {
					cells[i]++
				}
			}
		}
	}
}

// Population counts the live cells.
func (s *State) Population() int {
	n := 0
	for _, raw := range s.grid.Cells() {
		if s.cell(raw).IsActive() {
			n++
		}
	}
	return n
}

// Activity returns the liveness of every viewport cell in row-major order.
func (s *State) Activity() []bool {
	cells := s.grid.Cells()
	out := make([]bool, len(cells))
	for i, raw := range cells {
		out[i] = s.cell(raw).IsActive()
	}
	return out
}

// Alive lists the live points in row-major order.
func (s *State) Alive() []Point {
	var pts []Point
	vp := s.grid.Viewport()
	for y := vp.Origin.Y; y < vp.MaxY(); y++ {
		for x := vp.Origin.X; x < vp.MaxX(); x++ {
			if p := (Point{X: x, Y: y}); s.IsActive(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// Equal reports whether both states have the same kind, viewport and raw
// cells.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.kind == o.kind &&
		s.Viewport() == o.Viewport() &&
		slices.Equal(s.grid.Cells(), o.grid.Cells())
}

// String renders the viewport one row per line, '*' for live cells and '_'
// for dead ones.
func (s *State) String() string {
	vp := s.grid.Viewport()
	var b strings.Builder
	for y := vp.Origin.Y; y < vp.MaxY(); y++ {
		if y > vp.Origin.Y {
			b.WriteByte('\n')
		}
		for x := vp.Origin.X; x < vp.MaxX(); x++ {
			if s.IsActive(Point{X: x, Y: y}) {
				b.WriteByte('*')
			} else {
				b.WriteByte('_')
			}
		}
	}
	return b.String()
}
