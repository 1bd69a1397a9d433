package core

import "fmt"

// Grid stores raw cell bytes for the points of a viewport in row-major order.
// Reads outside the viewport see zero; writes outside grow it first.
type Grid struct {
	viewport Rect
	data     []int8
}

// NewGrid allocates a zeroed grid covering viewport.
func NewGrid(viewport Rect) *Grid {
	return &Grid{viewport: viewport, data: make([]int8, viewport.Area())}
}

// Viewport returns the materialised region.
func (g *Grid) Viewport() Rect { return g.viewport }

// Cells exposes the backing slice so callers can scan values directly.
func (g *Grid) Cells() []int8 { return g.data }

// Index returns the slice index for p, or false if p is outside the viewport.
func (g *Grid) Index(p Point) (int, bool) {
	if !g.viewport.Contains(p) {
		return 0, false
	}
	local := p.Sub(g.viewport.Origin)
	return local.Y*g.viewport.Size.Width + local.X, true
}

// Raw returns the byte stored at p; zero outside the viewport.
func (g *Grid) Raw(p Point) int8 {
	i, ok := g.Index(p)
	if !ok {
		return 0
	}
	return g.data[i]
}

// SetRaw stores v at p, growing the viewport if needed.
func (g *Grid) SetRaw(p Point, v int8) {
	g.data[g.mustIndex(p)] = v
}

// AddRaw adds d to the byte at p, growing the viewport if needed.
func (g *Grid) AddRaw(p Point, d int8) {
	g.data[g.mustIndex(p)] += d
}

func (g *Grid) mustIndex(p Point) int {
	if !g.viewport.Contains(p) {
		g.Remap(g.viewport.Resizing(p))
	}
	i, ok := g.Index(p)
	if !ok {
		panic(fmt.Sprintf("core: %v outside %v after growth", p, g.viewport))
	}
	return i
}

// Crop returns a new grid covering exactly r. Values at points inside both
// viewports are copied; the rest start at zero.
func (g *Grid) Crop(r Rect) *Grid {
	out := NewGrid(r)
	overlap := g.viewport.Intersect(r)
	if overlap.Empty() {
		return out
	}
	w := overlap.Width()
	for y := overlap.Origin.Y; y < overlap.MaxY(); y++ {
		src, _ := g.Index(Point{X: overlap.Origin.X, Y: y})
		dst, _ := out.Index(Point{X: overlap.Origin.X, Y: y})
		copy(out.data[dst:dst+w], g.data[src:src+w])
	}
	return out
}

// Remap reallocates the grid to cover exactly to, keeping values at points
// present in both viewports and dropping the rest. Apart from explicit
// resizes this is only reached through writes outside the viewport.
func (g *Grid) Remap(to Rect) {
	if to == g.viewport {
		return
	}
	*g = *g.Crop(to)
	g.mustConsistent()
}

// Resize crops or extends the grid to w×h keeping the current origin.
func (g *Grid) Resize(w, h int) {
	g.Remap(Rect{Origin: g.viewport.Origin, Size: NewSize(w, h)})
}

// Translate moves the viewport to origin without touching the stored values.
func (g *Grid) Translate(origin Point) {
	g.viewport.Origin = origin
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	data := make([]int8, len(g.data))
	copy(data, g.data)
	return &Grid{viewport: g.viewport, data: data}
}

// Clear zeroes every value.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g *Grid) mustConsistent() {
	if len(g.data) != g.viewport.Area() {
		panic(fmt.Sprintf("core: grid holds %d cells for viewport %v", len(g.data), g.viewport))
	}
}
