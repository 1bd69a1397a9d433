package core

import "fmt"

// Point is a lattice coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(x: %d, y: %d)", p.X, p.Y) }

// Size describes the extent of a rectangle. Both sides are non-negative.
type Size struct {
	Width  int
	Height int
}

// NewSize returns a Size, panicking on negative dimensions.
func NewSize(w, h int) Size {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("core: negative size %dx%d", w, h))
	}
	return Size{Width: w, Height: h}
}

// Area returns Width*Height.
func (s Size) Area() int { return s.Width * s.Height }

func (s Size) String() string { return fmt.Sprintf("(w: %d, h: %d)", s.Width, s.Height) }

// Rect is an axis-aligned box of lattice points. Points inside satisfy
// Origin.X <= x < Origin.X+Width and Origin.Y <= y < Origin.Y+Height.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rect from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Origin: Pt(x, y), Size: NewSize(w, h)}
}

func (r Rect) Width() int  { return r.Size.Width }
func (r Rect) Height() int { return r.Size.Height }
func (r Rect) Area() int   { return r.Size.Area() }

// Empty reports whether the rect holds no points.
func (r Rect) Empty() bool { return r.Size.Width == 0 || r.Size.Height == 0 }

// MaxX is the exclusive right bound.
func (r Rect) MaxX() int { return r.Origin.X + r.Size.Width }

// MaxY is the exclusive bottom bound.
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.Height }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.MaxX() && p.Y >= r.Origin.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether every point of o lies inside r. An empty o is
// always contained.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.Origin.X >= r.Origin.X && o.MaxX() <= r.MaxX() &&
		o.Origin.Y >= r.Origin.Y && o.MaxY() <= r.MaxY()
}

// Points returns every point of r in row-major order.
func (r Rect) Points() []Point {
	pts := make([]Point, 0, r.Area())
	for y := r.Origin.Y; y < r.MaxY(); y++ {
		for x := r.Origin.X; x < r.MaxX(); x++ {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

// LeftTop is the point diagonally outside the top-left corner.
func (r Rect) LeftTop() Point { return Point{X: r.Origin.X - 1, Y: r.Origin.Y - 1} }

// RightTop is the point diagonally outside the top-right corner.
func (r Rect) RightTop() Point { return Point{X: r.MaxX(), Y: r.Origin.Y - 1} }

// LeftBottom is the point diagonally outside the bottom-left corner.
func (r Rect) LeftBottom() Point { return Point{X: r.Origin.X - 1, Y: r.MaxY()} }

// RightBottom is the point diagonally outside the bottom-right corner.
func (r Rect) RightBottom() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

// Resizing returns the smallest rect containing both r and p.
func (r Rect) Resizing(p Point) Rect {
	origin := Point{X: min(r.Origin.X, p.X), Y: min(r.Origin.Y, p.Y)}
	return Rect{
		Origin: origin,
		Size: NewSize(
			max(r.MaxX(), p.X+1)-origin.X,
			max(r.MaxY(), p.Y+1)-origin.Y,
		),
	}
}

// Union returns the smallest rect containing r and o. Empty rects are
// ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.Empty():
		return r
	case r.Empty():
		return o
	}
	return r.Resizing(o.Origin).Resizing(Point{X: o.MaxX() - 1, Y: o.MaxY() - 1})
}

// Intersect returns the overlap of r and o, or an empty rect at r's origin.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.Origin.X, o.Origin.X), max(r.Origin.Y, o.Origin.Y)
	x1, y1 := min(r.MaxX(), o.MaxX()), min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{Origin: r.Origin}
	}
	return Rect{Origin: Point{X: x0, Y: y0}, Size: Size{Width: x1 - x0, Height: y1 - y0}}
}

func (r Rect) String() string { return fmt.Sprintf("{ %v, %v }", r.Origin, r.Size) }
