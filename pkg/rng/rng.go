package rng

import (
	"math/rand/v2"

	"cellsim/internal/core"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// PointIn returns a uniformly chosen point of rect. An empty rect yields its
// origin.
func (r *RNG) PointIn(rect core.Rect) core.Point {
	if rect.Empty() {
		return rect.Origin
	}
	return core.Pt(rect.Origin.X+r.r.IntN(rect.Width()), rect.Origin.Y+r.r.IntN(rect.Height()))
}

// RectNear returns a rect whose origin lies within spread of the lattice
// origin and whose sides are at most maxSide.
func (r *RNG) RectNear(spread, maxSide int) core.Rect {
	return core.NewRect(
		r.r.IntN(2*spread+1)-spread,
		r.r.IntN(2*spread+1)-spread,
		r.IntN(maxSide+1),
		r.IntN(maxSide+1),
	)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
