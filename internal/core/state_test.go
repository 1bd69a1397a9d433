package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellsim/internal/core"
	"cellsim/pkg/rng"
)

// requireCounts recomputes every neighbor count from liveness and compares it
// with the packed value. It also checks that no live cell touches the
// viewport edge, i.e. every neighborhood is materialised.
func requireCounts(t *testing.T, s *core.State) {
	t.Helper()
	vp := s.Viewport()
	require.Len(t, s.Grid().Cells(), vp.Area())
	for _, p := range vp.Points() {
		want := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && s.IsActive(core.Pt(p.X+dx, p.Y+dy)) {
					want++
				}
			}
		}
		cell := core.PackedCell(s.At(p).Raw())
		require.Equal(t, want, cell.Neighbors(), "neighbors of %v", p)
		require.Zero(t, cell.Raw()&^(core.PackedAliveBit|core.PackedCountMask), "stray bits at %v", p)
		if cell.IsActive() {
			require.True(t, vp.ContainsRect(core.NewRect(p.X-1, p.Y-1, 3, 3)), "live %v on the edge of %v", p, vp)
		}
	}
}

func TestToggleTwiceRestoresCounts(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 5, 5))
	s.Toggle(core.Pt(2, 2))
	s.Toggle(core.Pt(3, 2))
	before := s.Clone()

	s.Toggle(core.Pt(2, 3))
	assert.True(t, s.IsActive(core.Pt(2, 3)))
	assert.Equal(t, 3, core.PackedCell(s.At(core.Pt(3, 3)).Raw()).Neighbors())
	s.Toggle(core.Pt(2, 3))

	assert.True(t, before.Equal(s))
	requireCounts(t, s)
}

func TestToggleOnEdgeGrowsViewport(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 3, 3))
	s.Toggle(core.Pt(0, 0))
	assert.Equal(t, core.NewRect(-1, -1, 4, 4), s.Viewport())
	requireCounts(t, s)

	s.Toggle(core.Pt(5, 5))
	assert.Equal(t, core.NewRect(-1, -1, 8, 8), s.Viewport())
	requireCounts(t, s)
}

func TestElementaryToggleDoesNotTouchNeighbors(t *testing.T) {
	s := core.NewState(core.KindElementary, core.NewRect(0, 0, 3, 1))
	s.Toggle(core.Pt(1, 0))
	assert.Equal(t, "_*_", s.String())
	assert.Equal(t, core.NewRect(0, 0, 3, 1), s.Viewport())
	s.Toggle(core.Pt(1, 0))
	assert.Equal(t, 0, s.Population())
}

func TestSetOutsideGrows(t *testing.T) {
	s := core.NewState(core.KindElementary, core.NewRect(0, 0, 1, 1))
	s.Set(core.Pt(2, 0), core.PlainCell(1))
	assert.Equal(t, core.NewRect(0, 0, 3, 1), s.Viewport())
	assert.Equal(t, "__*", s.String())
	assert.False(t, s.IsActive(core.Pt(100, 100)))
}

func TestRandomTogglesKeepCounts(t *testing.T) {
	rand := rng.New(42)
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 8, 8))
	for i := 0; i < 500; i++ {
		s.Toggle(rand.PointIn(core.NewRect(-4, -4, 16, 16)))
	}
	requireCounts(t, s)
}

func TestRegionRoundTrip(t *testing.T) {
	rand := rng.New(3)
	for _, kind := range []core.Kind{core.KindElementary, core.KindLife} {
		s := core.NewState(kind, core.NewRect(0, 0, 10, 10))
		for i := 0; i < 60; i++ {
			s.Toggle(rand.PointIn(s.Viewport()))
		}
		for i := 0; i < 50; i++ {
			r := rand.RectNear(8, 8)
			before := s.Activity()
			vp := s.Viewport()

			s.SetRegion(r, s.Region(r))

			require.Equal(t, vp, s.Viewport(), "%v: round trip on %v grew the field", kind, r)
			require.Equal(t, before, s.Activity(), "%v: round trip on %v", kind, r)
		}
		if kind == core.KindLife {
			requireCounts(t, s)
		}
	}
}

func TestRegionOutsideReadsDead(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 3, 3))
	s.Toggle(core.Pt(1, 1))
	sub := s.Region(core.NewRect(1, 1, 5, 5))
	assert.Equal(t, core.NewRect(1, 1, 5, 5), sub.Viewport())
	assert.Equal(t, []core.Point{core.Pt(1, 1)}, sub.Alive())

	sub.Toggle(core.Pt(3, 3))
	assert.False(t, s.IsActive(core.Pt(3, 3)), "regions are copies")
}

func TestSetRegionMovesPattern(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 12, 12))
	for _, p := range []core.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		s.Toggle(p)
	}
	glider := s.Region(core.NewRect(0, 0, 3, 3))

	s.SetRegion(core.NewRect(6, 6, 3, 3), glider)

	assert.True(t, s.IsActive(core.Pt(7, 6)))
	assert.True(t, s.IsActive(core.Pt(8, 8)))
	assert.Equal(t, 10, s.Population())
	assert.Equal(t, core.NewRect(0, 0, 3, 3), glider.Viewport(), "source must not be conformed in place")
	requireCounts(t, s)
}

func TestSetRegionAcrossKinds(t *testing.T) {
	row := core.NewState(core.KindElementary, core.NewRect(0, 0, 3, 1))
	row.Toggle(core.Pt(0, 0))
	row.Toggle(core.Pt(2, 0))

	s := core.NewState(core.KindLife, core.NewRect(0, 0, 6, 6))
	s.SetRegion(core.NewRect(2, 2, 3, 1), row)
	assert.Equal(t, []core.Point{core.Pt(2, 2), core.Pt(4, 2)}, s.Alive())
	requireCounts(t, s)
}

func TestResizeKeepsInsideCells(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 10, 10))
	s.Toggle(core.Pt(2, 2))
	s.Toggle(core.Pt(7, 7))

	s.Resize(5, 5)
	assert.Equal(t, core.NewRect(0, 0, 5, 5), s.Viewport())
	assert.Equal(t, []core.Point{core.Pt(2, 2)}, s.Alive())
	requireCounts(t, s)

	s.Resize(20, 1)
	assert.Len(t, s.Grid().Cells(), 20)
	assert.Equal(t, 0, s.Population())
}

func TestCoverVicinityAfterCrop(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 10, 10))
	for _, p := range []core.Point{core.Pt(2, 2), core.Pt(3, 2), core.Pt(4, 2)} {
		s.Toggle(p)
	}
	s.Resize(5, 5)
	require.Equal(t, core.NewRect(0, 0, 5, 5), s.Viewport())

	s.CoverVicinity()
	assert.Equal(t, core.NewRect(0, 0, 6, 5), s.Viewport())
	assert.Equal(t, []core.Point{core.Pt(2, 2), core.Pt(3, 2), core.Pt(4, 2)}, s.Alive())
	requireCounts(t, s)

	before := s.Clone()
	s.CoverVicinity()
	assert.True(t, before.Equal(s), "covered state must not change")
}

func TestCoverVicinityIgnoresElementary(t *testing.T) {
	s := core.NewState(core.KindElementary, core.NewRect(0, 0, 3, 1))
	s.Toggle(core.Pt(2, 0))
	s.CoverVicinity()
	assert.Equal(t, core.NewRect(0, 0, 3, 1), s.Viewport())
}

func TestCloneIsDeep(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 4, 4))
	s.Toggle(core.Pt(1, 1))
	c := s.Clone()
	c.Toggle(core.Pt(2, 2))
	c.Toggle(core.Pt(1, 1))

	assert.Equal(t, []core.Point{core.Pt(1, 1)}, s.Alive())
	assert.False(t, s.Equal(c))
	requireCounts(t, s)
}

func TestTranslate(t *testing.T) {
	s := core.NewState(core.KindElementary, core.NewRect(0, 0, 3, 1))
	s.Toggle(core.Pt(0, 0))
	s.Translate(core.Pt(-5, 2))
	assert.Equal(t, core.NewRect(-5, 2, 3, 1), s.Viewport())
	assert.True(t, s.IsActive(core.Pt(-5, 2)))
}

func TestStringRendering(t *testing.T) {
	s := core.NewState(core.KindLife, core.NewRect(0, 0, 3, 2))
	s.Toggle(core.Pt(1, 1))
	// The toggle grew the field to hold the neighborhood.
	assert.Equal(t, "___\n_*_\n___", s.String())
}
