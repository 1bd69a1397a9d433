package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellsim/internal/core"
	"cellsim/pkg/rng"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(3, 3)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for _, p := range []core.Point{core.Pt(1, 0), core.Pt(1, 1), core.Pt(1, 2)} {
		s.Toggle(p)
	}

	if err := life.Step(s); err != nil {
		t.Fatal(err)
	}

	expects := map[core.Point]bool{
		core.Pt(0, 1): true,
		core.Pt(1, 1): true,
		core.Pt(2, 1): true,
	}
	for _, p := range s.Viewport().Points() {
		if alive := s.IsActive(p); alive != expects[p] {
			t.Fatalf("cell %v alive=%v, expected %v", p, alive, expects[p])
		}
	}

	if err := life.Step(s); err != nil {
		t.Fatal(err)
	}

	expects = map[core.Point]bool{
		core.Pt(1, 0): true,
		core.Pt(1, 1): true,
		core.Pt(1, 2): true,
	}
	for _, p := range s.Viewport().Points() {
		if alive := s.IsActive(p); alive != expects[p] {
			t.Fatalf("after second step cell %v alive=%v, expected %v", p, alive, expects[p])
		}
	}
}

func TestGliderTravels(t *testing.T) {
	life := New(6, 6)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	glider := []core.Point{core.Pt(1, 0), core.Pt(2, 1), core.Pt(0, 2), core.Pt(1, 2), core.Pt(2, 2)}
	for _, p := range glider {
		s.Toggle(p)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, life.Step(s))
	}
	want := make([]core.Point, len(glider))
	for i, p := range glider {
		want[i] = p.Add(core.Pt(2, 2))
	}
	assert.ElementsMatch(t, want, s.Alive())
	requireCounts(t, s)
}

func TestBlockIsStill(t *testing.T) {
	life := New(4, 4)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for _, p := range []core.Point{core.Pt(1, 1), core.Pt(2, 1), core.Pt(1, 2), core.Pt(2, 2)} {
		s.Toggle(p)
	}
	before := s.Clone()
	require.NoError(t, life.Step(s))
	assert.True(t, before.Equal(s))
}

func TestLoneCellDies(t *testing.T) {
	life := New(5, 5)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	s.Toggle(core.Pt(2, 2))
	require.NoError(t, life.Step(s))
	assert.Zero(t, s.Population())
	for _, raw := range s.Grid().Cells() {
		require.Zero(t, raw)
	}
}

func TestCountsStayExactUnderRandomEdits(t *testing.T) {
	life := New(12, 12)
	rand := rng.New(2024)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for round := 0; round < 30; round++ {
		for i := 0; i < 15; i++ {
			s.Toggle(rand.PointIn(s.Viewport()))
		}
		require.NoError(t, life.Step(s))
		requireCounts(t, s)
	}
}

func TestStepMatchesNaiveRule(t *testing.T) {
	life := New(16, 16)
	rand := rng.New(11)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for _, p := range s.Viewport().Points() {
		if rand.Chance(0.35) {
			s.Toggle(p)
		}
	}
	for gen := 0; gen < 10; gen++ {
		want := naiveStep(s)
		require.NoError(t, life.Step(s))
		require.ElementsMatch(t, want, s.Alive(), "generation %d", gen+1)
	}
}

func TestStepAfterCropOnEdge(t *testing.T) {
	life := New(5, 5)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for _, p := range []core.Point{core.Pt(2, 2), core.Pt(3, 2), core.Pt(4, 2)} {
		s.Toggle(p)
	}
	s.Resize(5, 5)
	require.True(t, s.IsActive(core.Pt(4, 2)), "crop keeps the edge cell")

	require.NoError(t, life.Step(s))
	assert.Equal(t, []core.Point{core.Pt(3, 1), core.Pt(3, 2), core.Pt(3, 3)}, s.Alive())
	requireCounts(t, s)

	require.NoError(t, life.Step(s))
	assert.Equal(t, []core.Point{core.Pt(2, 2), core.Pt(3, 2), core.Pt(4, 2)}, s.Alive())
	requireCounts(t, s)
}

func TestCountsStayExactUnderCropsAndPastes(t *testing.T) {
	life := New(12, 12)
	rand := rng.New(77)
	s := core.NewState(core.KindLife, life.DefaultViewport())
	for round := 0; round < 60; round++ {
		for i := 0; i < 10; i++ {
			s.Toggle(rand.PointIn(s.Viewport()))
		}
		switch rand.IntN(3) {
		case 0:
			s.Resize(3+rand.IntN(12), 3+rand.IntN(12))
		case 1:
			vp := s.Viewport()
			sub := s.Region(core.Rect{Origin: rand.PointIn(vp), Size: core.NewSize(1+rand.IntN(4), 1+rand.IntN(4))})
			edge := core.Pt(vp.MaxX()-1-rand.IntN(2), vp.Origin.Y+rand.IntN(vp.Height()))
			s.SetRegion(core.Rect{Origin: edge, Size: sub.Viewport().Size}, sub)
		}
		want := naiveStep(s)
		require.NoError(t, life.Step(s))
		require.ElementsMatch(t, want, s.Alive(), "round %d", round)
		requireCounts(t, s)
	}
}

func TestStepRejectsElementaryState(t *testing.T) {
	s := core.NewState(core.KindElementary, core.NewRect(0, 0, 3, 1))
	assert.ErrorIs(t, New(3, 3).Step(s), core.ErrKindMismatch)
}

func TestFromMap(t *testing.T) {
	assert.Equal(t, Config{Width: 15, Height: 15}, FromMap(nil))
	assert.Equal(t, Config{Width: 4, Height: 15}, FromMap(map[string]string{"w": "4", "h": "-2"}))
}

// naiveStep evaluates B3/S23 from liveness alone over the viewport grown by
// one cell on every side.
func naiveStep(s *core.State) []core.Point {
	vp := s.Viewport()
	area := core.NewRect(vp.Origin.X-1, vp.Origin.Y-1, vp.Width()+2, vp.Height()+2)
	var alive []core.Point
	for _, p := range area.Points() {
		n := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && s.IsActive(core.Pt(p.X+dx, p.Y+dy)) {
					n++
				}
			}
		}
		if n == 3 || (n == 2 && s.IsActive(p)) {
			alive = append(alive, p)
		}
	}
	return alive
}

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
		got := core.PackedCell(s.At(p).Raw())
		require.Equal(t, want, got.Neighbors(), "neighbors of %v", p)
		require.Zero(t, got.Raw()&^(core.PackedAliveBit|core.PackedCountMask), "stray bits at %v", p)
		if got.IsActive() {
			require.True(t, vp.ContainsRect(core.NewRect(p.X-1, p.Y-1, 3, 3)), "live %v on the edge of %v", p, vp)
		}
	}
}
