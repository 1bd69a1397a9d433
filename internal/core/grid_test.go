package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridReadOutsideIsZero(t *testing.T) {
	g := NewGrid(NewRect(0, 0, 2, 2))
	g.SetRaw(Pt(1, 1), 5)
	assert.Equal(t, int8(0), g.Raw(Pt(-1, 0)))
	assert.Equal(t, int8(0), g.Raw(Pt(2, 2)))
	assert.Equal(t, NewRect(0, 0, 2, 2), g.Viewport(), "reads must not grow")
}

func TestGridWriteOutsideGrowsAndKeepsValues(t *testing.T) {
	g := NewGrid(NewRect(0, 0, 2, 2))
	g.SetRaw(Pt(0, 0), 1)
	g.SetRaw(Pt(1, 1), 2)

	g.SetRaw(Pt(-2, 3), 3)

	require.Equal(t, NewRect(-2, 0, 4, 4), g.Viewport())
	require.Len(t, g.Cells(), 16)
	assert.Equal(t, int8(1), g.Raw(Pt(0, 0)))
	assert.Equal(t, int8(2), g.Raw(Pt(1, 1)))
	assert.Equal(t, int8(3), g.Raw(Pt(-2, 3)))

	g.AddRaw(Pt(4, -1), 2)
	assert.Equal(t, NewRect(-2, -1, 7, 5), g.Viewport())
	assert.Equal(t, int8(2), g.Raw(Pt(4, -1)))
	assert.Equal(t, int8(2), g.Raw(Pt(1, 1)))
}

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid(NewRect(-1, -1, 3, 2))
	i, ok := g.Index(Pt(1, 0))
	require.True(t, ok)
	assert.Equal(t, 5, i)
	_, ok = g.Index(Pt(2, 0))
	assert.False(t, ok)
}

func TestGridResizeCrops(t *testing.T) {
	g := NewGrid(NewRect(0, 0, 3, 3))
	g.SetRaw(Pt(0, 0), 1)
	g.SetRaw(Pt(2, 2), 1)

	g.Resize(2, 4)
	assert.Equal(t, NewRect(0, 0, 2, 4), g.Viewport())
	assert.Len(t, g.Cells(), 8)
	assert.Equal(t, int8(1), g.Raw(Pt(0, 0)))
	assert.Equal(t, int8(0), g.Raw(Pt(2, 2)))

	g.Resize(0, 0)
	assert.Empty(t, g.Cells())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(NewRect(0, 0, 2, 1))
	c := g.Clone()
	c.SetRaw(Pt(1, 0), 1)
	assert.Equal(t, int8(0), g.Raw(Pt(1, 0)))
}

func TestGridTranslateMovesValues(t *testing.T) {
	g := NewGrid(NewRect(0, 0, 2, 1))
	g.SetRaw(Pt(1, 0), 4)
	g.Translate(Pt(10, 10))
	assert.Equal(t, int8(4), g.Raw(Pt(11, 10)))
	assert.Equal(t, int8(0), g.Raw(Pt(1, 0)))
}
