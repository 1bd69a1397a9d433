//go:build ebiten

package render

import (
	"image/color"

	"cellsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a state into an RGBA image, reallocating whenever the
// viewport changes size.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns an empty painter; the image is sized on first Blit.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(size core.Size) {
	if gp.img != nil && gp.size == size {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
		gp.img = nil
	}
	gp.size = size
	gp.buf = make([]byte, 4*size.Area())
	if size.Area() > 0 {
		gp.img = ebiten.NewImage(size.Width, size.Height)
	}
}

// Blit draws s onto dst with every cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, s *core.State, on, off color.Color, scale int, heat bool) {
	gp.ensure(s.Viewport().Size)
	if gp.img == nil {
		return
	}
	FillState(gp.buf, s, on, off, heat)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() core.Size { return gp.size }
