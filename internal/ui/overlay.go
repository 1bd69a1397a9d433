//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cellsim/internal/core"
)

// Overlay draws the selection frame and a status line over the field.
type Overlay struct {
	pixel *ebiten.Image

	selection core.Rect
	hasSel    bool
	status    string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// SetSelection frames r, given in lattice coordinates.
func (o *Overlay) SetSelection(r core.Rect, ok bool) {
	o.selection, o.hasSel = r, ok
}

// SetStatus replaces the status line.
func (o *Overlay) SetStatus(s string) { o.status = s }

// Draw paints the overlay for a field whose top-left cell is at origin and
// whose cells are scale pixels wide.
func (o *Overlay) Draw(screen *ebiten.Image, origin core.Point, scale int) {
	if o.hasSel && !o.selection.Empty() {
		local := o.selection.Origin.Sub(origin)
		x, y := float64(local.X*scale), float64(local.Y*scale)
		w, h := float64(o.selection.Width()*scale), float64(o.selection.Height()*scale)
		frame := color.RGBA{R: 80, G: 160, B: 255, A: 255}
		o.fill(screen, x, y, w, 1, frame)
		o.fill(screen, x, y+h-1, w, 1, frame)
		o.fill(screen, x, y, 1, h, frame)
		o.fill(screen, x+w-1, y, 1, h, frame)
	}
	if o.status != "" {
		bounds := screen.Bounds()
		text.Draw(screen, o.status, basicfont.Face7x13, 4, bounds.Dy()-6, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}

func (o *Overlay) fill(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
