package render

import (
	"image/color"

	"cellsim/internal/core"
)

// fillActivityRGBA converts per-cell liveness into RGBA pixels in buf.
func fillActivityRGBA(buf []byte, alive []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, a := range alive {
		base := i * 4
		if a {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillNeighborRGBA colours packed cells by their stored neighbor count. Live
// cells use on regardless of the count. When the palette is empty dead cells
// are cleared to transparent black.
func fillNeighborRGBA(buf []byte, cells []int8, palette []color.RGBA, on color.RGBA) {
	last := len(palette) - 1
	for i, raw := range cells {
		base := i * 4
		c := core.PackedCell(raw)
		col := color.RGBA{}
		switch {
		case c.IsActive():
			col = on
		case last >= 0:
			col = palette[min(c.Neighbors(), last)]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HeatPalette is the default neighbor-count ramp, index 0 for no neighbors.
var HeatPalette = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x1b, 0x1f, 0x3a, 0xff},
	{0x2e, 0x3a, 0x6e, 0xff},
	{0x7a, 0x4e, 0x9c, 0xff},
	{0xc4, 0x5a, 0x7a, 0xff},
	{0xe8, 0x82, 0x4c, 0xff},
	{0xf2, 0xb6, 0x3c, 0xff},
	{0xf7, 0xe0, 0x5a, 0xff},
	{0xff, 0xff, 0xb0, 0xff},
}

// FillState writes the pixels of s into buf, four bytes per viewport cell.
// With heat set and a KindLife state, dead cells show their neighbor count.
func FillState(buf []byte, s *core.State, on, off color.Color, heat bool) {
	if heat && s.Kind() == core.KindLife {
		r, g, b, a := on.RGBA()
		fillNeighborRGBA(buf, s.Grid().Cells(), HeatPalette, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
		return
	}
	fillActivityRGBA(buf, s.Activity(), on, off)
}
