//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cellsim/internal/core"
)

// HUD renders the parameter panel to the right of the field.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width is the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameters and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.syncControls(h.src.ParameterControls())
	h.handleInput()
}

// syncControls rebuilds the control list when the automaton changed the set
// of adjustable keys.
func (h *HUD) syncControls(controls []core.ParameterControl) {
	same := len(controls) == len(h.controls)
	for i := 0; same && i < len(controls); i++ {
		same = controls[i].Key == h.controls[i].control.Key
	}
	if !same {
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i].control = ctrl
		}
		h.layoutControls()
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.current, state.hasValue = controlValue(h.snapshot, state.control)
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pt.In(state.minusRect):
			Step(h.src, state.control.Key, -1)
		case pt.In(state.plusRect):
			Step(h.src, state.control.Key, 1)
		default:
			continue
		}
		return
	}
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX && x < h.panelOffsetX+h.width
}

// Draw paints the panel at offsetX, spanning the screen height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawControls()
	h.drawReadouts(y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Controls", face, panelPadding, panelPadding+headerBaseline, labelColor)
	bottom := controlsTop
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, labelColor)

		value, col := "--", dimColor
		if state.hasValue {
			value, col = formatValue(state.control, state.current), labelColor
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), state.top+labelBaseline, col)

		_, canDown := adjust(state.control, state.current, -1)
		_, canUp := adjust(state.control, state.current, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
		bottom = state.top + lineHeight
	}
	return bottom
}

// drawReadouts lists the non-adjustable parameters below the controls.
func (h *HUD) drawReadouts(top int) {
	face := basicfont.Face7x13
	y := top + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, labelColor)
		y += readoutSpacing
		for _, p := range group.Params {
			if slices.ContainsFunc(h.controls, func(c hudControlState) bool { return c.control.Key == p.Key }) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding*2, y, dimColor)
			y += readoutSpacing
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control  core.ParameterControl
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutSpacing = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
