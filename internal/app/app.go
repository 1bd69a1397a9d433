//go:build ebiten

package app

import (
	"image/color"

	"cellsim/internal/render"
	"cellsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an Editor to the ebiten.Game interface.
type Game struct {
	editor  *Editor
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided editor.
func New(editor *Editor, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		editor:   editor,
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(editor.Simulator(), hudWidth),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		scale:    scale,
	}
}

func (g *Game) fieldWidth() int {
	return g.editor.Simulator().State().Viewport().Width() * g.scale
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	e := g.editor
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		e.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		e.RequestStep()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		e.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		e.ToggleHeat()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.Reseed(e.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.Reseed(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		e.Snapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		e.Revert()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		if err := e.SwitchKind(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.Copy()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		e.Cut()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		mx, my := ebiten.CursorPosition()
		e.Paste(e.CellAt(mx, my, g.scale))
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		e.Erase()
	}

	g.hud.Update(g.fieldWidth())
	g.handleMouse()
	e.Tick()

	sel, ok := e.Selection()
	g.overlay.SetSelection(sel, ok)
	g.overlay.SetStatus(e.Status())
	return nil
}

func (g *Game) handleMouse() {
	e := g.editor
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return
	}
	cell := e.CellAt(mx, my, g.scale)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		e.ClearSelection()
		e.Toggle(cell)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		e.BeginSelection(cell)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		e.ExtendSelection(cell)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		e.EndSelection()
	}
}

// Draw renders the field, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	state := g.editor.Simulator().State()
	g.painter.Blit(screen, state, g.onColor, g.offColor, g.scale, g.editor.Heat())
	g.overlay.Draw(screen, state.Viewport().Origin, g.scale)
	g.hud.Draw(screen, g.fieldWidth())
}

// Layout follows the window; the field grows inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
