//go:build !ebiten

package ui

import "cellsim/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetSelection is a no-op in headless builds.
func (o *Overlay) SetSelection(core.Rect, bool) {}

// SetStatus is a no-op in headless builds.
func (o *Overlay) SetStatus(string) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Point, int) {}
