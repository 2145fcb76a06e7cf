//go:build !ebiten

package ui

import "sandsim/internal/sandbox"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*sandbox.World, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetBrush is a no-op in headless builds.
func (o *Overlay) SetBrush(x, y, r int, visible bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
