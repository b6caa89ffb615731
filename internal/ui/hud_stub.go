//go:build !ebiten

package ui

import "paper-burn/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Surface, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// IgniteRequested always reports false in the headless build.
func (h *HUD) IgniteRequested() bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
