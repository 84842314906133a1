//go:build !ebiten

package ui

import "koozle/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(interface{ Panels() core.ParameterSnapshot }, string, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, int, func(Action) bool) Action { return ActionNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
