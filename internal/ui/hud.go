//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"koozle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type panelProvider interface {
	Panels() core.ParameterSnapshot
}

// HUD renders the status panels and action buttons to the right of the room.
type HUD struct {
	src        panelProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	buttons      []hudButton
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type hudButton struct {
	action  Action
	rect    image.Rectangle
	enabled bool
}

// NewHUD constructs a HUD reading panels from src.
func NewHUD(src panelProvider, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.buttons = make([]hudButton, len(Actions))
	for i, a := range Actions {
		h.buttons[i] = hudButton{action: a}
	}
	return h
}

// Update refreshes the snapshot and returns the button clicked this frame.
// enabled decides which buttons accept clicks.
func (h *HUD) Update(panelOffsetX, height int, enabled func(Action) bool) Action {
	if h == nil {
		return ActionNone
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Panels()
	for i, r := range buttonRects(h.width, height) {
		h.buttons[i].rect = r
		h.buttons[i].enabled = enabled == nil || enabled(h.buttons[i].action)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return ActionNone
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if b.enabled && pointInRect(px, my, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanels()
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.action.String(), b.enabled)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawPanels() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight + 4

	limit := h.lastHeight - len(Actions)*(buttonHeight+buttonGap) - panelPadding
	for _, line := range PanelLines(h.snapshot) {
		if y > limit {
			return
		}
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		x := panelPadding + 8
		switch {
		case line.Header:
			col = color.RGBA{R: 255, G: 214, B: 110, A: 255}
			x = panelPadding
			y += 4
		case line.Muted:
			col = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line.Text, face, x, y, col)
		y += lineHeight
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
