//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws edit-phase aids over the room: cell grid lines and a
// highlight on the cell under the cursor.
type Overlay struct {
	scale    int
	showGrid bool

	hoverRow, hoverCol int
	hover              bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for cells drawn at scale pixels.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showGrid: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell and the grid toggle key.
func (o *Overlay) Update(rows, cols int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hover = CellAt(mx, my, o.scale, rows, cols)
}

// Draw renders the overlay. Nothing is drawn outside the edit phase.
func (o *Overlay) Draw(screen *ebiten.Image, rows, cols int, editing bool) {
	if !editing || rows <= 0 || cols <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	w, h := float64(cols*scale), float64(rows*scale)

	if o.showGrid && scale >= 4 {
		line := color.RGBA{R: 255, G: 255, B: 255, A: 28}
		for c := 1; c < cols; c++ {
			o.fillRect(screen, float64(c*scale), 0, 1, h, line)
		}
		for r := 1; r < rows; r++ {
			o.fillRect(screen, 0, float64(r*scale), w, 1, line)
		}
	}
	if o.hover {
		x, y := float64(o.hoverCol*scale), float64(o.hoverRow*scale)
		o.fillRect(screen, x, y, float64(scale), float64(scale), color.RGBA{R: 255, G: 214, B: 110, A: 60})
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
