package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"koozle/internal/core"
	"koozle/internal/game"
	"koozle/pkg/sims/life"
)

// Cell codes produced by Encode. Mob i is drawn with code MobBase+i.
const (
	CodeDead uint8 = 0
	CodeWall uint8 = 1
	MobBase  uint8 = 2
)

var (
	deadColor = color.RGBA{R: 12, G: 12, B: 18, A: 255}
	wallColor = color.RGBA{R: 70, G: 72, B: 84, A: 255}
)

// Palette maps cell codes to colours.
type Palette []color.RGBA

// NewPalette builds the palette for cat from each mob's hex colour.
func NewPalette(cat *game.Catalog) (Palette, error) {
	p := Palette{deadColor, wallColor}
	for _, m := range cat.Mobs {
		c, err := colorful.Hex(m.Color)
		if err != nil {
			return nil, fmt.Errorf("mob %s colour %q: %w", m.ID, m.Color, err)
		}
		r, g, b := c.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return p, nil
}

// Faded blends every mob colour toward the dead-cell colour by t in Lab
// space. Finished rooms are drawn with it.
func (p Palette) Faded(t float64) Palette {
	out := make(Palette, len(p))
	copy(out, p)
	bg := toColorful(deadColor)
	for i := int(MobBase); i < len(out); i++ {
		r, g, b := toColorful(out[i]).BlendLab(bg, t).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func toColorful(c color.RGBA) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc
}

// Encode writes one code per cell of r into buf, growing it when needed.
// Live cells without a known mob use the first mob colour.
func Encode(r game.Room, buf []uint8) []uint8 {
	n := r.Grid.Rows * r.Grid.Cols
	if cap(buf) < n {
		buf = make([]uint8, n)
	}
	buf = buf[:n]
	for row := 0; row < r.Grid.Rows; row++ {
		for col := 0; col < r.Grid.Cols; col++ {
			i := r.Grid.Index(row, col)
			switch r.Grid.At(row, col) {
			case life.Wall:
				buf[i] = CodeWall
			case life.Alive:
				id := r.Mobs.At(row, col)
				if id < 0 || id > 255-int(MobBase) {
					id = 0
				}
				buf[i] = MobBase + uint8(id)
			default:
				buf[i] = CodeDead
			}
		}
	}
	return buf
}

// RoomBoard exposes a room as a core.Board for the painters.
type RoomBoard struct {
	Room game.Room
	buf  []uint8
}

var _ core.Board = (*RoomBoard)(nil)

// Size returns the board size in cells.
func (b *RoomBoard) Size() core.Size {
	return core.Size{W: b.Room.Grid.Cols, H: b.Room.Grid.Rows}
}

// Cells returns the encoded cells, reusing the board's buffer.
func (b *RoomBoard) Cells() []uint8 {
	b.buf = Encode(b.Room, b.buf)
	return b.buf
}
