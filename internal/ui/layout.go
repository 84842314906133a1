package ui

import (
	"image"

	"koozle/internal/core"
)

// Action is a HUD button press.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionFinish
	ActionNext
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start life"
	case ActionFinish:
		return "Finish"
	case ActionNext:
		return "Next room"
	case ActionRestart:
		return "Restart"
	default:
		return ""
	}
}

// Actions lists the HUD buttons top to bottom.
var Actions = []Action{ActionStart, ActionFinish, ActionNext, ActionRestart}

// PanelLine is one row of HUD text.
type PanelLine struct {
	Text   string
	Header bool
	Muted  bool
}

// PanelLines flattens a snapshot into display rows: a header per group, its
// summary, then "label: value" rows.
func PanelLines(snap core.ParameterSnapshot) []PanelLine {
	var lines []PanelLine
	for _, g := range snap.Groups {
		lines = append(lines, PanelLine{Text: g.Name, Header: true})
		if g.Summary != "" {
			lines = append(lines, PanelLine{Text: g.Summary, Muted: true})
		}
		for _, p := range g.Params {
			lines = append(lines, PanelLine{Text: p.Label + ": " + p.Value})
		}
	}
	return lines
}

// CellAt maps a screen position to a grid cell. ok is false outside the
// rows×cols grid drawn at scale pixels per cell.
func CellAt(x, y, scale, rows, cols int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// buttonRects lays the action buttons out along the bottom of a panel.
func buttonRects(width, height int) []image.Rectangle {
	rects := make([]image.Rectangle, len(Actions))
	top := height - panelPadding - len(Actions)*(buttonHeight+buttonGap) + buttonGap
	for i := range Actions {
		y := top + i*(buttonHeight+buttonGap)
		rects[i] = image.Rect(panelPadding, y, width-panelPadding, y+buttonHeight)
	}
	return rects
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonHeight   = 24
	buttonGap      = 6
	headerBaseline = 18
)
