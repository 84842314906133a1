// Package tui is the terminal front end: the room as a coloured character
// grid beside the status panels.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"koozle/internal/core"
	"koozle/internal/game"
	"koozle/pkg/sims/life"
)

// NewSessionFunc starts a fresh session; the model calls it on restart.
type NewSessionFunc func() *game.Session

type model struct {
	session    *game.Session
	newSession NewSessionFunc
	interval   time.Duration

	row, col int
	// gen invalidates ticks scheduled for an earlier run.
	gen     int
	ticking bool

	help   help.Model
	styles []lipgloss.Style
	width  int
}

type tickMsg struct{ gen int }

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2A33"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5C68"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

// NewModel builds the terminal model around newSession, ticking every
// interval while a room is running.
func NewModel(newSession NewSessionFunc, interval time.Duration) model {
	s := newSession()
	room := s.CurrentRoom()
	m := model{
		session:    s,
		newSession: newSession,
		interval:   interval,
		row:        room.Grid.Rows / 2,
		col:        room.Grid.Cols / 2,
		help:       help.New(),
	}
	for _, mob := range s.Catalog().Mobs {
		m.styles = append(m.styles, lipgloss.NewStyle().Foreground(lipgloss.Color(mob.Color)).Bold(true))
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// arm schedules the next tick when the room has just started running.
func (m model) arm() (model, tea.Cmd) {
	if !m.session.Running() || m.ticking {
		return m, nil
	}
	m.gen++
	m.ticking = true
	return m, m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || !m.ticking {
			return m, nil
		}
		m.session.Tick()
		if !m.session.Running() {
			m.ticking = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		room := m.session.CurrentRoom()
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Up):
			m.row = max(m.row-1, 0)
		case key.Matches(msg, keys.Down):
			m.row = min(m.row+1, room.Grid.Rows-1)
		case key.Matches(msg, keys.Left):
			m.col = max(m.col-1, 0)
		case key.Matches(msg, keys.Right):
			m.col = min(m.col+1, room.Grid.Cols-1)
		case key.Matches(msg, keys.Toggle):
			m.session.Toggle(m.row, m.col)
		case key.Matches(msg, keys.Start):
			m.session.StartLife()
			return m.arm()
		case key.Matches(msg, keys.Finish):
			m.session.Complete()
			m.ticking = false
		case key.Matches(msg, keys.Next):
			m.session.AdvanceToNextRoom()
		case key.Matches(msg, keys.Restart):
			m.session = m.newSession()
			m.ticking = false
			m.gen++
		}
	}
	return m, nil
}

func (m model) View() string {
	grid := m.renderGrid()
	panels := panelStyle.Render(renderPanels(m.session.Panels()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", panels)

	title := titleStyle.Render("Świetlik Koozle")
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", m.help.View(keys)) + "\n"
}

func (m model) renderGrid() string {
	room := m.session.CurrentRoom()
	editing := room.Phase == game.PhaseEdit && m.session.State().Phase == game.GamePlaying
	var b strings.Builder
	for r := 0; r < room.Grid.Rows; r++ {
		for c := 0; c < room.Grid.Cols; c++ {
			cell := m.renderCell(room, r, c)
			if editing && r == m.row && c == m.col {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		if r < room.Grid.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m model) renderCell(room game.Room, r, c int) string {
	switch room.Grid.At(r, c) {
	case life.Wall:
		return wallStyle.Render("██")
	case life.Alive:
		id := room.Mobs.At(r, c)
		if id < 0 || id >= len(m.styles) {
			id = 0
		}
		if len(m.styles) == 0 {
			return "()"
		}
		return m.styles[id].Render("●●")
	default:
		return deadStyle.Render("··")
	}
}

func renderPanels(snap core.ParameterSnapshot) string {
	var b strings.Builder
	for i, g := range snap.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(strings.ToUpper(g.Name)))
		b.WriteString("\n")
		if g.Summary != "" {
			b.WriteString(mutedStyle.Render(g.Summary))
			b.WriteString("\n")
		}
		for _, p := range g.Params {
			b.WriteString(p.Label)
			b.WriteString(": ")
			b.WriteString(p.Value)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
