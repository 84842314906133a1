//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"koozle/internal/core"
	"koozle/internal/game"
	"koozle/internal/render"
	"koozle/internal/ui"
	pcore "koozle/pkg/core"
)

// Game adapts a play session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	opts    game.Options
	cat     *game.Catalog
	log     *logrus.Logger

	painter *render.GridPainter
	board   *render.RoomBoard
	palette render.Palette
	faded   render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	scale    int
	hudWidth int
	seed     int64
	running  bool
}

// New constructs a Game and starts its first session.
func New(opts game.Options, cat *game.Catalog, palette render.Palette, log *logrus.Logger, tick time.Duration, scale, hudWidth int, seed int64) *Game {
	g := &Game{
		opts:     opts,
		cat:      cat,
		log:      log,
		painter:  render.NewGridPainter(opts.Room.Cols, opts.Room.Rows),
		board:    &render.RoomBoard{},
		palette:  palette,
		faded:    palette.Faded(0.55),
		overlay:  ui.NewOverlay(scale),
		timer:    core.NewFixedStep(tick),
		scale:    scale,
		hudWidth: hudWidth,
	}
	g.Reset(seed)
	return g
}

// Reset starts a new session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session = game.NewSession(g.opts, g.cat, pcore.NewRNG(seed), g.log)
	g.hud = ui.NewHUD(g.session, "Swietlik Koozle", g.hudWidth)
	g.running = false
}

// Update handles input and advances the room on the tick timer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	action := g.hud.Update(g.gridWidth(), g.gridHeight(), g.enabled)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		action = ui.ActionStart
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		action = ui.ActionFinish
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		action = ui.ActionNext
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		action = ui.ActionRestart
	}
	g.apply(action)

	room := g.session.CurrentRoom()
	g.overlay.Update(room.Grid.Rows, room.Grid.Cols)
	if action == ui.ActionNone && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if row, col, ok := ui.CellAt(mx, my, g.scale, room.Grid.Rows, room.Grid.Cols); ok {
			g.session.Toggle(row, col)
		}
	}

	running := g.session.Running()
	if running && !g.running {
		g.timer.Reset()
	}
	g.running = running
	if running && g.timer.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) apply(a ui.Action) {
	switch a {
	case ui.ActionStart:
		g.session.StartLife()
	case ui.ActionFinish:
		g.session.Complete()
	case ui.ActionNext:
		g.session.AdvanceToNextRoom()
	case ui.ActionRestart:
		g.Reset(time.Now().UnixNano())
	}
}

func (g *Game) enabled(a ui.Action) bool {
	st := g.session.State()
	if a == ui.ActionRestart {
		return true
	}
	if st.Phase != game.GamePlaying {
		return false
	}
	switch phase := st.CurrentRoom().Phase; a {
	case ui.ActionStart:
		return phase == game.PhaseEdit
	case ui.ActionFinish:
		return phase != game.PhaseComplete
	case ui.ActionNext:
		return phase == game.PhaseComplete
	}
	return false
}

// Draw renders the room, the edit overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	room := g.session.CurrentRoom()
	g.board.Room = room
	palette := g.palette
	if room.Phase == game.PhaseComplete {
		palette = g.faded
	}
	g.painter.Blit(screen, g.board, palette, g.scale)
	g.overlay.Draw(screen, room.Grid.Rows, room.Grid.Cols, room.Phase == game.PhaseEdit)
	g.hud.Draw(screen, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hudWidth, g.gridHeight()
}

func (g *Game) gridWidth() int  { return g.opts.Room.Cols * g.scale }
func (g *Game) gridHeight() int { return g.opts.Room.Rows * g.scale }
