package game

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"koozle/pkg/core"
)

// GamePhase is the overall state of a play session.
type GamePhase string

const (
	GamePlaying GamePhase = "playing"
	GameDead    GamePhase = "dead"
	GameVictory GamePhase = "victory"
)

// Options tunes a session.
type Options struct {
	Room           RoomOptions
	RoomBaseXP     int
	ItemDropChance float64
	// RoomsToWin ends the game in victory once that many rooms are cleared.
	// Zero plays forever.
	RoomsToWin int
	// MaxSteps completes a running room after that many generations even if
	// it never stabilises. Zero means no cap.
	MaxSteps int
}

// DefaultOptions gives 15 base xp per room, a 40% item drop chance and ten
// rooms to win.
func DefaultOptions() Options {
	return Options{
		Room:           DefaultRoomOptions(),
		RoomBaseXP:     15,
		ItemDropChance: 0.4,
		RoomsToWin:     10,
		MaxSteps:       200,
	}
}

// State is an immutable snapshot of a session. Rooms is append-only and the
// slice is never written after a State is published.
type State struct {
	ID            string
	Phase         GamePhase
	Rooms         []Room
	Current       int
	Character     Character
	Inventory     Inventory
	LastEncounter *Encounter
	LastDrop      *Item
}

// CurrentRoom returns the room being played. It panics on a State with no
// rooms, which NewSession never produces.
func (s State) CurrentRoom() Room {
	if len(s.Rooms) == 0 {
		panic("game: session has no rooms")
	}
	if s.Current < 0 || s.Current >= len(s.Rooms) {
		return s.Rooms[0]
	}
	return s.Rooms[s.Current]
}

// Stats returns the character's derived stats.
func (s State) Stats() Stats { return s.Character.Effective(s.Inventory) }

func (s State) withRoom(r Room) State {
	rooms := make([]Room, len(s.Rooms))
	copy(rooms, s.Rooms)
	rooms[s.Current] = r
	s.Rooms = rooms
	return s
}

// Session owns the current State and applies player and timer input to it.
// It is not safe for concurrent use; callers serialise input and ticks.
type Session struct {
	opts  Options
	cat   *Catalog
	rng   core.Source
	log   *logrus.Entry
	state State
}

// NewSession starts a game with a fresh character and room "0".
func NewSession(opts Options, cat *Catalog, rng core.Source, log *logrus.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		opts: opts,
		cat:  cat,
		rng:  rng,
		log:  log.WithField("session", id),
	}
	var inv Inventory
	s.state = State{
		ID:        id,
		Phase:     GamePlaying,
		Rooms:     []Room{NewRoom("0", inv.ActiveRuleMod(), opts.Room, cat, rng)},
		Character: NewCharacter(),
		Inventory: inv,
	}
	s.log.WithField("room", "0").Info("session started")
	return s
}

// State returns the current snapshot.
func (s *Session) State() State { return s.state }

// CurrentRoom returns the room being played.
func (s *Session) CurrentRoom() Room { return s.state.CurrentRoom() }

// Catalog returns the static data the session plays with.
func (s *Session) Catalog() *Catalog { return s.cat }

// Options returns the session's tuning.
func (s *Session) Options() Options { return s.opts }

// Running reports whether the tick timer should be armed.
func (s *Session) Running() bool {
	return s.state.Phase == GamePlaying && s.CurrentRoom().Phase == PhaseAlive
}

// Toggle flips a cell of the current room while it is being edited.
func (s *Session) Toggle(row, col int) State {
	if s.state.Phase != GamePlaying {
		return s.state
	}
	room := s.CurrentRoom()
	next := room.ToggleCell(row, col, s.cat, s.rng)
	if next.ChangesLeft == room.ChangesLeft {
		return s.state
	}
	s.state = s.state.withRoom(next)
	s.roomLog(next).WithFields(logrus.Fields{"row": row, "col": col}).Debug("cell toggled")
	return s.state
}

// StartLife starts the simulation of the current room.
func (s *Session) StartLife() State {
	if s.state.Phase != GamePlaying {
		return s.state
	}
	room := s.CurrentRoom()
	if room.Phase != PhaseEdit {
		return s.state
	}
	next := room.StartLife()
	s.state = s.state.withRoom(next)
	s.roomLog(next).WithField("rule", next.Rule().String()).Info("life started")
	return s.state
}

// Tick advances the current room one generation. A room that becomes stable
// or reaches the step cap is completed, which stops the timer.
func (s *Session) Tick() State {
	if !s.Running() {
		return s.state
	}
	next := s.CurrentRoom().Tick(s.cat, s.rng)
	switch {
	case next.Stable:
		next = next.Complete()
		s.roomLog(next).WithField("steps", next.StepCount).Info("room stabilised")
	case s.opts.MaxSteps > 0 && next.StepCount >= s.opts.MaxSteps:
		next = next.Complete()
		s.roomLog(next).WithField("steps", next.StepCount).Info("room hit step cap")
	}
	s.state = s.state.withRoom(next)
	return s.state
}

// Complete finishes the current room by hand.
func (s *Session) Complete() State {
	if s.state.Phase != GamePlaying {
		return s.state
	}
	room := s.CurrentRoom()
	if room.Phase == PhaseComplete {
		return s.state
	}
	next := room.Complete()
	s.state = s.state.withRoom(next)
	s.roomLog(next).WithField("steps", next.StepCount).Info("room finished")
	return s.state
}

// AdvanceToNextRoom settles the completed current room and opens the next
// one. The census of surviving mobs is applied as damage and xp; base xp is
// RoomBaseXP plus the number of generations run. Death or victory end the
// game instead of opening a room.
func (s *Session) AdvanceToNextRoom() State {
	if s.state.Phase != GamePlaying {
		return s.state
	}
	room := s.CurrentRoom()
	if room.Phase != PhaseComplete {
		return s.state
	}

	enc := ResolveEncounter(Census(room, s.cat))
	res := ApplyRoomReward(s.state.Character, s.state.Inventory, s.opts.RoomBaseXP+room.StepCount, enc, s.opts.ItemDropChance, s.cat, s.rng)

	next := s.state
	next.Character = res.Character
	next.Inventory = res.Inventory
	next.LastEncounter = &enc
	next.LastDrop = res.Dropped

	log := s.roomLog(room).WithFields(logrus.Fields{
		"mobs":   len(enc.Mobs),
		"damage": enc.Damage,
		"xp":     enc.XP,
		"hp":     res.Character.HP,
		"level":  res.Character.Level,
	})
	if res.Dropped != nil {
		log = log.WithField("drop", res.Dropped.ID)
	}

	switch {
	case res.Dead:
		next.Phase = GameDead
		log.Info("character died")
	case s.opts.RoomsToWin > 0 && len(next.Rooms) >= s.opts.RoomsToWin:
		next.Phase = GameVictory
		log.Info("victory")
	default:
		id := strconv.Itoa(len(next.Rooms))
		rooms := make([]Room, len(next.Rooms), len(next.Rooms)+1)
		copy(rooms, next.Rooms)
		next.Rooms = append(rooms, NewRoom(id, next.Inventory.ActiveRuleMod(), s.opts.Room, s.cat, s.rng))
		next.Current = len(next.Rooms) - 1
		log.WithField("next", id).Info("room cleared")
	}
	s.state = next
	return s.state
}

func (s *Session) roomLog(r Room) *logrus.Entry {
	return s.log.WithField("room", r.ID)
}
