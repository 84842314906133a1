package game

import (
	"koozle/pkg/core"
	"koozle/pkg/sims/life"
)

// Phase is a room's life-cycle stage. Phases only move forward.
type Phase string

const (
	PhaseEdit     Phase = "edit"
	PhaseAlive    Phase = "alive"
	PhaseComplete Phase = "complete"
)

// RoomOptions controls how fresh rooms are generated.
type RoomOptions struct {
	Rows       int
	Cols       int
	Fill       float64
	MinChanges int
	MaxChanges int
}

// DefaultRoomOptions returns a 12×12 room with a sparse pregame fill and a
// toggle budget of 1–3.
func DefaultRoomOptions() RoomOptions {
	return RoomOptions{Rows: 12, Cols: 12, Fill: 0.3, MinChanges: 1, MaxChanges: 3}
}

// Room is one simulation instance. Its methods never mutate the receiver;
// each transition returns the next Room value.
type Room struct {
	ID          string
	Grid        life.Grid
	Mobs        life.MobGrid
	Phase       Phase
	StepCount   int
	RuleMod     string
	ChangesLeft int
	Stable      bool
}

// NewRoom generates a pregame grid and an edit-phase room around it.
func NewRoom(id, ruleMod string, opts RoomOptions, cat *Catalog, rng core.Source) Room {
	g, m := life.GeneratePregame(opts.Rows, opts.Cols, opts.Fill, cat.PixelTypes, rng)
	return Room{
		ID:          id,
		Grid:        g,
		Mobs:        m,
		Phase:       PhaseEdit,
		RuleMod:     ruleMod,
		ChangesLeft: core.Between(rng, opts.MinChanges, opts.MaxChanges),
	}
}

// Rule returns the room's global rule set.
func (r Room) Rule() life.RuleSet { return life.ParseRule(r.RuleMod) }

// ToggleCell flips one cell while editing. A cell brought to life gets a
// random pixel mob type; a cell killed loses its type. Each toggle spends one
// change. Outside the edit phase, without budget, or on a wall or
// out-of-range cell the room is returned unchanged.
func (r Room) ToggleCell(row, col int, cat *Catalog, rng core.Source) Room {
	if r.Phase != PhaseEdit || r.ChangesLeft < 1 {
		return r
	}
	if !r.Grid.In(row, col) || r.Grid.At(row, col) == life.Wall {
		return r
	}
	next := r
	next.Grid = life.Toggle(r.Grid, row, col)
	if next.Grid.At(row, col) == life.Alive {
		next.Mobs = r.Mobs.With(row, col, rng.IntN(cat.PixelTypes))
	} else {
		next.Mobs = r.Mobs.With(row, col, life.NoMob)
	}
	next.ChangesLeft--
	return next
}

// StartLife moves an edit-phase room into the alive phase.
func (r Room) StartLife() Room {
	if r.Phase != PhaseEdit {
		return r
	}
	r.Phase = PhaseAlive
	r.StepCount = 0
	return r
}

// Tick advances an alive room by one generation and records whether the
// generation was stable.
func (r Room) Tick(cat *Catalog, rng core.Source) Room {
	if r.Phase != PhaseAlive {
		return r
	}
	g, m := life.Advance(r.Grid, r.Mobs, cat.TypeRules(), r.Rule(), rng)
	r.Stable = life.Equal(r.Grid, g)
	r.Grid = g
	r.Mobs = m
	r.StepCount++
	return r
}

// Complete marks the room finished. It is valid from any phase and
// idempotent.
func (r Room) Complete() Room {
	r.Phase = PhaseComplete
	return r
}

// Alive returns the number of live cells.
func (r Room) Alive() int { return life.CountAlive(r.Grid) }
