package life

import "koozle/pkg/core"

// Life implements Conway's Game of Life with toroidal wrapping. It has no
// walls or mob types and is kept as the reference the walled engine is
// measured against.
type Life struct {
	rule RuleSet
	cur  Grid
}

// New returns a Life simulation with the provided dimensions.
func New(rows, cols int) *Life {
	return &Life{rule: Classic(), cur: NewGrid(rows, cols)}
}

// NewWithRule returns a toroidal simulation running an arbitrary rule.
func NewWithRule(rows, cols int, rule RuleSet) *Life {
	l := New(rows, cols)
	l.rule = rule
	return l
}

// Grid returns the current generation.
func (l *Life) Grid() Grid { return l.cur }

// Set replaces the current generation.
func (l *Life) Set(g Grid) { l.cur = g }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	next := NewGrid(l.cur.Rows, l.cur.Cols)
	for i := range next.cells {
		if rng.Bool() {
			next.cells[i] = Alive
		}
	}
	l.cur = next
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	g := l.cur
	h, w := g.Rows, g.Cols
	next := NewGrid(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if g.cells[ny*w+nx] == Alive {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := g.cells[idx] == Alive
			if (alive && l.rule.Survive.Has(neighbors)) || (!alive && l.rule.Birth.Has(neighbors)) {
				next.cells[idx] = Alive
			}
		}
	}
	l.cur = next
}
