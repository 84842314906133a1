package life

import "koozle/pkg/core"

// CountLiveNeighbors counts Alive cells in the 8-neighbourhood of (row, col).
// The grid does not wrap: positions past an edge are absent. Walls never count.
func CountLiveNeighbors(g Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.Rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.Cols {
				continue
			}
			if g.cells[r*g.Cols+c] == Alive {
				n++
			}
		}
	}
	return n
}

// Advance computes the next generation of g and its mob grid.
//
// Walls are copied unchanged. A live cell with a mob type survives under the
// rule parsed from typeRules[type]; untyped live cells use global. Dead cells
// are born under the global birth set only, and a newborn takes the type of a
// uniformly chosen live neighbour (neighbours of the same type weigh
// proportionally), falling back to type 0. Every cell reads the previous
// generation only.
//
// An empty mobs grid runs plain walled Life and returns an empty mob grid.
func Advance(g Grid, mobs MobGrid, typeRules []string, global RuleSet, rng core.Source) (Grid, MobGrid) {
	next := NewGrid(g.Rows, g.Cols)
	typed := !mobs.Empty() && mobs.Rows == g.Rows && mobs.Cols == g.Cols
	nextMobs := MobGrid{}
	if typed {
		nextMobs = NewMobGrid(g.Rows, g.Cols)
	}

	rules := make([]RuleSet, len(typeRules))
	for i, mod := range typeRules {
		rules[i] = ParseRule(mod)
	}

	var neighbourTypes []int
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			idx := r*g.Cols + c
			switch g.cells[idx] {
			case Wall:
				next.cells[idx] = Wall
			case Alive:
				rule := global
				id := NoMob
				if typed {
					id = mobs.ids[idx]
					if id >= 0 && id < len(rules) {
						rule = rules[id]
					}
				}
				if rule.Survive.Has(CountLiveNeighbors(g, r, c)) {
					next.cells[idx] = Alive
					if typed {
						nextMobs.ids[idx] = id
					}
				}
			default:
				if !global.Birth.Has(CountLiveNeighbors(g, r, c)) {
					continue
				}
				next.cells[idx] = Alive
				if !typed {
					continue
				}
				neighbourTypes = liveNeighbourTypes(g, mobs, r, c, neighbourTypes[:0])
				if len(neighbourTypes) == 0 {
					nextMobs.ids[idx] = 0
					continue
				}
				nextMobs.ids[idx] = neighbourTypes[rng.IntN(len(neighbourTypes))]
			}
		}
	}
	return next, nextMobs
}

func liveNeighbourTypes(g Grid, mobs MobGrid, row, col int, buf []int) []int {
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.Rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.Cols {
				continue
			}
			idx := r*g.Cols + c
			if g.cells[idx] != Alive {
				continue
			}
			if id := mobs.ids[idx]; id != NoMob {
				buf = append(buf, id)
			}
		}
	}
	return buf
}

// Toggle flips (row, col) between Dead and Alive. Walls and out-of-range
// coordinates return g unchanged.
func Toggle(g Grid, row, col int) Grid {
	switch g.At(row, col) {
	case Wall:
		return g
	case Alive:
		return g.With(row, col, Dead)
	default:
		if !g.In(row, col) {
			return g
		}
		return g.With(row, col, Alive)
	}
}
