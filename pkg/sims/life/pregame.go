package life

import "koozle/pkg/core"

// GeneratePregame builds a rows×cols grid whose border ring is wall and whose
// interior cells are independently alive with probability fill. Each alive
// cell gets a uniform mob index in [0, pixelTypes).
func GeneratePregame(rows, cols int, fill float64, pixelTypes int, rng core.Source) (Grid, MobGrid) {
	g := NewGrid(rows, cols)
	m := NewMobGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			idx := r*g.Cols + c
			if r == 0 || c == 0 || r == g.Rows-1 || c == g.Cols-1 {
				g.cells[idx] = Wall
				continue
			}
			if !core.Chance(rng, fill) {
				continue
			}
			g.cells[idx] = Alive
			m.ids[idx] = rng.IntN(pixelTypes)
		}
	}
	return g, m
}
