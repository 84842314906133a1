package life

import (
	"testing"

	"koozle/pkg/core"
)

func gridOf(rows ...string) Grid {
	cells := make([][]Cell, len(rows))
	for r, line := range rows {
		cells[r] = make([]Cell, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				cells[r][c] = Wall
			case 'o':
				cells[r][c] = Alive
			}
		}
	}
	return GridFromRows(cells)
}

// typedMobs assigns id to every alive cell of g.
func typedMobs(g Grid, id int) MobGrid {
	m := NewMobGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) == Alive {
				m = m.With(r, c, id)
			}
		}
	}
	return m
}

func TestSingleCellDies(t *testing.T) {
	g := gridOf(
		".....",
		".....",
		"..o..",
		".....",
		".....",
	)
	next, _ := Advance(g, MobGrid{}, nil, Classic(), core.NewRNG(1))
	if CountAlive(next) != 0 {
		t.Fatalf("lonely cell should die, %d alive", CountAlive(next))
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridOf(
		"......",
		"......",
		"..oo..",
		"..oo..",
		"......",
		"......",
	)
	rng := core.NewRNG(1)
	once, mobs := Advance(g, typedMobs(g, 0), nil, Classic(), rng)
	twice, _ := Advance(once, mobs, nil, Classic(), rng)
	if !Equal(g, once) {
		t.Fatal("block changed after one generation")
	}
	if !Equal(once, twice) {
		t.Fatal("block changed after two generations")
	}
}

func TestWallsNeverChange(t *testing.T) {
	rng := core.NewRNG(5)
	for trial := 0; trial < 200; trial++ {
		g := NewGrid(6, 6)
		for r := 0; r < 6; r++ {
			for c := 0; c < 6; c++ {
				switch rng.IntN(3) {
				case 1:
					g = g.With(r, c, Alive)
				case 2:
					g = g.With(r, c, Wall)
				}
			}
		}
		mods := []string{"B3/S23", "B1/S012345678", "S"}
		next, mobs := Advance(g, typedMobs(g, trial%3), mods, ParseRule("B12345678/S"), rng)
		for r := 0; r < 6; r++ {
			for c := 0; c < 6; c++ {
				if g.At(r, c) == Wall && next.At(r, c) != Wall {
					t.Fatalf("trial %d: wall at (%d,%d) became %v", trial, r, c, next.At(r, c))
				}
				if g.At(r, c) != Wall && next.At(r, c) == Wall {
					t.Fatalf("trial %d: (%d,%d) became a wall", trial, r, c)
				}
				if (next.At(r, c) == Alive) != (mobs.At(r, c) != NoMob) {
					t.Fatalf("trial %d: mob grid out of sync at (%d,%d)", trial, r, c)
				}
			}
		}
	}
}

func TestWallsDoNotCountAsNeighbours(t *testing.T) {
	g := gridOf(
		"###",
		"#.#",
		"###",
	)
	if n := CountLiveNeighbors(g, 1, 1); n != 0 {
		t.Fatalf("walls counted as %d neighbours", n)
	}
	next, _ := Advance(g, MobGrid{}, nil, Classic(), core.NewRNG(1))
	if next.At(1, 1) != Dead {
		t.Fatal("a cell surrounded by walls must not be born")
	}
}

func TestCornerDoesNotWrap(t *testing.T) {
	g := gridOf(
		"o...o",
		".....",
		".....",
		".....",
		"o...o",
	)
	if n := CountLiveNeighbors(g, 0, 0); n != 0 {
		t.Fatalf("corner cell sees %d neighbours through the edges", n)
	}
	next, _ := Advance(g, MobGrid{}, nil, Classic(), core.NewRNG(1))
	if next.At(0, 0) != Dead {
		t.Fatal("isolated corner cell should die")
	}
}

func TestSurviveUsesMobRule(t *testing.T) {
	// Two adjacent cells have one neighbour each. Type 1 survives on 1.
	g := gridOf(
		".....",
		".oo..",
		".....",
	)
	mobs := NewMobGrid(g.Rows, g.Cols).With(1, 1, 0).With(1, 2, 1)
	next, nextMobs := Advance(g, mobs, []string{"", "S1"}, Classic(), core.NewRNG(1))
	if next.At(1, 1) != Dead {
		t.Fatal("type 0 follows classic survive and should die")
	}
	if next.At(1, 2) != Alive || nextMobs.At(1, 2) != 1 {
		t.Fatal("type 1 should survive on one neighbour and keep its type")
	}
	if nextMobs.At(1, 1) != NoMob {
		t.Fatal("dead cell must clear its mob entry")
	}
}

func TestBirthUsesGlobalRule(t *testing.T) {
	// The centre has two live neighbours whose type would allow birth on 2;
	// birth ignores per-type rules.
	g := gridOf(
		"o.o",
		"...",
		"...",
	)
	mobs := typedMobs(g, 0)
	next, _ := Advance(g, mobs, []string{"B2/S"}, Classic(), core.NewRNG(1))
	if next.At(1, 1) != Dead {
		t.Fatal("birth must use the global rule")
	}
	next, nextMobs := Advance(g, mobs, nil, ParseRule("B2"), core.NewRNG(1))
	if next.At(1, 1) != Alive || nextMobs.At(1, 1) != 0 {
		t.Fatal("global B2 should birth the centre with the neighbours' type")
	}
}

func TestBirthInheritsSingleType(t *testing.T) {
	g := gridOf(
		".....",
		".ooo.",
		".....",
	)
	mobs := typedMobs(g, 4)
	next, nextMobs := Advance(g, mobs, nil, Classic(), core.NewRNG(9))
	for _, pos := range [][2]int{{0, 2}, {2, 2}} {
		if next.At(pos[0], pos[1]) != Alive {
			t.Fatalf("expected birth at %v", pos)
		}
		if got := nextMobs.At(pos[0], pos[1]); got != 4 {
			t.Fatalf("newborn at %v has type %d, want 4", pos, got)
		}
	}
}

func TestBirthSamplingWeightsByMultiplicity(t *testing.T) {
	// The centre of the top edge row has neighbours of types 2, 2 and 7.
	g := gridOf(
		"o.o",
		".o.",
		"...",
	)
	mobs := NewMobGrid(3, 3).With(0, 0, 2).With(0, 2, 2).With(1, 1, 7)
	rng := core.NewRNG(2024)
	counts := map[int]int{}
	const trials = 3000
	for i := 0; i < trials; i++ {
		next, nextMobs := Advance(g, mobs, nil, Classic(), rng)
		if next.At(0, 1) != Alive {
			t.Fatal("expected birth at (0,1)")
		}
		counts[nextMobs.At(0, 1)]++
	}
	if len(counts) != 2 || counts[2]+counts[7] != trials {
		t.Fatalf("newborn types outside the neighbour set: %v", counts)
	}
	share := float64(counts[2]) / trials
	if share < 0.6 || share > 0.73 {
		t.Fatalf("type 2 share %.3f, want about 2/3", share)
	}
}

func TestBirthWithoutTypedNeighboursDefaultsToZero(t *testing.T) {
	g := gridOf(
		"o.o",
		"...",
		".o.",
	)
	// Alive cells carry no mob entries, so the sampler has nothing to draw.
	next, nextMobs := Advance(g, NewMobGrid(3, 3), nil, Classic(), core.NewRNG(1))
	if next.At(1, 1) != Alive || nextMobs.At(1, 1) != 0 {
		t.Fatal("newborn without typed neighbours should default to type 0")
	}
}

func TestAdvanceIsGenerationParallel(t *testing.T) {
	// A glider moves as one unit only if every cell reads the old generation.
	g := gridOf(
		"......",
		"..o...",
		"...o..",
		".ooo..",
		"......",
		"......",
	)
	want := gridOf(
		"......",
		"......",
		".o.o..",
		"..oo..",
		"..o...",
		"......",
	)
	next, _ := Advance(g, MobGrid{}, nil, Classic(), core.NewRNG(1))
	if !Equal(next, want) {
		t.Fatal("glider did not advance as a synchronous update")
	}
}

func TestToggle(t *testing.T) {
	g := gridOf(
		"#..",
		"...",
	)
	on := Toggle(g, 1, 1)
	if on.At(1, 1) != Alive || g.At(1, 1) != Dead {
		t.Fatal("Toggle must flip a copy and leave the input untouched")
	}
	if off := Toggle(on, 1, 1); off.At(1, 1) != Dead {
		t.Fatal("Toggle should flip alive back to dead")
	}
	if !Equal(Toggle(g, 0, 0), g) {
		t.Fatal("toggling a wall must be a no-op")
	}
	if !Equal(Toggle(g, 5, 5), g) || !Equal(Toggle(g, -1, 0), g) {
		t.Fatal("toggling out of range must be a no-op")
	}
}

func TestEqualAndCountAlive(t *testing.T) {
	a := gridOf("#o.", "oo#")
	if CountAlive(a) != 3 {
		t.Fatalf("CountAlive = %d, want 3", CountAlive(a))
	}
	if !Equal(a, a.Clone()) {
		t.Fatal("clone should be equal")
	}
	if Equal(a, gridOf("#o.", "oo.")) {
		t.Fatal("grids differing in one cell compared equal")
	}
	if Equal(NewGrid(2, 3), NewGrid(3, 2)) {
		t.Fatal("grids of different shape compared equal")
	}
}

func TestDegenerateGrids(t *testing.T) {
	rng := core.NewRNG(1)
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {1, 1}, {1, 4}, {-2, 3}} {
		g, m := GeneratePregame(dims[0], dims[1], 0.9, 3, rng)
		next, nextMobs := Advance(g, m, []string{"B3"}, Classic(), rng)
		if next.Rows != g.Rows || next.Cols != g.Cols || nextMobs.Rows != m.Rows {
			t.Fatalf("dims %v: shape changed", dims)
		}
		_ = Toggle(next, 0, 0)
		_ = CountAlive(next)
		_ = Equal(g, next)
	}
	var zero Grid
	if CountLiveNeighbors(zero, 0, 0) != 0 {
		t.Fatal("zero grid has neighbours")
	}
}

func TestGeneratePregame(t *testing.T) {
	rng := core.NewRNG(77)
	g, m := GeneratePregame(12, 12, 0.35, 4, rng)
	if g.Rows != 12 || g.Cols != 12 {
		t.Fatalf("size = %dx%d", g.Rows, g.Cols)
	}
	for r := 0; r < 12; r++ {
		for c := 0; c < 12; c++ {
			border := r == 0 || c == 0 || r == 11 || c == 11
			cell := g.At(r, c)
			if border && cell != Wall {
				t.Fatalf("border (%d,%d) = %v, want wall", r, c, cell)
			}
			if !border && cell == Wall {
				t.Fatalf("interior (%d,%d) is a wall", r, c)
			}
			id := m.At(r, c)
			if cell == Alive && (id < 0 || id >= 4) {
				t.Fatalf("alive (%d,%d) has mob %d outside the pixel catalog", r, c, id)
			}
			if cell != Alive && id != NoMob {
				t.Fatalf("non-alive (%d,%d) has mob %d", r, c, id)
			}
		}
	}

	full, _ := GeneratePregame(5, 5, 1, 1, rng)
	if CountAlive(full) != 9 {
		t.Fatalf("fill 1 should make every interior cell alive, got %d", CountAlive(full))
	}
	empty, _ := GeneratePregame(5, 5, 0, 1, rng)
	if CountAlive(empty) != 0 {
		t.Fatalf("fill 0 should leave the interior dead, got %d", CountAlive(empty))
	}
}
