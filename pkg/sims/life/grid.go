package life

// Cell is the tri-state value of one grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
	Wall
)

// String returns a short name for the cell state.
func (c Cell) String() string {
	switch c {
	case Alive:
		return "alive"
	case Wall:
		return "wall"
	default:
		return "dead"
	}
}

// Grid stores cells in row-major order. Dimensions are fixed at creation and
// every mutating helper returns a new Grid, so a Grid value can be shared
// freely between snapshots.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

// NewGrid allocates an all-dead grid. Negative dimensions are treated as 0.
func NewGrid(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == 0 || cols == 0 {
		return Grid{Rows: rows, Cols: cols}
	}
	return Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
}

// GridFromRows builds a grid from nested rows. Short rows are padded with
// dead cells so every row has the width of the longest one.
func GridFromRows(rows [][]Cell) Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(len(rows), cols)
	for y, r := range rows {
		copy(g.cells[y*cols:], r)
	}
	return g
}

// In reports whether (row, col) lies inside the grid.
func (g Grid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// At returns the cell at (row, col); positions outside the grid read as Dead.
func (g Grid) At(row, col int) Cell {
	if !g.In(row, col) {
		return Dead
	}
	return g.cells[g.Index(row, col)]
}

// With returns a copy of g with (row, col) set to c. Out-of-range
// coordinates return g unchanged.
func (g Grid) With(row, col int, c Cell) Grid {
	if !g.In(row, col) {
		return g
	}
	next := g.Clone()
	next.cells[next.Index(row, col)] = c
	return next
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols}
	if g.cells != nil {
		out.cells = append([]Cell(nil), g.cells...)
	}
	return out
}

// Cells returns a copy of the row-major cell values.
func (g Grid) Cells() []Cell { return append([]Cell(nil), g.cells...) }

// Equal reports whether a and b have the same dimensions and cell values.
func Equal(a, b Grid) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}

// CountAlive returns the number of Alive cells; walls are not counted.
func CountAlive(g Grid) int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// NoMob marks a MobGrid position without a mob type.
const NoMob = -1

// MobGrid maps each grid position to a mob-type index, or NoMob. A position
// holds an index exactly when the matching Grid cell is Alive.
type MobGrid struct {
	Rows, Cols int
	ids        []int
}

// NewMobGrid allocates a mob grid with every position set to NoMob.
func NewMobGrid(rows, cols int) MobGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := MobGrid{Rows: rows, Cols: cols}
	if rows == 0 || cols == 0 {
		return m
	}
	m.ids = make([]int, rows*cols)
	for i := range m.ids {
		m.ids[i] = NoMob
	}
	return m
}

// In reports whether (row, col) lies inside the mob grid.
func (m MobGrid) In(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// At returns the mob index at (row, col), or NoMob outside the grid.
func (m MobGrid) At(row, col int) int {
	if !m.In(row, col) {
		return NoMob
	}
	return m.ids[row*m.Cols+col]
}

// With returns a copy of m with (row, col) set to id.
func (m MobGrid) With(row, col, id int) MobGrid {
	if !m.In(row, col) {
		return m
	}
	next := m.Clone()
	next.ids[row*next.Cols+col] = id
	return next
}

// Clone returns a deep copy.
func (m MobGrid) Clone() MobGrid {
	out := MobGrid{Rows: m.Rows, Cols: m.Cols}
	if m.ids != nil {
		out.ids = append([]int(nil), m.ids...)
	}
	return out
}

// Empty reports whether the mob grid has no positions, which is how a plain
// Life grid without type tracking is represented.
func (m MobGrid) Empty() bool { return len(m.ids) == 0 }
