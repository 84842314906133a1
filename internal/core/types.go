package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Board is what a renderer needs from a grid: its size and one palette
// index per cell in row-major order.
type Board interface {
	Size() Size
	Cells() []uint8
}
