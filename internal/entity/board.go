package entity

// Board is a rectangular grid of cells stored row-major: (x, y) lives at y*width + x.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard allocates an empty board. Dimensions are expected to be validated by the caller.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.width && y < that.height
}

// At returns the cell at (x, y), or CellEmpty when the position is off the board.
func (that *Board) At(x, y int) Cell {
	if !that.InBounds(x, y) {
		return CellEmpty
	}

	return that.cells[that.offset(x, y)]
}

// Set writes the cell at (x, y). The position must be in bounds.
func (that *Board) Set(x, y int, cell Cell) {
	that.cells[that.offset(x, y)] = cell
}

// Occupied counts the non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if !cell.IsEmpty() {
			count++
		}
	}

	return count
}

// Cells returns a copy of the row-major cell slice.
func (that *Board) Cells() []Cell {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return cells
}

func (that *Board) offset(x, y int) int {
	return y*that.width + x
}
