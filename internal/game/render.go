package game

import "strings"

const (
	defaultCellSeparator = " "
	defaultRowSeparator  = "\n"
	defaultEmptyMarker   = "-"
)

// Render prints the board row by row. cellSeparator goes between cells of a row,
// rowSeparator between rows, and emptyMarker stands for free cells.
func (that *Game) Render(cellSeparator, rowSeparator, emptyMarker string) string {
	var builder strings.Builder

	lastColumn := that.Width() - 1
	for y := 0; y < that.Height(); y++ {
		if y > 0 {
			builder.WriteString(rowSeparator)
		}

		for x := 0; x < that.Width(); x++ {
			cell := that.board.At(x, y)
			if cell.IsEmpty() {
				builder.WriteString(emptyMarker)
			} else {
				builder.WriteString(that.label(cell))
			}

			if x < lastColumn {
				builder.WriteString(cellSeparator)
			}
		}
	}

	return builder.String()
}

func (that *Game) String() string {
	return that.Render(defaultCellSeparator, defaultRowSeparator, defaultEmptyMarker)
}
