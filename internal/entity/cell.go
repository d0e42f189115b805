package entity

// Cell is the content of a single board slot.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayer1
	CellPlayer2
)

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Opponent returns the other side. CellEmpty has no opponent and is returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case CellPlayer1:
		return CellPlayer2
	case CellPlayer2:
		return CellPlayer1
	default:
		return CellEmpty
	}
}

func (that Cell) String() string {
	switch that {
	case CellPlayer1:
		return "player1"
	case CellPlayer2:
		return "player2"
	default:
		return "empty"
	}
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (that Status) IsTerminal() bool {
	return that != StatusInProgress
}

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "in_progress"
	}
}
