package game

import (
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

// Game is an N-in-a-row match between two players on a rectangular board.
// It is not safe for concurrent use.
type Game struct {
	settings Settings
	board    *entity.Board

	turns  int
	active entity.Cell
	status entity.Status
	winner entity.Cell
}

// New validates the settings and returns a game with an empty board and player 1 to move.
func New(settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game settings: %w", err)
	}

	return &Game{
		settings: settings,
		board:    entity.NewBoard(settings.Width, settings.Height),
		active:   entity.CellPlayer1,
		status:   entity.StatusInProgress,
	}, nil
}

// PlaceCell marks (x, y) for the active player. On any error the game is left untouched.
func (that *Game) PlaceCell(x, y int) error {
	if that.status.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !that.board.InBounds(x, y) {
		return fmt.Errorf("%w: cell(%d;%d) on %dx%d board", apperror.ErrPositionOutOfBounds, x, y, that.Width(), that.Height())
	}

	if !that.board.At(x, y).IsEmpty() {
		return fmt.Errorf("%w: cell(%d;%d)", apperror.ErrCellOccupied, x, y)
	}

	that.board.Set(x, y, that.active)
	that.turns++

	// the order matters: a move that fills the last cell with a strike is a win, not a draw
	switch {
	case hasStrike(that.board, that.active, that.settings.StrikeLength):
		that.status = entity.StatusWon
		that.winner = that.active
	case that.turns == that.board.Size():
		that.status = entity.StatusDrawn
	default:
		that.active = that.active.Opponent()
	}

	return nil
}

func (that *Game) IsPlaceable(x, y int) bool {
	return that.board.InBounds(x, y) && that.board.At(x, y).IsEmpty()
}

// CurrentPlayerLabel is the side to move. Once the game is over it keeps naming the last mover.
func (that *Game) CurrentPlayerLabel() string {
	return that.label(that.active)
}

func (that *Game) TurnCount() int {
	return that.turns
}

func (that *Game) Status() entity.Status {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status.IsTerminal()
}

func (that *Game) HasWinner() bool {
	return that.status == entity.StatusWon
}

func (that *Game) WinnerLabel() (string, error) {
	switch that.status {
	case entity.StatusInProgress:
		return "", apperror.ErrGameNotFinished
	case entity.StatusDrawn:
		return "", apperror.ErrNoWinner
	default:
		return that.label(that.winner), nil
	}
}

func (that *Game) Width() int {
	return that.settings.Width
}

func (that *Game) Height() int {
	return that.settings.Height
}

func (that *Game) StrikeLength() int {
	return that.settings.StrikeLength
}

func (that *Game) Settings() Settings {
	return that.settings
}

// Cell reports the owner of (x, y); off-board positions read as empty.
func (that *Game) Cell(x, y int) entity.Cell {
	return that.board.At(x, y)
}

func (that *Game) label(cell entity.Cell) string {
	if cell == entity.CellPlayer2 {
		return that.settings.Player2Label
	}

	return that.settings.Player1Label
}
