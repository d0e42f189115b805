package apperror

import "errors"

var (
	ErrInvalidDimension    = errors.New("board width and height must be greater than 0")
	ErrInvalidStrikeLength = errors.New("strike length must be > 0 and <= min(width, height)")
	ErrInvalidPlayerLabel  = errors.New("player label must be a visible char sequence")

	ErrGameFinished        = errors.New("game is already finished")
	ErrPositionOutOfBounds = errors.New("position is out of board bounds")
	ErrCellOccupied        = errors.New("cell is already occupied")

	ErrGameNotFinished = errors.New("game is not finished")
	ErrNoWinner        = errors.New("game has no winner")
)
