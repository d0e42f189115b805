package game

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

const (
	DefaultWidth        = 3
	DefaultHeight       = 3
	DefaultStrikeLength = 3
	DefaultPlayer1Label = "X"
	DefaultPlayer2Label = "O"
)

// Settings describes a game before it is built.
type Settings struct {
	Width        int
	Height       int
	StrikeLength int
	Player1Label string
	Player2Label string
}

func DefaultSettings() Settings {
	return Settings{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		StrikeLength: DefaultStrikeLength,
		Player1Label: DefaultPlayer1Label,
		Player2Label: DefaultPlayer2Label,
	}
}

// Validate checks dimensions, then the strike length, then both labels.
func (that Settings) Validate() error {
	if that.Width < 1 || that.Height < 1 {
		return fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimension, that.Width, that.Height)
	}

	if that.StrikeLength < 1 || that.StrikeLength > min(that.Width, that.Height) {
		return fmt.Errorf("%w: %d on %dx%d board", apperror.ErrInvalidStrikeLength, that.StrikeLength, that.Width, that.Height)
	}

	if isBlank(that.Player1Label) {
		return fmt.Errorf("%w: player 1", apperror.ErrInvalidPlayerLabel)
	}

	if isBlank(that.Player2Label) {
		return fmt.Errorf("%w: player 2", apperror.ErrInvalidPlayerLabel)
	}

	return nil
}

func isBlank(label string) bool {
	return strings.TrimSpace(label) == ""
}
