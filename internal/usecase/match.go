package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/game"
)

const (
	fallbackWidth  = 3
	fallbackHeight = 3
)

// MatchRequest holds raw, possibly invalid, settings typed by a player.
type MatchRequest struct {
	Width        int
	Height       int
	StrikeLength int
	Player1      string
	Player2      string
}

// Match is a single game tagged with a session ID for logging.
type Match struct {
	ID   string
	Game *game.Game
}

type MatchUseCase struct {
	logger *slog.Logger
}

func NewMatchUseCase(logger *slog.Logger) *MatchUseCase {
	return &MatchUseCase{
		logger: logger.With("component", "match"),
	}
}

// Normalize replaces a non-positive width or height with 3 and caps the strike
// length at the shorter board side. A strike length below 1 is left for the engine to reject.
func Normalize(req MatchRequest) MatchRequest {
	if req.Width < 1 {
		req.Width = fallbackWidth
	}

	if req.Height < 1 {
		req.Height = fallbackHeight
	}

	if maxStrike := min(req.Width, req.Height); req.StrikeLength > maxStrike {
		req.StrikeLength = maxStrike
	}

	return req
}

func (that *MatchUseCase) StartMatch(ctx context.Context, req MatchRequest) (*Match, error) {
	req = Normalize(req)

	newGame, err := game.NewBuilder().
		Size(req.Width, req.Height).
		StrikeLength(req.StrikeLength).
		Players(req.Player1, req.Player2).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	match := &Match{
		ID:   uuid.NewString(),
		Game: newGame,
	}

	that.logger.InfoContext(ctx, "match started",
		"matchID", match.ID,
		"width", req.Width,
		"height", req.Height,
		"strikeLength", req.StrikeLength,
	)

	return match, nil
}

func (that *MatchUseCase) MakeTurn(ctx context.Context, match *Match, x, y int) error {
	log := that.logger.With("method", "MakeTurn", "matchID", match.ID)

	player := match.Game.CurrentPlayerLabel()
	if err := match.Game.PlaceCell(x, y); err != nil {
		log.WarnContext(ctx, "turn rejected", "player", player, "x", x, "y", y, "error", err)
		return fmt.Errorf("failed to make turn: %w", err)
	}

	log.DebugContext(ctx, "turn made", "player", player, "x", x, "y", y, "turn", match.Game.TurnCount())

	if match.Game.IsFinished() {
		log.InfoContext(ctx, "match finished", "status", match.Game.Status().String(), "turns", match.Game.TurnCount())
	}

	return nil
}

// Summary describes a finished match: "Winner is <label>" or "Draw".
func (that *MatchUseCase) Summary(match *Match) (string, error) {
	winner, err := match.Game.WinnerLabel()
	switch {
	case errors.Is(err, apperror.ErrNoWinner):
		return "Draw", nil
	case err != nil:
		return "", fmt.Errorf("failed to get winner: %w", err)
	default:
		return "Winner is " + winner, nil
	}
}
