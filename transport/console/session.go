package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/config"
	"github.com/rocketscienceinc/inarow/internal/game"
	"github.com/rocketscienceinc/inarow/internal/usecase"
)

var ErrMalformedInput = errors.New("malformed input")

type matchUseCase interface {
	StartMatch(ctx context.Context, req usecase.MatchRequest) (*usecase.Match, error)
	MakeTurn(ctx context.Context, match *usecase.Match, x, y int) error
	Summary(match *usecase.Match) (string, error)
}

// Session plays games over a text stream, one whitespace separated token per answer.
type Session struct {
	logger  *slog.Logger
	matches matchUseCase
	opts    config.Console

	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, matches matchUseCase, opts config.Console, in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		logger:  logger.With("component", "console"),
		matches: matches,
		opts:    opts,
		scanner: scanner,
		out:     out,
	}
}

// Run asks for the players once, then plays rounds until the configured limit or the end of input.
// Running out of input or typing garbage ends the session without an error.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	err := that.run(ctx)
	switch {
	case errors.Is(err, io.EOF):
		log.InfoContext(ctx, "input closed, session ended")
		return nil
	case errors.Is(err, ErrMalformedInput):
		that.printf("You messed up with keys. End.\n")
		log.WarnContext(ctx, "session ended on malformed input", "error", err)
		return nil
	case err != nil:
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

func (that *Session) run(ctx context.Context) error {
	player1, err := that.readWord("Set player 1: ")
	if err != nil {
		return err
	}

	player2, err := that.readWord("Set player 2: ")
	if err != nil {
		return err
	}

	for round := 0; that.opts.Rounds == 0 || round < that.opts.Rounds; round++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		match, err := that.startMatch(ctx, player1, player2)
		if err != nil {
			return err
		}

		if err = that.playMatch(ctx, match); err != nil {
			return err
		}
	}

	return nil
}

// startMatch keeps asking for board settings until the engine accepts them.
func (that *Session) startMatch(ctx context.Context, player1, player2 string) (*usecase.Match, error) {
	for {
		width, err := that.readInt("Set board width: ")
		if err != nil {
			return nil, err
		}

		height, err := that.readInt("Set board height: ")
		if err != nil {
			return nil, err
		}

		strike, err := that.readInt("Set strike length: ")
		if err != nil {
			return nil, err
		}

		match, err := that.matches.StartMatch(ctx, usecase.MatchRequest{
			Width:        width,
			Height:       height,
			StrikeLength: strike,
			Player1:      player1,
			Player2:      player2,
		})
		if isSettingsError(err) {
			that.printf("%v\n", err)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to start match: %w", err)
		}

		return match, nil
	}
}

func (that *Session) playMatch(ctx context.Context, match *usecase.Match) error {
	for !match.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.printBoard(match.Game)
		that.printf("%s turn\n", match.Game.CurrentPlayerLabel())

		x, y, err := that.readPlaceablePosition(match.Game)
		if err != nil {
			return err
		}

		if err = that.matches.MakeTurn(ctx, match, x, y); err != nil {
			return fmt.Errorf("failed to place cell: %w", err)
		}
	}

	that.printBoard(match.Game)

	summary, err := that.matches.Summary(match)
	if err != nil {
		return fmt.Errorf("failed to summarize match: %w", err)
	}

	that.printf("Finished. %s within %d turns\n", summary, match.Game.TurnCount())

	return nil
}

// readPlaceablePosition converts 1-based input to board coordinates and repeats until the cell is free.
func (that *Session) readPlaceablePosition(board *game.Game) (int, int, error) {
	for {
		x, err := that.readInt(fmt.Sprintf("X[1..%d]: ", board.Width()))
		if err != nil {
			return 0, 0, err
		}

		y, err := that.readInt(fmt.Sprintf("Y[1..%d]: ", board.Height()))
		if err != nil {
			return 0, 0, err
		}

		if board.IsPlaceable(x-1, y-1) {
			return x - 1, y - 1, nil
		}
	}
}

func (that *Session) readWord(prompt string) (string, error) {
	that.printf("%s", prompt)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return that.scanner.Text(), nil
}

func (that *Session) readInt(prompt string) (int, error) {
	word, err := that.readWord(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, word)
	}

	return value, nil
}

func (that *Session) printBoard(board *game.Game) {
	that.printf("%s\n", board.Render(that.opts.CellSeparator, that.opts.RowSeparator, that.opts.EmptyMarker))
}

func (that *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func isSettingsError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidDimension) ||
		errors.Is(err, apperror.ErrInvalidStrikeLength) ||
		errors.Is(err, apperror.ErrInvalidPlayerLabel)
}
