package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/inarow/internal/config"
	"github.com/rocketscienceinc/inarow/internal/usecase"
	"github.com/rocketscienceinc/inarow/transport/console"
)

// RunApp - runs console sessions until the input ends or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchUseCase := usecase.NewMatchUseCase(logger)

	// run console session
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console session", "rounds", conf.Console.Rounds)
		session := console.New(logger, matchUseCase, conf.Console, in, out)
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case err := <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}

		log.Info("Console session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
