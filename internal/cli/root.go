package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/inarow/internal"
	"github.com/rocketscienceinc/inarow/internal/config"
)

// Version is replaced at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// RootOptions holds the flags of the root command.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Rounds     int
}

// NewRootCommand creates the inarow command. Running it without a subcommand starts a console session.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "inarow",
		Short:         "N-in-a-row board game",
		Long:          "Two players take turns on a configurable board; the first to line up enough marks wins.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "config.yml", "path to the config file")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 0, "number of games to play, 0 plays until the input ends; overrides the config")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(Version)
		},
	}
}

func runGame(cmd *cobra.Command, opts *RootOptions) error {
	conf, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitConfigError, "failed to load config", err)
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = opts.LogLevel
	}

	if cmd.Flags().Changed("rounds") {
		if opts.Rounds < 0 {
			return NewExitError(ExitConfigError, fmt.Sprintf("invalid rounds %d: must not be negative", opts.Rounds))
		}
		conf.Console.Rounds = opts.Rounds
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), conf.LogLevel)
	if err != nil {
		return WrapExitError(ExitConfigError, "failed to create logger", err)
	}

	if err = application.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return WrapExitError(ExitFailure, "app run failed", err)
	}

	return nil
}
