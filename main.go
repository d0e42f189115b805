package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/inarow/internal/cli"
)

// main - is the entry point of the application. Config, logger and the game session are set up by the root command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(cli.ExitFailure)
		}
	}()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
