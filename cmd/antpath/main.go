// Command antpath runs the pheromone route search from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/antpath/config"
)

// Exit codes.
const (
	exitFailure       = 1
	exitConfiguration = 2
)

// main is the entrypoint for the antpath application.
func main() {
	// Minimal logger until the root command applies --log-level.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// run builds the command tree and executes it with args.
func run(outW, errW io.Writer, args []string) error {
	root := newRootCmd(outW, errW)
	root.SetArgs(args)

	return root.Execute()
}

// exitCode maps configuration errors to a distinct status.
func exitCode(err error) int {
	if config.IsConfigurationError(err) {
		return exitConfiguration
	}

	return exitFailure
}

// newLogger creates a slog.Logger writing text records to w.
func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
