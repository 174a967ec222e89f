package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the writers and logger shared by every subcommand.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	logLevel string
	noColor  bool
}

// newRootCmd returns the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "antpath",
		Short: "Ant colony route search over a small complete graph",
		Long: `antpath searches for a short closed tour with a colony of simulated ants.

Each iteration every ant builds a route from the start node, choosing the next
node by roulette-wheel selection over a shared pheromone table. Short routes
deposit more pheromone, the table evaporates, and after a fixed number of
iterations the route-frequency table is printed.

Without --config the built-in four-node instance is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(a.logLevel, a.errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored text output")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newRoutesCmd(a))
	root.AddCommand(newInitConfigCmd(a))
	root.AddCommand(newVersionCmd(a))

	return root
}
