// Package commands implements the gridscan CLI's subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gridscan",
	Short: "Parallel grid-accelerated DBSCAN clustering",
	Long: `gridscan runs parallel, grid-accelerated DBSCAN clustering over 2D
point sets.

  gridscan generate   synthesize a point file (uniform or blob layout)
  gridscan cluster    cluster a point file, optionally writing a CSV or snapshot
  gridscan bench      run the clustering core across a size/parameter matrix
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(benchCmd)
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
