package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "smartbuf",
	Short: "Inspect and exercise fixed-size smart buffers",
	Long: `smartbuf - inspect and exercise fixed-size smart buffers.

A smart buffer stores its bytes either inline in the handle or in a
single heap allocation. The strategy follows from the requested size,
rounded up to a multiple of 8, measured against the region threshold
(32 bytes by default).

Examples:
  # Show where sizes land relative to the default threshold
  smartbuf layout --sizes 1,8,32,33,1024

  # Same table against a 64-byte threshold, as JSON
  smartbuf layout --threshold 64 --format json

  # Walk through access, copy and move semantics
  smartbuf demo

  # Measure construction and copy costs from a request file
  smartbuf bench -f bench.yaml -o results.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
