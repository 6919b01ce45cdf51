package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anluren/smart-buf/pkg/cli"
	"github.com/Anluren/smart-buf/pkg/smartbuf"
)

var (
	benchFile       string
	benchIterations int
	benchSizes      string
	benchOutput     string
	benchJSON       bool
)

// BenchRequest configures a benchmark run. It is normally loaded from a
// YAML or JSON file via -f; explicit flags override file values.
type BenchRequest struct {
	Iterations int   `yaml:"iterations" json:"iterations"`
	Sizes      []int `yaml:"sizes" json:"sizes"`
}

// BenchResult is one measured case.
type BenchResult struct {
	Case       string `yaml:"case" json:"case"`
	Size       int    `yaml:"size" json:"size"`
	Iterations int    `yaml:"iterations" json:"iterations"`
	Total      string `yaml:"total" json:"total"`
	PerOp      string `yaml:"per_op" json:"per_op"`
}

// Sinks keep the timed loops from being optimized away.
var (
	benchSinkByte byte
	benchSinkBuf  *smartbuf.Buffer[smartbuf.Default]
	benchSinkRaw  []byte
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure construction, copy and access costs",
	Long: `Measure the cost of constructing, cloning and accessing buffers.

For every size the same construct-and-touch loop runs three ways: with
the automatic strategy, forced onto the heap, and against a plain make
baseline. Clone and modulo-indexed access loops follow.

Request file format (YAML or JSON):
  iterations: 200000
  sizes: [16, 128]

Examples:
  smartbuf bench
  smartbuf bench -f bench.yaml -o results.yaml
  echo '{"iterations":50000,"sizes":[32]}' | smartbuf bench -f - --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req BenchRequest
		if benchFile == "-" {
			if err := cli.LoadRequestFromStdin(&req); err != nil {
				return err
			}
		} else if benchFile != "" {
			if err := cli.LoadRequest(benchFile, &req); err != nil {
				return err
			}
		}

		if req.Iterations == 0 || cmd.Flags().Changed("iterations") {
			req.Iterations = benchIterations
		}
		if len(req.Sizes) == 0 || cmd.Flags().Changed("sizes") {
			sizes, err := parseSizes(benchSizes)
			if err != nil {
				return err
			}
			req.Sizes = sizes
		}

		if req.Iterations < 1 {
			return fmt.Errorf("iterations must be at least 1, got %d", req.Iterations)
		}
		for _, size := range req.Sizes {
			if size < 1 {
				return fmt.Errorf("bench sizes must be at least 1, got %d", size)
			}
		}

		results := make([]BenchResult, 0, len(req.Sizes)*5)
		for _, size := range req.Sizes {
			results = append(results, benchSize(size, req.Iterations)...)
		}

		format := cli.FormatYAML
		if benchJSON {
			format = cli.FormatJSON
		}
		return cli.Output(results, cli.OutputOptions{
			Format: format,
			File:   benchOutput,
		})
	},
}

// benchSize runs all cases for one size.
func benchSize(size, iterations int) []BenchResult {
	last := size - 1

	results := []BenchResult{
		measure("construct/auto", size, iterations, func(i int) {
			b := smartbuf.NewDefault(size)
			b.Set(0, byte(i))
			b.Set(last, byte(i+1))
			benchSinkByte = b.At(0)
		}),
		measure("construct/heap", size, iterations, func(i int) {
			b := smartbuf.NewHeap(size)
			b.Set(0, byte(i))
			b.Set(last, byte(i+1))
			benchSinkByte = b.At(0)
		}),
		measure("construct/make", size, iterations, func(i int) {
			raw := make([]byte, size)
			raw[0] = byte(i)
			raw[last] = byte(i + 1)
			benchSinkRaw = raw
		}),
	}

	src := smartbuf.NewDefault(size)
	src.Fill(0xAA)
	results = append(results, measure("clone", size, iterations, func(i int) {
		benchSinkBuf = src.Clone()
	}))

	access := smartbuf.NewDefault(size)
	results = append(results, measure("access", size, iterations, func(i int) {
		access.Set(i%size, byte(i))
		benchSinkByte += access.At(i % size)
	}))

	return results
}

// measure times iterations of op and formats the result.
func measure(name string, size, iterations int, op func(i int)) BenchResult {
	slog.Debug("running case", "case", name, "size", size, "iterations", iterations)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		op(i)
	}
	total := time.Since(start)

	return BenchResult{
		Case:       name,
		Size:       size,
		Iterations: iterations,
		Total:      cli.FormatDuration(total),
		PerOp:      cli.FormatDuration(total / time.Duration(iterations)),
	}
}

func init() {
	benchCmd.Flags().StringVarP(&benchFile, "file", "f", "", "request file (YAML or JSON; '-' for stdin)")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 200000, "iterations per case")
	benchCmd.Flags().StringVar(&benchSizes, "sizes", "16,128", "comma-separated sizes to measure")
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "", "output file (default: stdout)")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "output as JSON (for piping)")

	rootCmd.AddCommand(benchCmd)
}
