package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Anluren/smart-buf/pkg/cli"
	"github.com/Anluren/smart-buf/pkg/smartbuf"
)

var (
	layoutThreshold int
	layoutSizes     string
	layoutFormat    string
	layoutOutput    string
)

// defaultLayoutSizes walks the interesting sizes: each rounding step up to
// the default threshold, both sides of the 32/33 boundary, and a few large
// ones.
const defaultLayoutSizes = "1,5,8,9,15,16,17,24,32,33,40,64,65,128,1024,4096"

// layoutRow is one line of the layout report.
type layoutRow struct {
	Size      int    `yaml:"size" json:"size"`
	Actual    int    `yaml:"actual" json:"actual"`
	Padding   int    `yaml:"padding" json:"padding"`
	Threshold int    `yaml:"threshold" json:"threshold"`
	Strategy  string `yaml:"strategy" json:"strategy"`
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show storage layouts for a set of sizes",
	Long: `Show how requested sizes map to storage layouts.

Each size is rounded up to the next multiple of 8 and compared against
the threshold: sizes that fit stay inline in the handle, the rest get
one heap allocation.

Examples:
  smartbuf layout
  smartbuf layout --sizes 32,33 --threshold 32
  smartbuf layout --threshold 0 --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if layoutThreshold < 0 {
			return fmt.Errorf("threshold must be non-negative, got %d", layoutThreshold)
		}
		sizes, err := parseSizes(layoutSizes)
		if err != nil {
			return err
		}

		rows := make([]layoutRow, 0, len(sizes))
		for _, size := range sizes {
			l := smartbuf.LayoutOf(size, layoutThreshold)
			strategy := "heap"
			if l.Inline {
				strategy = "inline"
			}
			rows = append(rows, layoutRow{
				Size:      l.Size,
				Actual:    l.Actual,
				Padding:   l.Actual - l.Size,
				Threshold: l.Threshold,
				Strategy:  strategy,
			})
		}
		slog.Debug("computed layouts", "count", len(rows), "threshold", layoutThreshold)

		switch layoutFormat {
		case "table", "":
			return layoutTable(rows)
		case "yaml", "json":
			return cli.Output(rows, cli.OutputOptions{
				Format: cli.OutputFormat(layoutFormat),
				File:   layoutOutput,
			})
		default:
			return fmt.Errorf("unsupported format: %s (want table, yaml or json)", layoutFormat)
		}
	},
}

func layoutTable(rows []layoutRow) error {
	var w io.Writer = os.Stdout
	if layoutOutput != "" {
		f, err := os.Create(layoutOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		styles := cli.NewStyles(cli.DefaultTheme)
		fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Storage layouts (threshold %d)", layoutThreshold)))
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Actual),
			strconv.Itoa(r.Padding),
			r.Strategy,
		})
	}
	return cli.Table(w, []string{"SIZE", "ACTUAL", "PADDING", "STRATEGY"}, table)
}

// parseSizes parses a comma-separated size list.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("size must be non-negative, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func init() {
	layoutCmd.Flags().IntVar(&layoutThreshold, "threshold", smartbuf.DefaultThreshold, "inline/heap boundary in bytes")
	layoutCmd.Flags().StringVar(&layoutSizes, "sizes", defaultLayoutSizes, "comma-separated sizes to lay out")
	layoutCmd.Flags().StringVar(&layoutFormat, "format", "table", "output format (table, yaml, json)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(layoutCmd)
}
