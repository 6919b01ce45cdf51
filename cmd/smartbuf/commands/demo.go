package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Anluren/smart-buf/pkg/cli"
	"github.com/Anluren/smart-buf/pkg/smartbuf"
)

var (
	demoWidth int
	demoDump  string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through construction, access, copy and move",
	Long: `Walk through the buffer lifecycle with live values: strategy
selection around the threshold, indexed access, logical fill versus
whole-region fill, clone independence, and move/restore of a handle.

Examples:
  smartbuf demo
  smartbuf demo --width 80
  smartbuf demo --dump region.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("rendering demo", "width", demoWidth)

		rawSec, raw := rawSection()
		f := cli.Frame{
			Styles: cli.NewStyles(cli.DefaultTheme),
			Title:  "smartbuf",
			Status: "demo",
			Sections: []cli.Section{
				strategySection(),
				accessSection(),
				paddingSection(),
				lifecycleSection(),
				rawSec,
			},
			Help: "smartbuf layout shows the full size table",
		}
		fmt.Println(f.Render(demoWidth))

		if demoDump != "" {
			if err := cli.OutputBytes(raw, demoDump); err != nil {
				return err
			}
			cli.PrintSuccess("wrote %s (%s)", demoDump, cli.FormatBytesInt(len(raw)))
		}
		return nil
	},
}

func strategySection() cli.Section {
	var lines []string
	for _, size := range []int{1, 8, 16, 32, 33, 1024} {
		lines = append(lines, smartbuf.LayoutOf(size, smartbuf.DefaultThreshold).String())
	}
	return cli.Section{Label: "Strategy", Lines: lines}
}

func accessSection() cli.Section {
	b := smartbuf.New32B()
	b.Set(0, 0xAA)
	b.Set(1, 0xBB)
	b.Set(31, 0xFF)
	lines := []string{
		b.String(),
		fmt.Sprintf("b[0]=%#04x b[1]=%#04x b[31]=%#04x", b.At(0), b.At(1), b.At(31)),
	}
	b.Fill(0x55)
	lines = append(lines, fmt.Sprintf("after Fill(0x55): b[10]=%#04x", b.At(10)))
	b.Clear()
	lines = append(lines, fmt.Sprintf("after Clear():    b[10]=%#04x", b.At(10)))
	return cli.Section{Label: "Access", Lines: lines}
}

func paddingSection() cli.Section {
	b := smartbuf.NewDefault(33) // rounds up to 40: 7 bytes of padding
	b.FillAll(0xFF)
	b.Fill(0x55)
	return cli.Section{
		Label: "Padding",
		Lines: []string{
			b.String(),
			fmt.Sprintf("Fill covers [0,%d); the padding [%d,%d) keeps its bytes", b.Size(), b.Size(), b.ActualSize()),
			fmt.Sprintf("tail after FillAll(0xff)+Fill(0x55): % x", b.Bytes()[30:40]),
		},
	}
}

func lifecycleSection() cli.Section {
	src := smartbuf.NewDefault(16)
	src.Fill(0x99)

	c := src.Clone()
	c.Set(0, 0x11)
	lines := []string{
		fmt.Sprintf("Clone:    src[0]=%#04x clone[0]=%#04x (independent)", src.At(0), c.At(0)),
	}

	m := smartbuf.Move(src)
	lines = append(lines, fmt.Sprintf("Move:     dst[0]=%#04x, source released: %v", m.At(0), src.Bytes() == nil))

	src.CopyFrom(m)
	lines = append(lines, fmt.Sprintf("CopyFrom: released handle restored, src[0]=%#04x", src.At(0)))
	return cli.Section{Label: "Lifecycle", Lines: lines}
}

func rawSection() (cli.Section, []byte) {
	b := smartbuf.New256B()
	msg := "Hello from a fixed-size buffer!"
	copy(b.Bytes(), msg)

	head := make([]byte, 5)
	n, _ := b.ReadAt(head, 0)

	sec := cli.Section{
		Label: "Raw",
		Lines: []string{
			fmt.Sprintf("copy():   region holds %q", string(b.Bytes()[:len(msg)])),
			fmt.Sprintf("ReadAt(): first %d bytes %q", n, string(head[:n])),
		},
	}
	return sec, b.Bytes()
}

func init() {
	demoCmd.Flags().IntVar(&demoWidth, "width", 100, "frame width in columns")
	demoCmd.Flags().StringVar(&demoDump, "dump", "", "write the raw demo region to a file")

	rootCmd.AddCommand(demoCmd)
}
