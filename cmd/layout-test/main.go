// layout-test is a testbed for the grid layout system. It prints the solved
// placements and the cell rectangles each block gets at a range of terminal
// sizes, or opens the board for manual hover checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/preset"
	"github.com/drake/bento/ui/tui"
	"github.com/drake/bento/ui/tui/layout"
)

// sizes covers a cramped terminal, the classic 80x24 and a roomy one.
var sizes = [][2]int{{40, 12}, {80, 24}, {120, 40}, {200, 60}}

func main() {
	scenario := flag.String("scenario", "default", "Layout scenario (default, flows, sizes, interactive)")
	flag.Parse()

	if err := runScenario(context.Background(), os.Stdout, *scenario); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runScenario(ctx context.Context, out io.Writer, scenario string) error {
	switch scenario {
	case "default":
		return printPlacements(out, preset.Bento())
	case "flows":
		sparse := preset.Bento()
		dense := preset.Bento()
		dense.Template.Flow = grid.FlowRowDense
		if err := printPlacements(out, sparse); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return printPlacements(out, dense)
	case "sizes":
		return printSizes(out, preset.Tiling())
	case "interactive":
		return tui.Run(ctx, preset.Tiling())
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}
}

func printPlacements(out io.Writer, l grid.Layout) error {
	tiling, err := grid.Solve(l)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "flow %s\n", l.Template.Flow)
	for _, p := range tiling.Placements() {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprint(out, tiling)
	return tiling.Check()
}

func printSizes(out io.Writer, tiling *grid.Tiling) error {
	engine := layout.NewEngine(tiling)
	for _, sz := range sizes {
		engine.SetSize(sz[0], sz[1])
		rects := engine.Calculate(1)

		fmt.Fprintf(out, "%dx%d\n", sz[0], sz[1])
		for i, p := range tiling.Placements() {
			r := rects[i]
			fmt.Fprintf(out, "  %-26s x=%-3d y=%-3d w=%-3d h=%-3d\n",
				p.Title, r.X, r.Y, r.Width, r.Height)
		}
		fmt.Fprintln(out, strings.Repeat("-", 60))
	}
	return nil
}
