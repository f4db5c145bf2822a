package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/drake/bento/config"
	"github.com/drake/bento/debug"
	"github.com/drake/bento/grid"
	"github.com/drake/bento/internal/cli"
	"github.com/drake/bento/internal/ctxlog"
	"github.com/drake/bento/raster"
	"github.com/drake/bento/ui/tui"
)

// Default sizes for the non-interactive surfaces.
const (
	printWidth  = 80
	printHeight = 24
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, out io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, closeLog, err := debug.NewLogger(config.LogFile(), opts.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer closeLog()
	ctx = ctxlog.WithLogger(ctx, logger)

	tiling, err := loadTiling(ctx, opts)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case cli.ModePrint:
		w, h := sizeOr(opts, printWidth, printHeight)
		fmt.Fprintln(out, tui.Frame(ctx, tiling, w, h, opts.Hover))
		return nil

	case cli.ModePNG:
		return writePNG(ctx, tiling, opts)

	default:
		return tui.Run(ctx, tiling)
	}
}

func loadTiling(ctx context.Context, opts *cli.Options) (*grid.Tiling, error) {
	logger := ctxlog.FromContext(ctx)

	layout, source, err := config.ResolveGrid(ctx, opts.GridPath)
	if err != nil {
		return nil, err
	}
	if opts.Dense {
		layout.Template.Flow = grid.FlowRowDense
	}

	tiling, err := grid.Solve(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to place %s grid: %w", source, err)
	}
	if err := tiling.Check(); err != nil {
		return nil, fmt.Errorf("%s grid does not tile: %w", source, err)
	}

	for _, p := range tiling.Placements() {
		logger.Debug("Placed block.", "placement", p.String(), "title", p.Title)
	}
	return tiling, nil
}

func writePNG(ctx context.Context, tiling *grid.Tiling, opts *cli.Options) error {
	ro := raster.DefaultOptions()
	ro.Width, ro.Height = sizeOr(opts, ro.Width, ro.Height)
	ro.Hover = opts.Hover

	img, err := raster.Render(ctx, tiling, ro)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.PNGPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.PNGPath, err)
	}
	if err := raster.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", opts.PNGPath, err)
	}
	return f.Close()
}

func sizeOr(opts *cli.Options, w, h int) (int, int) {
	if opts.Width > 0 && opts.Height > 0 {
		return opts.Width, opts.Height
	}
	return w, h
}
