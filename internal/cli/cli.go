// Package cli parses command-line arguments and maps usage problems to exit
// codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode selects the output surface.
type Mode int

const (
	ModeInteractive Mode = iota
	ModePrint
	ModePNG
)

// Options is the parsed command line.
type Options struct {
	Mode     Mode
	GridPath string
	Dense    bool
	Width    int // 0 means the surface default
	Height   int
	PNGPath  string
	Hover    int
	LogLevel slog.Level
}

// Parse processes command-line arguments. It returns the options, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("bento", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bento - draws the nine-block bento grid.

Usage:
  bento [options] [GRID_FILE]

Arguments:
  GRID_FILE
    Optional HCL grid file. Defaults to the user's grid.hcl, then the
    built-in layout.

Options:
`)
		flagSet.PrintDefaults()
	}

	gridFlag := flagSet.String("grid", "", "Path to an HCL grid file.")
	denseFlag := flagSet.Bool("dense", false, "Backfill earlier holes when auto-placing (grid-auto-flow: row dense).")
	printFlag := flagSet.Bool("print", false, "Print one frame to stdout instead of starting the interactive view.")
	pngFlag := flagSet.String("png", "", "Write the board as a PNG image to this path.")
	sizeFlag := flagSet.String("size", "", "Output size as WxH (cells for -print, pixels for -png).")
	hoverFlag := flagSet.Int("hover", 0, "Draw this block as hovered in -print and -png output.")
	logLevelFlag := flagSet.String("log-level", "debug", "Debug log level when BENTO_DEBUG=1. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{
		GridPath: *gridFlag,
		Dense:    *denseFlag,
		PNGPath:  *pngFlag,
		Hover:    *hoverFlag,
	}
	switch {
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: 2, Message: "at most one grid file may be given"}
	case flagSet.NArg() == 1 && opts.GridPath != "":
		return nil, false, &ExitError{Code: 2, Message: "-grid and a GRID_FILE argument are mutually exclusive"}
	case flagSet.NArg() == 1:
		opts.GridPath = flagSet.Arg(0)
	}

	switch {
	case *printFlag && *pngFlag != "":
		return nil, false, &ExitError{Code: 2, Message: "-print and -png are mutually exclusive"}
	case *pngFlag != "":
		opts.Mode = ModePNG
	case *printFlag:
		opts.Mode = ModePrint
	}

	if *sizeFlag != "" {
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		opts.Width, opts.Height = w, h
	}

	if err := opts.LogLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return opts, false, nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: want positive WxH", s)
	}
	return w, h, nil
}
