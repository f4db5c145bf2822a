package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &Options{Mode: ModeInteractive, LogLevel: slog.LevelDebug}, opts)
}

func TestParseModes(t *testing.T) {
	opts, _, err := Parse([]string{"-print", "-size", "100x40", "-hover", "5", "grid.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, ModePrint, opts.Mode)
	require.Equal(t, 100, opts.Width)
	require.Equal(t, 40, opts.Height)
	require.Equal(t, 5, opts.Hover)
	require.Equal(t, "grid.hcl", opts.GridPath)

	opts, _, err = Parse([]string{"-png", "out.png", "-dense", "-grid", "a.hcl", "-log-level", "warn"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, ModePNG, opts.Mode)
	require.Equal(t, "out.png", opts.PNGPath)
	require.True(t, opts.Dense)
	require.Equal(t, "a.hcl", opts.GridPath)
	require.Equal(t, slog.LevelWarn, opts.LogLevel)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, opts)
	require.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"exclusive modes", []string{"-print", "-png", "x.png"}, "mutually exclusive"},
		{"bad size", []string{"-size", "80"}, "want WxH"},
		{"zero size", []string{"-size", "0x10"}, "positive"},
		{"bad level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"two files", []string{"a.hcl", "b.hcl"}, "at most one grid file"},
		{"flag and positional grid", []string{"-grid", "a.hcl", "b.hcl"}, "-grid and a GRID_FILE argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tt.want)
		})
	}
}
