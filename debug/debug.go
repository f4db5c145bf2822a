// Package debug wires the optional diagnostics log.
package debug

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Enabled returns true if debug mode is active (BENTO_DEBUG=1).
func Enabled() bool {
	return os.Getenv("BENTO_DEBUG") == "1"
}

// NewLogger returns the logger the application should use while the
// terminal is owned by the UI. With debug mode off every record is
// discarded; with it on, records at level and above go to path as text.
// The returned close func is never nil.
func NewLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if !Enabled() {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}
