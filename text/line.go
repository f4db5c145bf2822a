// Package text holds width-aware helpers for terminal strings.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisibleLen returns the display width of s, ignoring ANSI codes.
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Truncate shortens plain text to fit width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a styled line with spaces up to width. Lines that are already
// wide enough are returned unchanged.
func PadRight(s string, width int) string {
	if n := width - VisibleLen(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Lines splits s into exactly height lines, padding with blanks or dropping
// the overflow.
func Lines(s string, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
