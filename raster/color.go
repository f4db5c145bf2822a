package raster

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#rrggbb" or "#rgb" (the "#" is optional) into an opaque
// color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("raster: invalid hex color %q", s)
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("raster: invalid hex color %q: %w", s, err)
	}
	// Sscanf stops early on a bad digit, so make sure every digit was read.
	if c.Hex() != "#"+h {
		return color.NRGBA{}, fmt.Errorf("raster: invalid hex color %q", s)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
