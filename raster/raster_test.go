package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/preset"
)

func blockRects(t *testing.T, opts Options) []grid.Rect {
	t.Helper()
	bounds := grid.Rect{
		X:      opts.Padding,
		Y:      opts.Padding,
		Width:  opts.Width - 2*opts.Padding,
		Height: opts.Height - 2*opts.Padding,
	}
	return preset.Tiling().Resolve(bounds, opts.Gap, opts.Gap)
}

func TestRenderDefaultBoard(t *testing.T) {
	opts := DefaultOptions()
	img, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 896, 896), img.Bounds())

	// Padding stays background.
	require.Equal(t, opts.Background, img.NRGBAAt(4, 4))

	rects := blockRects(t, opts)
	for i, r := range rects {
		// Left edge, vertically centered: inside the tile, clear of the label.
		at := img.NRGBAAt(r.X+5, r.Y+r.Height/2)
		require.Equalf(t, opts.Block, at, "block %d body", i+1)

		// The very corner is cut by the radius.
		require.NotEqualf(t, opts.Block, img.NRGBAAt(r.X, r.Y), "block %d corner", i+1)
	}

	// Middle of the gap between columns 1 and 2 on row 2.
	two, three := rects[1], rects[2]
	gapX := (two.Right() + three.X) / 2
	require.Equal(t, opts.Background, img.NRGBAAt(gapX, two.Y+two.Height/2))
}

func TestRenderDrawsLabels(t *testing.T) {
	opts := DefaultOptions()
	img, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)

	for i, r := range blockRects(t, opts) {
		ink := 0
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if img.NRGBAAt(x, y) == opts.Text {
					ink++
				}
			}
		}
		require.Positivef(t, ink, "block %d has no label pixels", i+1)
	}
}

func TestRenderHoverScalesTile(t *testing.T) {
	opts := DefaultOptions()
	five := blockRects(t, opts)[4]
	probe := image.Pt(five.X-1, five.Y+five.Height/2)

	flat, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)
	require.NotEqual(t, opts.Block, flat.NRGBAAt(probe.X, probe.Y))

	opts.Hover = 5
	raised, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)
	require.Equal(t, opts.Block, raised.NRGBAAt(probe.X, probe.Y))
}

func TestRenderWithoutShadow(t *testing.T) {
	opts := DefaultOptions()
	opts.Shadow = false
	img, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)

	// Without the shadow the cut corner shows plain background.
	r := blockRects(t, opts)[0]
	require.Equal(t, opts.Background, img.NRGBAAt(r.X, r.Y))
}

func TestRenderTooSmall(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 40, 40
	_, err := Render(context.Background(), preset.Tiling(), opts)
	require.ErrorIs(t, err, ErrTooSmall)
}

func TestRenderRejectsZeroWidthTrack(t *testing.T) {
	// Four columns over four pixels: cumulative rounding leaves column 2
	// without a pixel even though the track count fits.
	opts := DefaultOptions()
	opts.Width, opts.Height = 4, 200
	opts.Padding, opts.Gap = 0, 0

	_, err := Render(context.Background(), preset.Tiling(), opts)
	require.ErrorIs(t, err, ErrTooSmall)
	require.Contains(t, err.Error(), "block 3")
}

func TestRenderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, preset.Tiling(), DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestEncodeRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 200
	opts.Padding, opts.Gap, opts.Radius = 4, 4, 6

	img, err := Render(context.Background(), preset.Tiling(), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))

	decoded, err := imaging.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRoundedRectCoverage(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	img := roundedRect(40, 40, 10, c)

	require.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	require.Equal(t, c, img.NRGBAAt(20, 20))
	require.Equal(t, c, img.NRGBAAt(0, 20))

	square := roundedRect(4, 4, 0, c)
	require.Equal(t, c, square.NRGBAAt(0, 0))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#9da0a1")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x9d, G: 0xa0, B: 0xa1, A: 0xff}, c)

	c, err = ParseHex("fff")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, err = ParseHex("#ABCDEF")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}, c)

	for _, bad := range []string{"#12345", "#zzzzzz", "#12345g", "#1234567", ""} {
		_, err = ParseHex(bad)
		require.Errorf(t, err, "ParseHex(%q)", bad)
	}
}
