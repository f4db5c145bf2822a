// Package raster draws a solved tiling as an image: rounded gray tiles with
// centered labels and a soft drop shadow, optionally with one tile raised by
// the hover scale.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/internal/ctxlog"
	"github.com/drake/bento/ui/style"
)

// ErrTooSmall is returned when the canvas cannot give every block a pixel.
var ErrTooSmall = errors.New("raster: canvas too small for grid")

// Options controls the output image.
type Options struct {
	Width, Height int
	Padding       int     // Blank border around the board
	Gap           int     // Space between tracks, both axes
	Radius        float64 // Tile corner radius
	Block         color.NRGBA
	Background    color.NRGBA
	Text          color.NRGBA
	Shadow        bool
	Hover         int     // ID of the raised tile; 0 for none
	Scale         float64 // Size factor of the raised tile
	LabelScale    int     // Integer zoom applied to the 7x13 label font
}

// DefaultOptions mirrors the reference board: a 896px square, 16px padding,
// 12px gaps, 20px corners, #9da0a1 tiles on white with white labels.
func DefaultOptions() Options {
	return Options{
		Width:      896,
		Height:     896,
		Padding:    16,
		Gap:        12,
		Radius:     20,
		Block:      mustHex(style.BlockGray),
		Background: mustHex("#ffffff"),
		Text:       mustHex(style.BlockText),
		Shadow:     true,
		Scale:      1.01,
		LabelScale: 2,
	}
}

// Render draws tiling into a new image.
func Render(ctx context.Context, tiling *grid.Tiling, opts Options) (*image.NRGBA, error) {
	logger := ctxlog.FromContext(ctx)

	bounds := grid.Rect{
		X:      opts.Padding,
		Y:      opts.Padding,
		Width:  opts.Width - 2*opts.Padding,
		Height: opts.Height - 2*opts.Padding,
	}
	needW := tiling.Cols() + opts.Gap*(tiling.Cols()-1)
	needH := tiling.Rows() + opts.Gap*(tiling.Rows()-1)
	if bounds.Width < needW || bounds.Height < needH {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d inside padding",
			ErrTooSmall, bounds.Width, bounds.Height, needW, needH)
	}

	rects := tiling.Resolve(bounds, opts.Gap, opts.Gap)
	placements := tiling.Placements()
	for i, r := range rects {
		if r.IsEmpty() {
			return nil, fmt.Errorf("%w: block %d resolves to %dx%d",
				ErrTooSmall, placements[i].ID, r.Width, r.Height)
		}
	}

	// The raised tile grows around its center.
	for i, p := range placements {
		if p.ID == opts.Hover && opts.Scale > 0 {
			rects[i] = scaleRect(rects[i], opts.Scale)
		}
	}

	dst := imaging.New(opts.Width, opts.Height, opts.Background)

	if opts.Shadow {
		drawShadow(dst, rects, opts.Radius)
	}

	for i, p := range placements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := rects[i]
		tile := drawTile(r.Width, r.Height, opts.Radius, opts.Block, opts.Text, p.Label, opts.LabelScale)
		draw.Draw(dst, image.Rect(r.X, r.Y, r.Right(), r.Bottom()), tile, image.Point{}, draw.Over)
		logger.Debug("Drew tile.", "id", p.ID, "rect", r, "hover", p.ID == opts.Hover)
	}

	logger.Debug("Rendered board image.", "width", opts.Width, "height", opts.Height, "tiles", len(placements))
	return dst, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

func scaleRect(r grid.Rect, s float64) grid.Rect {
	w := int(math.Round(float64(r.Width) * s))
	h := int(math.Round(float64(r.Height) * s))
	return grid.Rect{
		X:      r.X - (w-r.Width)/2,
		Y:      r.Y - (h-r.Height)/2,
		Width:  w,
		Height: h,
	}
}

// drawShadow lays a faint blurred silhouette of every tile one pixel below
// it, the equivalent of a small CSS box-shadow.
func drawShadow(dst *image.NRGBA, rects []grid.Rect, radius float64) {
	b := dst.Bounds()
	layer := image.NewNRGBA(b)
	shade := color.NRGBA{A: 0x30}
	for _, r := range rects {
		mask := roundedRect(r.Width, r.Height, radius, shade)
		at := image.Rect(r.X, r.Y+1, r.Right(), r.Bottom()+1)
		draw.Draw(layer, at, mask, image.Point{}, draw.Over)
	}
	blurred := imaging.Blur(layer, 1.0)
	draw.Draw(dst, b, blurred, image.Point{}, draw.Over)
}

// roundedRect returns a w x h image filled with c inside a rounded
// rectangle, with anti-aliased corners and transparency outside.
func roundedRect(w, h int, radius float64, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	r := math.Min(radius, math.Min(float64(w), float64(h))/2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := coverage(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), r)
			if cov <= 0 {
				continue
			}
			px := c
			px.A = uint8(math.Round(float64(c.A) * cov))
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// coverage estimates how much of the pixel centered at (px, py) falls
// inside a w x h rounded rectangle with corner radius r.
func coverage(px, py, w, h, r float64) float64 {
	if r < 0.5 {
		return 1
	}
	cx := math.Max(r, math.Min(px, w-r))
	cy := math.Max(r, math.Min(py, h-r))
	d := math.Hypot(px-cx, py-cy)
	return math.Max(0, math.Min(1, r-d+0.5))
}
