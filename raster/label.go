package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawTile renders one tile: the rounded body with its label centered.
func drawTile(w, h int, radius float64, body, ink color.NRGBA, label string, zoom int) *image.NRGBA {
	tile := roundedRect(w, h, radius, body)
	if label == "" {
		return tile
	}

	glyphs := drawLabel(label, ink)
	gb := glyphs.Bounds()

	// Grow the label while it still fits with some breathing room.
	for z := max(zoom, 1); z > 1; z-- {
		if gb.Dx()*z <= w*3/4 && gb.Dy()*z <= h*3/4 {
			glyphs = imaging.Resize(glyphs, gb.Dx()*z, gb.Dy()*z, imaging.NearestNeighbor)
			break
		}
	}

	lb := glyphs.Bounds()
	if lb.Dx() > w || lb.Dy() > h {
		return tile
	}
	at := image.Pt((w-lb.Dx())/2, (h-lb.Dy())/2)
	draw.Draw(tile, lb.Add(at), glyphs, image.Point{}, draw.Over)
	return tile
}

// drawLabel sets s in the 7x13 bitmap face, struck twice one pixel apart
// for a bold weight, on a transparent background cropped to the text.
func drawLabel(s string, ink color.NRGBA) *image.NRGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	width := font.MeasureString(face, s).Ceil() + 1
	height := metrics.Height.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	for dx := 0; dx < 2; dx++ {
		d.Dot = fixed.P(dx, metrics.Ascent.Ceil())
		d.DrawString(s)
	}
	return img
}
