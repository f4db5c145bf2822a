package grid

import "math"

// Rect is an integer rectangle; X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// Segment is one resolved track along an axis.
type Segment struct {
	Offset int
	Size   int
}

// End returns the offset just past the segment.
func (s Segment) End() int { return s.Offset + s.Size }

// Split distributes length over fr-weighted tracks separated by gap.
//
// The gaps come off the top; the rest is cut at rounded cumulative edges so
// any run of adjacent tracks is within one unit of its exact share and the
// tracks always add up to the free length.
func Split(length, gap int, weights []float64) []Segment {
	n := len(weights)
	if n == 0 {
		return nil
	}
	free := max(length-gap*(n-1), 0)
	total := sum(weights)

	segs := make([]Segment, n)
	var cum float64
	prevEdge, offset := 0, 0
	for i, w := range weights {
		cum += w
		edge := roundEdge(float64(free) * cum / total)
		if i == n-1 {
			edge = free
		}
		segs[i] = Segment{Offset: offset, Size: edge - prevEdge}
		offset += edge - prevEdge + gap
		prevEdge = edge
	}
	return segs
}

// roundEdge rounds half to even after snapping away float noise, so two
// edges that sum to the free length tie in opposite directions and spans
// with equal weight keep equal size.
func roundEdge(x float64) int {
	snapped := math.Round(x*1e6) / 1e6
	return int(math.RoundToEven(snapped))
}

// Resolve maps every placement onto bounds, in document order. Gaps between
// tracks a block spans belong to the block.
func (t *Tiling) Resolve(bounds Rect, gapX, gapY int) []Rect {
	cols := Split(bounds.Width, gapX, t.template.Columns)
	rows := Split(bounds.Height, gapY, t.template.Rows)

	rects := make([]Rect, len(t.placements))
	for i, p := range t.placements {
		x0, x1 := cols[p.Col].Offset, cols[p.ColEnd()-1].End()
		y0, y1 := rows[p.Row].Offset, rows[p.RowEnd()-1].End()
		rects[i] = Rect{
			X:      bounds.X + x0,
			Y:      bounds.Y + y0,
			Width:  x1 - x0,
			Height: y1 - y0,
		}
	}
	return rects
}
