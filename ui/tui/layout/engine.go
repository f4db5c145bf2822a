package layout

import "github.com/drake/bento/grid"

// Engine maps a solved tiling onto terminal cells and answers hit tests.
type Engine struct {
	width  int
	height int

	Margin int // Blank cells around the board
	GapX   int // Columns between tracks
	GapY   int // Lines between tracks

	tiling *grid.Tiling
	rects  []grid.Rect
}

// NewEngine creates a new layout engine for tiling.
func NewEngine(tiling *grid.Tiling) *Engine {
	return &Engine{
		tiling: tiling,
		Margin: 1,
		GapX:   2,
		GapY:   1,
	}
}

// SetSize sets the total available size.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the current height.
func (e *Engine) Height() int {
	return e.height
}

// Calculate resolves block rects in the area left after reserving footer
// lines at the bottom. Rects are in placement order.
func (e *Engine) Calculate(footer int) []grid.Rect {
	bounds := grid.Rect{Width: e.width, Height: e.height - footer}.Inset(e.Margin)
	if bounds.IsEmpty() {
		e.rects = make([]grid.Rect, len(e.tiling.Placements()))
		return e.rects
	}
	e.rects = e.tiling.Resolve(bounds, e.GapX, e.GapY)
	return e.rects
}

// Rects returns the rects from the last Calculate.
func (e *Engine) Rects() []grid.Rect {
	return e.rects
}

// HitTest returns the ID of the block under (x, y), if any.
func (e *Engine) HitTest(x, y int) (int, bool) {
	placements := e.tiling.Placements()
	for i, r := range e.rects {
		if r.Contains(x, y) {
			return placements[i].ID, true
		}
	}
	return 0, false
}
