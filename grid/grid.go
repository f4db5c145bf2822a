// Package grid models a fixed-track weighted grid and places blocks into it
// by row-major auto-placement.
//
// A Layout declares column and row tracks with relative weights (fr units)
// and an ordered list of items that only state how many tracks they span.
// Solve turns that declaration into a Tiling: every item anchored at a
// concrete row and column, with occupancy tracked per cell.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoTracks    = errors.New("grid: template needs at least one column and one row")
	ErrBadWeight   = errors.New("grid: track weight must be a positive number")
	ErrSpanTooWide = errors.New("grid: item spans more tracks than the grid has")
	ErrOverflow    = errors.New("grid: no free region left for item")
	ErrDuplicateID = errors.New("grid: duplicate item id")
	ErrGap         = errors.New("grid: cell not covered by any item")
	ErrUnknownItem = errors.New("grid: unknown item id")
	ErrUnknownFlow = errors.New("grid: unknown auto-flow")
)

// WeightTolerance is the slack allowed when comparing summed track weights.
const WeightTolerance = 1e-9

// Flow selects how the auto-placement cursor moves.
type Flow int

const (
	// FlowRow never moves the cursor backwards, so an earlier hole stays
	// empty once a later item has been placed past it.
	FlowRow Flow = iota
	// FlowRowDense restarts every search at the first cell.
	FlowRowDense
)

// ParseFlow accepts the CSS spellings "row" and "row dense".
func ParseFlow(s string) (Flow, error) {
	switch s {
	case "", "row":
		return FlowRow, nil
	case "row dense", "dense":
		return FlowRowDense, nil
	}
	return FlowRow, fmt.Errorf("%w: %q", ErrUnknownFlow, s)
}

func (f Flow) String() string {
	if f == FlowRowDense {
		return "row dense"
	}
	return "row"
}

// Template describes the track sizes of the grid.
type Template struct {
	Columns []float64 // Relative column weights, left to right
	Rows    []float64 // Relative row weights, top to bottom
	Flow    Flow
}

// Validate reports whether every track has a usable weight.
func (t Template) Validate() error {
	if len(t.Columns) == 0 || len(t.Rows) == 0 {
		return ErrNoTracks
	}
	for i, w := range t.Columns {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: column %d has weight %v", ErrBadWeight, i+1, w)
		}
	}
	for i, w := range t.Rows {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: row %d has weight %v", ErrBadWeight, i+1, w)
		}
	}
	return nil
}

// Item is one block in document order. It declares only its extent.
type Item struct {
	ID      int
	Title   string // Tooltip text, e.g. "1. Full Header"
	Label   string // Text drawn inside the block
	ColSpan int
	RowSpan int
}

func (it Item) colSpan() int { return max(it.ColSpan, 1) }
func (it Item) rowSpan() int { return max(it.RowSpan, 1) }

// Layout is a complete grid declaration.
type Layout struct {
	Template Template
	Items    []Item
}

// Placement is an item anchored in the grid. Row and Col are 0-based.
type Placement struct {
	Item
	Row int
	Col int
}

// RowEnd returns the row just past the placement (exclusive).
func (p Placement) RowEnd() int { return p.Row + p.rowSpan() }

// ColEnd returns the column just past the placement (exclusive).
func (p Placement) ColEnd() int { return p.Col + p.colSpan() }

// Covers reports whether the cell (row, col) lies inside the placement.
func (p Placement) Covers(row, col int) bool {
	return row >= p.Row && row < p.RowEnd() && col >= p.Col && col < p.ColEnd()
}

// String renders the placement with 1-based lines, e.g. "5: rows 2-3, cols 4".
func (p Placement) String() string {
	return fmt.Sprintf("%d: rows %s, cols %s", p.ID, span(p.Row, p.RowEnd()), span(p.Col, p.ColEnd()))
}

func span(start, end int) string {
	if end-start == 1 {
		return fmt.Sprint(start + 1)
	}
	return fmt.Sprintf("%d-%d", start+1, end)
}
