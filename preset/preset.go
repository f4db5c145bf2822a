// Package preset holds the built-in bento grid.
package preset

import "github.com/drake/bento/grid"

// Column and row weights of the bento grid. Column 4 (2.3) is as wide as
// columns 1 and 2 together (1.3 + 1.0), so blocks 5 and 6 match in width.
var (
	Columns = []float64{1.3, 1.0, 1.8, 2.3}
	Rows    = []float64{0.6, 1.0, 1.2, 1.0, 1.0}
)

// Bento returns the nine-block layout. Items only declare spans; Solve
// works out where each one lands.
func Bento() grid.Layout {
	return grid.Layout{
		Template: grid.Template{
			Columns: append([]float64(nil), Columns...),
			Rows:    append([]float64(nil), Rows...),
			Flow:    grid.FlowRow,
		},
		Items: []grid.Item{
			{ID: 1, Title: "1. Full Header", Label: "1", ColSpan: 4, RowSpan: 1},
			{ID: 2, Title: "2. Small Rect", Label: "2", ColSpan: 1, RowSpan: 1},
			{ID: 3, Title: "3. Square", Label: "3", ColSpan: 1, RowSpan: 1},
			{ID: 4, Title: "4. Square", Label: "4", ColSpan: 1, RowSpan: 1},
			{ID: 5, Title: "5. Large Square", Label: "5", ColSpan: 1, RowSpan: 2},
			{ID: 6, Title: "6. Vertical Large Block", Label: "6", ColSpan: 2, RowSpan: 2},
			{ID: 7, Title: "7. Mid Sq", Label: "7", ColSpan: 1, RowSpan: 1},
			{ID: 8, Title: "8. Wide Rect", Label: "8", ColSpan: 2, RowSpan: 2},
			{ID: 9, Title: "9. Bottom Rect", Label: "9", ColSpan: 2, RowSpan: 1},
		},
	}
}

// Tiling solves Bento. The declaration is valid by construction.
func Tiling() *grid.Tiling {
	return grid.MustSolve(Bento())
}
