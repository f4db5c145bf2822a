package grid

import "fmt"

// Solve places every item of the layout by row-major auto-placement.
//
// Items are visited in document order. Each one takes the first anchor,
// scanning rows top to bottom and columns left to right, whose whole
// RowSpan x ColSpan region lies inside the grid and touches no cell claimed
// by an earlier item. With FlowRow the scan resumes from the cell after the
// previous item; with FlowRowDense it restarts at the top-left cell.
//
// The grid never grows: an item that finds no region fails with ErrOverflow.
func Solve(l Layout) (*Tiling, error) {
	tmpl := l.Template
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	t := newTiling(tmpl, len(l.Items))
	seen := make(map[int]bool, len(l.Items))
	var cursorRow, cursorCol int

	for _, it := range l.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true

		if it.colSpan() > t.cols || it.rowSpan() > t.rows {
			return nil, fmt.Errorf("%w: item %d spans %dx%d in a %dx%d grid",
				ErrSpanTooWide, it.ID, it.rowSpan(), it.colSpan(), t.rows, t.cols)
		}

		if tmpl.Flow == FlowRowDense {
			cursorRow, cursorCol = 0, 0
		}

		row, col, ok := t.findFree(it, cursorRow, cursorCol)
		if !ok {
			return nil, fmt.Errorf("%w: item %d (%dx%d)", ErrOverflow, it.ID, it.rowSpan(), it.colSpan())
		}

		t.claim(Placement{Item: it, Row: row, Col: col})
		cursorRow, cursorCol = row, col+it.colSpan()
	}

	return t, nil
}

// MustSolve is Solve for declarations that are valid by construction.
func MustSolve(l Layout) *Tiling {
	t, err := Solve(l)
	if err != nil {
		panic(err)
	}
	return t
}

// findFree scans row-major from (row, col) for the first anchor where it fits.
func (t *Tiling) findFree(it Item, row, col int) (int, int, bool) {
	for r := row; r+it.rowSpan() <= t.rows; r++ {
		for c := col; c+it.colSpan() <= t.cols; c++ {
			if t.regionFree(r, c, it.rowSpan(), it.colSpan()) {
				return r, c, true
			}
		}
		col = 0
	}
	return 0, 0, false
}

func (t *Tiling) regionFree(row, col, rows, cols int) bool {
	for r := row; r < row+rows; r++ {
		for c := col; c < col+cols; c++ {
			if t.cells[r][c] != 0 {
				return false
			}
		}
	}
	return true
}
