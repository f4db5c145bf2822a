package grid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func twoByTwo(flow Flow, items ...Item) Layout {
	return Layout{
		Template: Template{Columns: []float64{1, 1}, Rows: []float64{1, 1}, Flow: flow},
		Items:    items,
	}
}

func TestSolveSparseLeavesHoleDenseBackfills(t *testing.T) {
	items := []Item{
		{ID: 1, ColSpan: 1, RowSpan: 1},
		{ID: 2, ColSpan: 2, RowSpan: 1},
		{ID: 3, ColSpan: 1, RowSpan: 1},
	}

	_, err := Solve(twoByTwo(FlowRow, items...))
	require.ErrorIs(t, err, ErrOverflow)

	tiling, err := Solve(twoByTwo(FlowRowDense, items...))
	require.NoError(t, err)
	require.NoError(t, tiling.Check())

	p3, ok := tiling.Placement(3)
	require.True(t, ok)
	require.Equal(t, 0, p3.Row)
	require.Equal(t, 1, p3.Col)
}

func TestSolveSkipsCellsClaimedByRowSpans(t *testing.T) {
	tiling, err := Solve(twoByTwo(FlowRow,
		Item{ID: 1, RowSpan: 2},
		Item{ID: 2},
		Item{ID: 3},
	))
	require.NoError(t, err)

	want := " 1  2\n 1  3\n"
	require.Equal(t, want, tiling.String())
}

func TestSolveTreatsZeroSpanAsOne(t *testing.T) {
	tiling, err := Solve(twoByTwo(FlowRow, Item{ID: 1}, Item{ID: 2}, Item{ID: 3}, Item{ID: 4}))
	require.NoError(t, err)
	require.NoError(t, tiling.Check())
	require.Equal(t, " 1  2\n 3  4\n", tiling.String())
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   error
	}{
		{
			name:   "no columns",
			layout: Layout{Template: Template{Rows: []float64{1}}},
			want:   ErrNoTracks,
		},
		{
			name:   "zero weight",
			layout: Layout{Template: Template{Columns: []float64{1, 0}, Rows: []float64{1}}},
			want:   ErrBadWeight,
		},
		{
			name:   "nan weight",
			layout: Layout{Template: Template{Columns: []float64{1}, Rows: []float64{math.NaN()}}},
			want:   ErrBadWeight,
		},
		{
			name:   "too wide",
			layout: twoByTwo(FlowRow, Item{ID: 1, ColSpan: 3}),
			want:   ErrSpanTooWide,
		},
		{
			name:   "too tall",
			layout: twoByTwo(FlowRow, Item{ID: 1, RowSpan: 3}),
			want:   ErrSpanTooWide,
		},
		{
			name:   "duplicate id",
			layout: twoByTwo(FlowRow, Item{ID: 1}, Item{ID: 1}),
			want:   ErrDuplicateID,
		},
		{
			name:   "overflow",
			layout: twoByTwo(FlowRowDense, Item{ID: 1, ColSpan: 2, RowSpan: 2}, Item{ID: 2}),
			want:   ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.layout)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckReportsGaps(t *testing.T) {
	tiling, err := Solve(twoByTwo(FlowRow, Item{ID: 1, ColSpan: 2}))
	require.NoError(t, err)

	err = tiling.Check()
	require.ErrorIs(t, err, ErrGap)
	require.Contains(t, err.Error(), "(2,1) (2,2)")
}

func TestMustSolvePanicsOnInvalidLayout(t *testing.T) {
	require.Panics(t, func() { MustSolve(Layout{}) })
}

func TestWeightsOfUnknownItem(t *testing.T) {
	tiling, err := Solve(twoByTwo(FlowRow, Item{ID: 1}))
	require.NoError(t, err)

	_, err = tiling.ColumnWeight(42)
	require.ErrorIs(t, err, ErrUnknownItem)
	_, err = tiling.SameWidth(1, 42)
	require.ErrorIs(t, err, ErrUnknownItem)

	w, err := tiling.RowWeight(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
}

func TestParseFlow(t *testing.T) {
	f, err := ParseFlow("row dense")
	require.NoError(t, err)
	require.Equal(t, FlowRowDense, f)

	f, err = ParseFlow("")
	require.NoError(t, err)
	require.Equal(t, FlowRow, f)

	_, err = ParseFlow("column")
	require.ErrorIs(t, err, ErrUnknownFlow)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		gap     int
		weights []float64
		want    []Segment
	}{
		{
			name:    "thirds with gaps",
			length:  10,
			gap:     1,
			weights: []float64{1, 1, 1},
			want:    []Segment{{0, 3}, {4, 2}, {7, 3}},
		},
		{
			name:    "weighted",
			length:  64,
			weights: []float64{1.3, 1.0, 1.8, 2.3},
			want:    []Segment{{0, 13}, {13, 10}, {23, 18}, {41, 23}},
		},
		{
			name:    "ties round to even",
			length:  32,
			weights: []float64{1.3, 1.0, 1.8, 2.3},
			want:    []Segment{{0, 6}, {6, 6}, {12, 8}, {20, 12}},
		},
		{
			name:    "gaps eat everything",
			length:  5,
			gap:     4,
			weights: []float64{1, 1, 1},
			want:    []Segment{{0, 0}, {4, 0}, {8, 0}},
		},
		{
			name: "no tracks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.length, tt.gap, tt.weights)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitSumsToFreeLength(t *testing.T) {
	weights := []float64{0.6, 1.0, 1.2, 1.0, 1.0}
	for length := 0; length < 200; length++ {
		segs := Split(length, 1, weights)
		total := 0
		for _, s := range segs {
			require.GreaterOrEqual(t, s.Size, 0)
			total += s.Size
		}
		require.Equal(t, max(length-4, 0), total, "length %d", length)
	}
}

func TestResolveIncludesInnerGaps(t *testing.T) {
	tiling, err := Solve(twoByTwo(FlowRow, Item{ID: 1, ColSpan: 2}, Item{ID: 2}, Item{ID: 3}))
	require.NoError(t, err)

	rects := tiling.Resolve(Rect{X: 1, Y: 1, Width: 21, Height: 11}, 1, 1)
	require.Equal(t, []Rect{
		{X: 1, Y: 1, Width: 21, Height: 5},
		{X: 1, Y: 7, Width: 10, Height: 5},
		{X: 12, Y: 7, Width: 10, Height: 5},
	}, rects)

	require.True(t, rects[2].Contains(12, 7))
	require.False(t, rects[2].Contains(22, 7))
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 5}
	require.Equal(t, 6, r.Right())
	require.Equal(t, 8, r.Bottom())
	require.False(t, r.IsEmpty())
	require.Equal(t, Rect{X: 3, Y: 4, Width: 2, Height: 3}, r.Inset(1))
	require.True(t, r.Inset(3).IsEmpty())
}
