package widget

import (
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/ui/style"
)

// Compile-time check that Canvas implements Widget
var _ Widget = (*Canvas)(nil)

// boxKey identifies one rendered block. A block renders identically for
// the same size and hover state, so frames reuse earlier boxes.
type boxKey struct {
	id            int
	width, height int
	hovered       bool
}

// segment is a run of styled text starting at column x.
type segment struct {
	x     int
	width int
	text  string
}

// Canvas composes every block of the board into one frame.
type Canvas struct {
	blocks []*Block
	rects  []grid.Rect
	width  int
	height int
	styles style.Styles
	cache  *lru.Cache[boxKey, []string]
}

// NewCanvas creates a canvas with one Block per placement of the tiling.
func NewCanvas(tiling *grid.Tiling, styles style.Styles) *Canvas {
	cache, _ := lru.New[boxKey, []string](256) // only errors on size <= 0
	placements := tiling.Placements()
	blocks := make([]*Block, len(placements))
	for i, p := range placements {
		blocks[i] = NewBlock(p.Item, styles)
	}
	return &Canvas{
		blocks: blocks,
		styles: styles,
		cache:  cache,
	}
}

// SetSize implements Widget.
func (c *Canvas) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// PreferredHeight implements Widget.
func (c *Canvas) PreferredHeight() int {
	return c.height
}

// Place assigns block rects, in placement order.
func (c *Canvas) Place(rects []grid.Rect) {
	c.rects = rects
	for i, b := range c.blocks {
		if i < len(rects) {
			b.SetSize(rects[i].Width, rects[i].Height)
		}
	}
}

// SetHover marks the block with id as hovered. With on false no block is.
func (c *Canvas) SetHover(id int, on bool) {
	for _, b := range c.blocks {
		b.Hovered = on && b.Item.ID == id
	}
}

// CacheLen reports how many rendered boxes are cached.
func (c *Canvas) CacheLen() int {
	return c.cache.Len()
}

func (c *Canvas) boxLines(b *Block, r grid.Rect) []string {
	key := boxKey{id: b.Item.ID, width: r.Width, height: r.Height, hovered: b.Hovered}
	if lines, ok := c.cache.Get(key); ok {
		return lines
	}
	lines := b.Lines()
	c.cache.Add(key, lines)
	return lines
}

// View implements Widget. Each line is padded to the canvas width; gaps
// stay blank and every block casts a one-line shadow under its bottom edge.
func (c *Canvas) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	rows := make([][]segment, c.height)
	for i, b := range c.blocks {
		if i >= len(c.rects) || c.rects[i].IsEmpty() {
			continue
		}
		r := c.rects[i]
		for dy, line := range c.boxLines(b, r) {
			if y := r.Y + dy; y >= 0 && y < c.height {
				rows[y] = append(rows[y], segment{x: r.X, width: r.Width, text: line})
			}
		}
		if y := r.Bottom(); y < c.height && r.Width > 1 {
			shadow := c.styles.Shadow.Render(strings.Repeat("▀", r.Width-1))
			rows[y] = append(rows[y], segment{x: r.X + 1, width: r.Width - 1, text: shadow})
		}
	}

	lines := make([]string, c.height)
	for y, segs := range rows {
		lines[y] = c.composeLine(segs)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) composeLine(segs []segment) string {
	slices.SortFunc(segs, func(a, b segment) int { return a.x - b.x })

	var sb strings.Builder
	cursor := 0
	for _, s := range segs {
		if s.x < cursor || s.x+s.width > c.width {
			continue // overlaps a previous run or spills off screen
		}
		sb.WriteString(strings.Repeat(" ", s.x-cursor))
		sb.WriteString(s.text)
		cursor = s.x + s.width
	}
	sb.WriteString(strings.Repeat(" ", c.width-cursor))
	return sb.String()
}
