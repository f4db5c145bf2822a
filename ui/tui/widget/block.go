package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/text"
	"github.com/drake/bento/ui/style"
)

// Compile-time check that Block implements Widget
var _ Widget = (*Block)(nil)

// Block renders one tile of the board as a bordered box of exact size.
type Block struct {
	Item    grid.Item
	Hovered bool
	width   int
	height  int
	styles  style.Styles
}

// NewBlock creates a new block widget.
func NewBlock(item grid.Item, styles style.Styles) *Block {
	return &Block{Item: item, styles: styles}
}

// SetSize implements Widget.
func (b *Block) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// PreferredHeight implements Widget. Blocks take whatever the grid gives.
func (b *Block) PreferredHeight() int {
	return b.height
}

// View implements Widget. The result is exactly height lines, each width
// cells wide.
func (b *Block) View() string {
	return strings.Join(b.Lines(), "\n")
}

// Lines returns the rendered box split into lines of exact width.
func (b *Block) Lines() []string {
	if b.width <= 0 || b.height <= 0 {
		return nil
	}

	st := b.styles.Block
	if b.Hovered {
		st = b.styles.BlockHover
	}

	// Too small for a border: a plain filled patch.
	if b.width < 3 || b.height < 3 {
		fill := lipgloss.NewStyle().
			Background(st.GetBackground()).
			Render(strings.Repeat(" ", b.width))
		lines := make([]string, b.height)
		for i := range lines {
			lines[i] = fill
		}
		return lines
	}

	inner := b.width - 2
	if inner < 5 {
		st = st.UnsetPadding()
	} else {
		inner -= 2
	}
	label := text.Truncate(b.Item.Label, inner)

	box := st.
		Width(b.width - 2).
		Height(b.height - 2).
		MaxWidth(b.width).
		MaxHeight(b.height).
		Render(label)

	lines := text.Lines(box, b.height)
	for i, line := range lines {
		lines[i] = text.PadRight(line, b.width)
	}
	return lines
}
