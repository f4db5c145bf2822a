package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/drake/bento/text"
	"github.com/drake/bento/ui/style"
)

// Compile-time check that Footer implements Widget
var _ Widget = (*Footer)(nil)

// Footer is the single line under the board: the hovered block's title on
// the left, key help on the right.
type Footer struct {
	Tooltip  string
	help     help.Model
	bindings []key.Binding
	width    int
	styles   style.Styles
}

// NewFooter creates a footer that documents bindings.
func NewFooter(styles style.Styles, bindings ...key.Binding) *Footer {
	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted
	return &Footer{
		help:     h,
		bindings: bindings,
		styles:   styles,
	}
}

// SetSize implements Widget.
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.help.Width = width / 2
}

// PreferredHeight implements Widget.
func (f *Footer) PreferredHeight() int {
	return 1
}

// View implements Widget.
func (f *Footer) View() string {
	if f.width <= 0 {
		return ""
	}
	inner := max(f.width-2, 0)

	right := f.help.ShortHelpView(f.bindings)
	room := inner - text.VisibleLen(right) - 1
	if room < 0 {
		right, room = "", inner
	}

	left := ""
	if f.Tooltip != "" {
		left = f.styles.Tooltip.Render(text.Truncate(f.Tooltip, room))
	}

	pad := inner - text.VisibleLen(left) - text.VisibleLen(right)
	line := left + strings.Repeat(" ", max(pad, 0)) + right
	return f.styles.Footer.Render(line)
}
