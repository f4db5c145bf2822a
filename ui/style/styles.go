package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette of the bento board.
const (
	BlockGray  = "#9da0a1"
	HoverGray  = "#aeb1b2"
	BlockText  = "#ffffff"
	ShadowGray = "#d4d5d6"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Blocks
	Block      lipgloss.Style
	BlockHover lipgloss.Style
	Shadow     lipgloss.Style

	// Footer
	Footer  lipgloss.Style
	Tooltip lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		// Rounded gray tiles with bold white centered labels
		Block: lipgloss.NewStyle().
			Background(lipgloss.Color(BlockGray)).
			Foreground(lipgloss.Color(BlockText)).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(BlockGray)).
			Padding(0, 1).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center),

		// Cells cannot scale, so hover swaps in a heavier, lighter border.
		BlockHover: lipgloss.NewStyle().
			Background(lipgloss.Color(HoverGray)).
			Foreground(lipgloss.Color(BlockText)).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(HoverGray)).
			Padding(0, 1).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center),

		Shadow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ShadowGray)),

		Footer: lipgloss.NewStyle().
			Padding(0, 1),
		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
