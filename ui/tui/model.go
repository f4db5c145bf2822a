package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/internal/ctxlog"
	"github.com/drake/bento/ui/style"
	"github.com/drake/bento/ui/tui/layout"
	"github.com/drake/bento/ui/tui/widget"
)

// Model is the main Bubble Tea model for the board.
type Model struct {
	// Layout
	tiling *grid.Tiling
	engine *layout.Engine

	// Widgets
	canvas *widget.Canvas
	footer *widget.Footer
	styles style.Styles
	keys   KeyMap

	// State
	hovered     int
	hovering    bool
	width       int
	height      int
	quitting    bool
	initialized bool
	logger      *slog.Logger
}

// NewModel creates a new board model for tiling.
func NewModel(ctx context.Context, tiling *grid.Tiling) Model {
	styles := style.DefaultStyles()
	keys := DefaultKeyMap()

	return Model{
		tiling: tiling,
		engine: layout.NewEngine(tiling),
		canvas: widget.NewCanvas(tiling, styles),
		footer: widget.NewFooter(styles, keys.ShortHelp()...),
		styles: styles,
		keys:   keys,
		logger: ctxlog.FromContext(ctx),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.initialized = true

	footerHeight := m.footer.PreferredHeight()
	m.engine.SetSize(width, height)
	rects := m.engine.Calculate(footerHeight)

	m.canvas.SetSize(width, height-footerHeight)
	m.canvas.Place(rects)
	m.footer.SetSize(width, footerHeight)

	m.logger.Debug("Board resized.", "width", width, "height", height, "rects", rects)
}

func (m *Model) hover(x, y int) {
	id, ok := m.engine.HitTest(x, y)
	if ok == m.hovering && id == m.hovered {
		return
	}
	m.setHover(id, ok)
	m.logger.Debug("Hover changed.", "id", id, "hovering", ok)
}

func (m *Model) setHover(id int, on bool) {
	m.hovered, m.hovering = id, on
	m.canvas.SetHover(id, on)

	m.footer.Tooltip = ""
	if on {
		if p, found := m.tiling.Placement(id); found {
			m.footer.Tooltip = p.Title
		}
	}
}

// Hovered returns the ID of the block under the pointer, if any.
func (m Model) Hovered() (int, bool) {
	return m.hovered, m.hovering
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return ""
	}

	return m.canvas.View() + "\n" + m.footer.View()
}
