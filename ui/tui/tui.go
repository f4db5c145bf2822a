package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/internal/ctxlog"
)

// Run shows the board full screen and blocks until the user quits or ctx
// is cancelled. Pointer motion is reported for every cell so hover follows
// the mouse without a button held.
func Run(ctx context.Context, tiling *grid.Tiling, opts ...tea.ProgramOption) error {
	logger := ctxlog.FromContext(ctx)

	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, opts...)
	program := tea.NewProgram(NewModel(ctx, tiling), options...)

	logger.Debug("Starting board UI.", "blocks", len(tiling.Placements()))
	_, err := program.Run()
	logger.Debug("Board UI stopped.", "error", err)
	return err
}

// Frame renders one frame of the board at the given size with block hover
// drawn as hovered. An id that is not on the board means no hover.
func Frame(ctx context.Context, tiling *grid.Tiling, width, height, hover int) string {
	m := NewModel(ctx, tiling)
	m.resize(width, height)
	if _, ok := tiling.Placement(hover); ok {
		m.setHover(hover, true)
	}
	return m.View()
}
