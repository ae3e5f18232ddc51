package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"orhub/internal/ui"
)

// Start runs the live preview and returns any error.
func Start(cfg ui.Config) error {
	if _, err := tea.NewProgram(ui.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
