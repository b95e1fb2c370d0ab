package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"neonfocus/internal/core/session"
	"neonfocus/internal/tasks"
)

// Run starts the terminal UI and blocks until the user quits.
func Run(controller *session.Controller, list *tasks.List, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(controller, list), options...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
