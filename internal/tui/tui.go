package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI editor with a fresh seeded session.
func Run() error {
	if !isTerminal() {
		return fmt.Errorf("provedit requires a terminal; use the subcommands for non-interactive mode")
	}

	m := NewModel()

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}

	if os.Getenv("TERM") != "" {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)

	_, err := p.Run()
	return err
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
