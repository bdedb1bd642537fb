package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"provedit/config/models"
	"provedit/config/validation"
	"provedit/internal/providers"
	"provedit/internal/utils"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	formFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Width(14)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(76)
)

// getEffectiveWidth returns the rendering width, capped for readability
func (m Model) getEffectiveWidth(defaultWidth int) int {
	if m.width <= 0 {
		return defaultWidth
	}
	maxWidth := 80
	if m.width < maxWidth {
		return m.width
	}
	return maxWidth
}

func (m Model) separator() string {
	return separatorStyle.Render(strings.Repeat("─", m.getEffectiveWidth(40)))
}

// RenderMainView renders the provider list view
func (m Model) RenderMainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI Provider Configuration"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")

	list := m.sess.Providers()
	if len(list) == 0 {
		b.WriteString(dimStyle.Render("No providers. Press 'a' to add one or 'i' to import JSON."))
		b.WriteString("\n")
	} else {
		visibleHeight := m.getVisibleListHeight()
		startIdx := m.scrollOffset
		endIdx := startIdx + visibleHeight
		if endIdx > len(list) {
			endIdx = len(list)
		}

		if startIdx > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more...", startIdx)))
			b.WriteString("\n")
		}

		for i := startIdx; i < endIdx; i++ {
			b.WriteString(m.renderProviderLine(i, list[i]))
			b.WriteString("\n")
		}

		if endIdx < len(list) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more...", len(list)-endIdx)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(m.RenderStatusBar())

	return b.String()
}

// renderProviderLine renders one row of the provider list
func (m Model) renderProviderLine(i int, p models.Provider) string {
	name := p.Provider
	if name == "" {
		name = "(unnamed)"
	}

	host := utils.ExtractHost(p.BaseURL)
	if host == "" {
		host = "default endpoint"
	}

	line := fmt.Sprintf("  %s  env:%s  %s  %d model(s)", name, orDash(p.APIKeyEnvVar), host, len(p.Models))

	if i == m.cursor {
		return selectedStyle.Render("▸" + line[1:])
	}
	return normalStyle.Render(line)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RenderStatusBar renders the message/error line plus key hints
func (m Model) RenderStatusBar() string {
	var b strings.Builder

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errorMsg))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(messageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}

	hints := []string{}
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(hints, " │ ")))

	return b.String()
}

// RenderEditView renders the provider form with inline field errors
func (m Model) RenderEditView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Edit Provider %d", m.editIndex+1)))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")

	modelHeader := -1
	for i, f := range m.fields {
		// Start a model section whenever the row index changes.
		if f.path.Model != models.NoModel && f.path.Model != modelHeader {
			modelHeader = f.path.Model
			b.WriteString(dimStyle.Render(fmt.Sprintf("Model %d", modelHeader+1)))
			b.WriteString("\n")
		}

		label := f.label
		if i == m.focus {
			b.WriteString(formFocusedStyle.Render(label))
		} else {
			b.WriteString(formLabelStyle.Render(label))
		}
		b.WriteString(" ")

		switch f.kind {
		case fieldText:
			b.WriteString(f.input.View())
		case fieldToggle:
			box := "[ ] no"
			if f.toggle {
				box = "[x] yes"
			}
			if i == m.focus {
				b.WriteString(selectedStyle.Render(box))
			} else {
				b.WriteString(normalStyle.Render(box))
			}
		}
		b.WriteString("\n")

		if msg, ok := m.sess.ErrorFor(f.path.String()); ok {
			b.WriteString(formLabelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(errorStyle.Render("✗ " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/↓: next │ Shift+Tab/↑: prev │ Space: toggle │ Ctrl+N: add model │ Ctrl+D: remove model │ Esc: done"))

	return b.String()
}

// RenderPresetView renders the preset picker
func (m Model) RenderPresetView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add Provider From Preset"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")

	for i, name := range m.presetNames {
		preset, err := providers.Get(name)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("  %-12s %s (%d models)", name, preset.Provider, len(preset.Models))
		if i == m.presetCursor {
			b.WriteString(selectedStyle.Render("▸" + line[1:]))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move │ Enter: add │ Esc: cancel"))

	return b.String()
}

// RenderImportView renders the JSON import view
func (m Model) RenderImportView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Import Configuration JSON"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Paste a JSON array of providers. Importing replaces the current configuration."))
	b.WriteString("\n\n")
	b.WriteString(m.importArea.View())
	b.WriteString("\n")

	if m.importErr != nil {
		b.WriteString("\n")
		b.WriteString(renderConfigError(m.importErr))
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Ctrl+S: import │ Ctrl+V: paste clipboard │ Esc: cancel"))

	return b.String()
}

// renderConfigError renders an import failure: one line per field error,
// or a single line for parse/empty-input errors.
func renderConfigError(err error) string {
	var fieldErrs validation.FieldErrors
	var parseErr *validation.ParseError

	var b strings.Builder
	switch {
	case errors.As(err, &fieldErrs):
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %d field error(s):", len(fieldErrs))))
		b.WriteString("\n")
		for _, fe := range fieldErrs {
			b.WriteString(errorStyle.Render("  " + fe.Path + ": " + fe.Message))
			b.WriteString("\n")
		}
	case errors.As(err, &parseErr):
		b.WriteString(errorStyle.Render("✗ " + parseErr.Msg))
		b.WriteString("\n")
	default:
		b.WriteString(errorStyle.Render("✗ " + err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderOutputView renders the generated JSON or the validation report
func (m Model) RenderOutputView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generated Configuration"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")

	if len(m.outputErrs) > 0 {
		b.WriteString(renderConfigError(m.outputErrs))
	} else {
		b.WriteString(outputStyle.Render(m.output))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	if m.errorMsg != "" || m.message != "" {
		b.WriteString(m.RenderStatusBar())
		b.WriteString("\n")
	}
	if m.output != "" {
		b.WriteString(helpStyle.Render("c: copy to clipboard │ Esc: back"))
	} else {
		b.WriteString(helpStyle.Render("Esc: back and fix the reported fields"))
	}

	return b.String()
}

// RenderDeleteConfirm renders the delete confirmation dialog
func (m Model) RenderDeleteConfirm() string {
	var b strings.Builder

	name := ""
	if p, ok := m.sess.Provider(m.cursor); ok {
		name = p.Provider
	}
	if name == "" {
		name = fmt.Sprintf("provider %d", m.cursor+1)
	}

	b.WriteString(titleStyle.Render("Delete Provider"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render(fmt.Sprintf("Delete %q and all its models?", name)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y: delete │ n/Esc: cancel"))

	return b.String()
}

// RenderHelpView renders the help panel
func (m Model) RenderHelpView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n\n")

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{"j/↓, k/↑", "move cursor"},
			{"g / G", "jump to top / bottom"},
		}},
		{"Providers", [][2]string{
			{"Enter, e", "edit provider"},
			{"a", "add empty provider"},
			{"p", "add provider from preset"},
			{"d", "delete provider"},
		}},
		{"Form", [][2]string{
			{"Tab / Shift+Tab", "next / previous field"},
			{"Space", "toggle tool support"},
			{"Ctrl+N / Ctrl+D", "add / remove model row"},
			{"Esc", "back to the list (edits are kept)"},
		}},
		{"Import & export", [][2]string{
			{"i", "import JSON (replaces everything)"},
			{"o", "generate single-line JSON"},
			{"c", "copy generated JSON to clipboard"},
		}},
		{"General", [][2]string{
			{"?", "toggle this help"},
			{"q, Ctrl+C", "quit"},
		}},
	}

	for _, s := range sections {
		b.WriteString(titleStyle.Render(s.title))
		b.WriteString("\n")
		for _, row := range s.rows {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", dimStyle.Render(row[0]), normalStyle.Render(row[1])))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc/q: close help"))

	return b.String()
}
