package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"provedit/config/models"
	"provedit/config/session"
	"provedit/config/validation"
	"provedit/internal/providers"
)

// ViewState represents the current view state
type ViewState int

const (
	ViewMain         ViewState = iota // Provider list view
	ViewEdit                          // Provider form view
	ViewPresetSelect                  // Preset picker
	ViewImport                        // Import JSON view
	ViewOutput                        // Generated JSON view
	ViewDelete                        // Delete confirmation dialog
	ViewHelp                          // Help panel
)

// Model is the core state model for the TUI. All configuration state lives
// in the session; the model holds only view state.
type Model struct {
	sess      *session.Session
	cursor    int       // provider cursor in the main list
	viewState ViewState

	// Form state
	editIndex int // provider being edited
	fields    []formField
	focus     int

	// Import state
	importArea textarea.Model
	importErr  error

	// Output state
	output     string
	outputErrs validation.FieldErrors

	// Preset picker state
	presetNames  []string
	presetCursor int

	// Messages and errors
	message  string
	errorMsg string

	// Window size
	width  int
	height int

	scrollOffset int

	keys KeyMap
}

// NewModel creates a new TUI model around a fresh seeded session.
func NewModel() Model {
	return NewModelWith(session.New())
}

// NewModelWith creates a TUI model around an existing session, so callers
// can pre-load a configuration before opening the editor.
func NewModelWith(sess *session.Session) Model {
	area := textarea.New()
	area.Placeholder = `[{"provider":"Groq","apiKeyEnvVar":"GROQ_API_KEY",...}]`
	area.CharLimit = 0
	area.SetWidth(76)
	area.SetHeight(10)

	return Model{
		sess:       sess,
		viewState:  ViewMain,
		importArea: area,
		width:      80,
		height:     24,
		keys:       DefaultKeyMap(),
	}
}

// Session exposes the underlying session, mainly for tests.
func (m Model) Session() *session.Session {
	return m.sess
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScrollOffset()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case ViewMain:
		return m.handleMainViewKeys(msg)
	case ViewEdit:
		return m.handleEditViewKeys(msg)
	case ViewPresetSelect:
		return m.handlePresetViewKeys(msg)
	case ViewImport:
		return m.handleImportViewKeys(msg)
	case ViewOutput:
		return m.handleOutputViewKeys(msg)
	case ViewDelete:
		return m.handleDeleteViewKeys(msg)
	case ViewHelp:
		return m.handleHelpViewKeys(msg)
	default:
		return m, nil
	}
}

// handleMainViewKeys handles keyboard input in the provider list view
func (m Model) handleMainViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.moveDown()
		m.clearStatus()
		return m, nil

	case "k", "up":
		m.moveUp()
		m.clearStatus()
		return m, nil

	case "g":
		m.cursor = 0
		m.scrollOffset = 0
		m.clearStatus()
		return m, nil

	case "G":
		if m.sess.Len() > 0 {
			m.cursor = m.sess.Len() - 1
			m.adjustScrollOffset()
		}
		m.clearStatus()
		return m, nil

	case "enter", "e":
		if m.sess.Len() > 0 && m.cursor >= 0 && m.cursor < m.sess.Len() {
			m.initEditForm(m.cursor)
		}
		return m, nil

	case "a":
		// Appending never fails; the new provider starts empty and is only
		// checked at submit time.
		m.sess.AppendProvider()
		m.cursor = m.sess.Len() - 1
		m.adjustScrollOffset()
		m.initEditForm(m.cursor)
		return m, nil

	case "p":
		m.presetNames = providers.List()
		m.presetCursor = 0
		m.viewState = ViewPresetSelect
		m.clearStatus()
		return m, nil

	case "d":
		if m.sess.Len() > 0 && m.cursor >= 0 && m.cursor < m.sess.Len() {
			m.viewState = ViewDelete
			m.clearStatus()
		}
		return m, nil

	case "i":
		m.importArea.Reset()
		m.importArea.Focus()
		m.importErr = nil
		m.viewState = ViewImport
		m.clearStatus()
		return m, nil

	case "o":
		m.enterOutputView()
		return m, nil

	case "?":
		m.viewState = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleEditViewKeys handles keyboard input in the provider form view.
// Every edit flows through the session immediately, so leaving the form
// with Esc keeps the changes; validity is only enforced on generate.
func (m Model) handleEditViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewState = ViewMain
		m.fields = nil
		m.focus = 0
		return m, nil

	case "tab", "down":
		m.focus = nextField(m.fields, m.focus)
		return m, nil

	case "shift+tab", "up":
		m.focus = prevField(m.fields, m.focus)
		return m, nil

	case "ctrl+n":
		m.sess.AppendModel(m.editIndex)
		m.rebuildForm(len(m.fields)) // focus first field of the new row
		return m, nil

	case "ctrl+d":
		if mi := m.focusedModelIndex(); mi >= 0 {
			m.sess.RemoveModel(m.editIndex, mi)
			m.rebuildForm(providerFieldCount)
		}
		return m, nil

	case " ", "enter":
		if m.focus >= 0 && m.focus < len(m.fields) && m.fields[m.focus].kind == fieldToggle {
			f := &m.fields[m.focus]
			f.toggle = !f.toggle
			m.setField(f.path, f.toggle)
			return m, nil
		}
		if msg.String() == "enter" {
			m.focus = nextField(m.fields, m.focus)
			return m, nil
		}
	}

	// Pass the key to the focused text input and sync the session.
	if m.focus >= 0 && m.focus < len(m.fields) && m.fields[m.focus].kind == fieldText {
		f := &m.fields[m.focus]
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		m.setField(f.path, f.input.Value())
		return m, cmd
	}
	return m, nil
}

// providerFieldCount is the number of provider-level form fields before the
// model rows begin.
const providerFieldCount = 3

// focusedModelIndex returns the model row the focus is on, or -1 when a
// provider-level field is focused.
func (m *Model) focusedModelIndex() int {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return -1
	}
	path := m.fields[m.focus].path
	if path.Model == models.NoModel {
		return -1
	}
	return path.Model
}

// setField forwards a single-leaf update to the session.
func (m *Model) setField(path models.FieldPath, value any) {
	if err := m.sess.SetField(path, value); err != nil {
		m.errorMsg = err.Error()
	}
}

// initEditForm opens the form view for provider index pi.
func (m *Model) initEditForm(pi int) {
	m.editIndex = pi
	m.rebuildForm(0)
	m.viewState = ViewEdit
	m.clearStatus()
}

// rebuildForm regenerates the field list from session state, e.g. after a
// model row is added or removed, and focuses the field at focus.
func (m *Model) rebuildForm(focus int) {
	m.fields = buildForm(m.sess, m.editIndex)
	if focus >= len(m.fields) {
		focus = len(m.fields) - 1
	}
	if focus < 0 {
		focus = 0
	}
	m.focus = focusField(m.fields, -1, focus)
}

// handlePresetViewKeys handles keyboard input in the preset picker
func (m Model) handlePresetViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewState = ViewMain
		return m, nil

	case "j", "down":
		if m.presetCursor < len(m.presetNames)-1 {
			m.presetCursor++
		}
		return m, nil

	case "k", "up":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
		return m, nil

	case "enter":
		if m.presetCursor >= 0 && m.presetCursor < len(m.presetNames) {
			preset, err := providers.Get(m.presetNames[m.presetCursor])
			if err != nil {
				m.errorMsg = err.Error()
				m.viewState = ViewMain
				return m, nil
			}
			m.sess.AppendProviderFrom(preset)
			m.cursor = m.sess.Len() - 1
			m.adjustScrollOffset()
			m.message = "Added provider from preset: " + preset.Provider
		}
		m.viewState = ViewMain
		return m, nil
	}

	return m, nil
}

// handleImportViewKeys handles keyboard input in the import view
func (m Model) handleImportViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewState = ViewMain
		m.importErr = nil
		return m, nil

	case "ctrl+v":
		text, err := clipboard.ReadAll()
		if err != nil {
			m.importErr = err
			return m, nil
		}
		m.importArea.SetValue(text)
		return m, nil

	case "ctrl+s":
		// Import replaces the whole configuration; on any failure the
		// current state is untouched and the error is shown in place.
		if err := m.sess.ImportFrom(m.importArea.Value()); err != nil {
			m.importErr = err
			return m, nil
		}
		m.cursor = 0
		m.scrollOffset = 0
		m.viewState = ViewMain
		m.importErr = nil
		m.message = "Configuration imported"
		return m, nil
	}

	var cmd tea.Cmd
	m.importArea, cmd = m.importArea.Update(msg)
	return m, cmd
}

// enterOutputView runs a full validation and either shows the generated
// JSON or the per-field error report.
func (m *Model) enterOutputView() {
	out, err := m.sess.Submit()
	m.output = ""
	m.outputErrs = nil
	if err != nil {
		if errs, ok := err.(validation.FieldErrors); ok {
			m.outputErrs = errs
		} else {
			m.errorMsg = err.Error()
			return
		}
	} else {
		m.output = out
	}
	m.viewState = ViewOutput
	m.clearStatus()
}

// handleOutputViewKeys handles keyboard input in the output view
func (m Model) handleOutputViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q":
		m.viewState = ViewMain
		return m, nil

	case "c":
		if m.output != "" {
			if err := clipboard.WriteAll(m.output); err != nil {
				m.errorMsg = err.Error()
			} else {
				m.message = "Copied to clipboard"
			}
		}
		return m, nil
	}

	return m, nil
}

// handleDeleteViewKeys handles keyboard input in the delete confirmation view
func (m Model) handleDeleteViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "y", "Y":
		m.sess.RemoveProvider(m.cursor)
		if m.cursor >= m.sess.Len() && m.cursor > 0 {
			m.cursor = m.sess.Len() - 1
		}
		m.adjustScrollOffset()
		m.message = "Provider removed"
		m.viewState = ViewMain
		return m, nil

	case "n", "N", "esc":
		m.viewState = ViewMain
		m.clearStatus()
		return m, nil
	}

	return m, nil
}

// handleHelpViewKeys handles keyboard input in the help view
func (m Model) handleHelpViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q", "?":
		m.viewState = ViewMain
		return m, nil
	}

	return m, nil
}

func (m *Model) clearStatus() {
	m.message = ""
	m.errorMsg = ""
}

// moveUp moves the provider cursor up
func (m *Model) moveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.adjustScrollOffset()
	}
}

// moveDown moves the provider cursor down
func (m *Model) moveDown() {
	if m.sess.Len() > 0 && m.cursor < m.sess.Len()-1 {
		m.cursor++
		m.adjustScrollOffset()
	}
}

// getVisibleListHeight returns the number of lines available for the
// provider list
func (m *Model) getVisibleListHeight() int {
	headerLines := 3
	footerLines := 4

	available := m.height - headerLines - footerLines
	if available < 1 {
		available = 1
	}
	return available
}

// adjustScrollOffset adjusts the scroll offset to keep the cursor visible
func (m *Model) adjustScrollOffset() {
	visibleHeight := m.getVisibleListHeight()

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}

	if m.cursor >= m.scrollOffset+visibleHeight {
		m.scrollOffset = m.cursor - visibleHeight + 1
	}

	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}

	maxOffset := m.sess.Len() - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
}

// View renders the UI
func (m Model) View() string {
	switch m.viewState {
	case ViewEdit:
		return m.RenderEditView()
	case ViewPresetSelect:
		return m.RenderPresetView()
	case ViewImport:
		return m.RenderImportView()
	case ViewOutput:
		return m.RenderOutputView()
	case ViewDelete:
		return m.RenderDeleteConfirm()
	case ViewHelp:
		return m.RenderHelpView()
	default:
		return m.RenderMainView()
	}
}
