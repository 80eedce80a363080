// Package ui renders the task board and its create/edit modal in the terminal.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todoboard/internal/form"
)

const (
	defaultColumns = 4
	defaultWidth   = 80
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	columns   int
	altScreen bool
	logger    *log.Logger
}

// WithColumns sets the number of card columns.
func WithColumns(n int) TUIOption {
	return func(c *tuiConfig) {
		if n > 0 {
			c.columns = n
		}
	}
}

// WithAltScreen draws the board on the alternate screen.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithLogger sets the logger for board events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newTUIConfig(opts []TUIOption) *tuiConfig {
	c := &tuiConfig{
		columns: defaultColumns,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunTUI mounts the board over ctrl and blocks until the user quits or ctx
// is cancelled.
func RunTUI(ctx context.Context, ctrl *form.Controller, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	c := newTUIConfig(opts)
	model := newModel(ctrl, c)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	c.logger.Info("board mounted", "columns", c.columns)
	_, err := tea.NewProgram(model, programOpts...).Run()
	c.logger.Info("board unmounted", "tasks", ctrl.Store().Len())
	return err
}

// focus is the modal element receiving keys.
type focus int

const (
	focusTitle focus = iota
	focusDescription
	focusOK
	focusCancel
	focusCount
)

// Model is the bubbletea model for the board.
type Model struct {
	ctrl    *form.Controller
	logger  *log.Logger
	columns int
	width   int
	height  int

	cursor   int
	focus    focus
	title    textinput.Model
	desc     textarea.Model
	board    boardKeys
	form     formKeys
	help     help.Model
	status   string
	quitting bool
}

func newModel(ctrl *form.Controller, c *tuiConfig) *Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 0

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.ShowLineNumbers = false
	desc.CharLimit = 0
	desc.MaxHeight = 0
	desc.SetHeight(4)

	m := &Model{
		ctrl:    ctrl,
		logger:  c.logger,
		columns: c.columns,
		title:   title,
		desc:    desc,
		board:   defaultBoardKeys(),
		form:    defaultFormKeys(),
		help:    help.New(),
	}
	m.resize(defaultWidth, 0)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.ctrl.Open() {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}

	if m.ctrl.Open() {
		return m, m.updateFocused(msg)
	}
	return m, nil
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	n := m.ctrl.Store().Len()

	switch {
	case key.Matches(msg, m.board.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.board.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.board.Create):
		if m.ctrl.OpenCreate() {
			return m, m.openForm()
		}
	case key.Matches(msg, m.board.Edit):
		if task, ok := m.ctrl.Store().At(m.cursor); ok && m.ctrl.OpenEdit(task) {
			return m, m.openForm()
		}
	case key.Matches(msg, m.board.Delete):
		if task, ok := m.ctrl.Store().At(m.cursor); ok {
			m.ctrl.Delete(task.ID)
			m.cursor = clampCursor(m.cursor, m.ctrl.Store().Len())
		}
	case key.Matches(msg, m.board.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.board.Right):
		m.cursor = clampCursor(m.cursor+1, n)
	case key.Matches(msg, m.board.Up):
		if stride := gridColumns(m.columns, m.width); m.cursor-stride >= 0 {
			m.cursor -= stride
		}
	case key.Matches(msg, m.board.Down):
		if stride := gridColumns(m.columns, m.width); m.cursor+stride < n {
			m.cursor += stride
		}
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.form.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.form.Cancel):
		m.cancel()
		return m, nil
	case key.Matches(msg, m.form.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.form.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.form.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.form.Press) && m.focus != focusDescription:
		switch m.focus {
		case focusTitle:
			return m, m.setFocus(focusDescription)
		case focusOK:
			m.save()
		case focusCancel:
			m.cancel()
		}
		return m, nil
	}
	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused field and copies its value into
// the edit buffer.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		m.ctrl.SetTitle(m.title.Value())
	case focusDescription:
		m.desc, cmd = m.desc.Update(msg)
		m.ctrl.SetDescription(m.desc.Value())
	}
	return cmd
}

// openForm loads the controller buffer into the fields and focuses the title.
func (m *Model) openForm() tea.Cmd {
	buf := m.ctrl.Buffer()
	m.status = ""
	m.title.SetValue(buf.Title)
	m.title.CursorEnd()
	m.desc.SetValue(buf.Description)
	return m.setFocus(focusTitle)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.desc.Focus()
	}
	return nil
}

func (m *Model) closeForm() {
	m.title.Blur()
	m.desc.Blur()
	m.title.Reset()
	m.desc.Reset()
	m.focus = focusTitle
}

func (m *Model) cancel() {
	m.ctrl.Cancel()
	m.closeForm()
}

// save runs the save guard. A refused save keeps the modal as it is.
func (m *Model) save() {
	creating := m.ctrl.Mode() == form.Creating
	saved, err := m.ctrl.Save()
	if err != nil {
		m.logger.Error("save failed", "err", err)
		m.status = "Could not create task: " + err.Error()
		return
	}
	if !saved {
		return
	}
	m.closeForm()
	if creating {
		m.cursor = m.ctrl.Store().Len() - 1
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	m.height = height
	m.help.Width = width

	fieldWidth := modalWidth(width) - 6
	m.title.Width = fieldWidth
	m.desc.SetWidth(fieldWidth)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ctrl.Open() {
		return m.viewModal()
	}
	return m.viewBoard()
}

func clampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
