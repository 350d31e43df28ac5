// Package tui provides a full-screen view of the task list.
// It offers the same operations as the line session: add, mark done,
// and save on quit.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
)

// Deps holds the use cases the view dispatches to.
type Deps struct {
	AddTask   *usecase.AddTask
	MarkDone  *usecase.MarkDone
	SaveTasks *usecase.SaveTasks
}

// MsgSaved reports the result of saving the list.
type MsgSaved struct {
	Err error
}

// Model is the task list TUI model.
type Model struct {
	// Dependencies
	list *domain.TaskList
	deps Deps

	// State
	err    error
	status string

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	cursor int
	width  int
	mode   Mode

	// Boolean state
	saving bool
	saved  bool
}

// New creates a new model over list.
func New(list *domain.TaskList, deps Deps) *Model {
	ai := textinput.New()
	ai.Placeholder = "Task description..."
	ai.CharLimit = 500

	return &Model{
		list:     list,
		deps:     deps,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		addInput: ai,
		mode:     ModeNormal,
	}
}

// Saved reports whether the list was saved before the program quit.
func (m *Model) Saved() bool {
	return m.saved
}

// Err returns the last error shown by the view.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}
		if m.mode == ModeAdd {
			return m.handleAddMode(msg)
		}
		return m.handleNormalMode(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case MsgSaved:
		m.saving = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.saved = true
		return m, tea.Quit
	}

	return m, nil
}

// handleNormalMode handles keys while browsing the list.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Done):
		m.markSelectedDone()
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.err = nil
		m.status = ""
		return m, m.addInput.Focus()
	case key.Matches(msg, m.keys.Quit):
		m.saving = true
		return m, m.save()
	}
	return m, nil
}

// handleAddMode handles keys in the add dialog.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		description := strings.TrimSpace(m.addInput.Value())
		out, err := m.deps.AddTask.Execute(context.Background(), usecase.AddTaskInput{
			List:        m.list,
			Description: description,
		})
		if err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("Added task %d.", out.Task.ID)
			m.cursor = m.list.Len() - 1
		}
		m.closeAddMode()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closeAddMode()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) closeAddMode() {
	m.mode = ModeNormal
	m.addInput.Reset()
	m.addInput.Blur()
}

func (m *Model) markSelectedDone() {
	if m.list.Len() == 0 {
		return
	}
	id := m.list.Tasks[m.cursor].ID
	_, err := m.deps.MarkDone.Execute(context.Background(), usecase.MarkDoneInput{
		List:   m.list,
		TaskID: id,
	})
	switch {
	case err == nil:
		m.err = nil
		m.status = "Task marked as done."
	case errors.Is(err, domain.ErrAlreadyDone):
		m.err = nil
		m.status = "Task is already marked as done."
	default:
		m.err = err
	}
}

// save writes the list in a command so the view stays responsive.
func (m *Model) save() tea.Cmd {
	list := m.list.Clone()
	return func() tea.Msg {
		_, err := m.deps.SaveTasks.Execute(context.Background(), usecase.SaveTasksInput{List: list})
		return MsgSaved{Err: err}
	}
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ToDo List"))
	b.WriteString("\n")

	if m.list.Len() == 0 {
		b.WriteString(m.styles.Help.UnsetMarginTop().Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, t := range m.list.Tasks {
		b.WriteString(m.renderTaskLine(t, i == m.cursor))
		b.WriteString("\n")
	}

	if n := m.list.DoneCount(); n > 0 {
		b.WriteString(m.styles.Summary.Render(fmt.Sprintf("%d of %d task(s) done", n, m.list.Len())))
		b.WriteString("\n")
	}

	if m.mode == ModeAdd {
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.addInput.View()))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTaskLine(t domain.Task, selected bool) string {
	cursor := "  "
	style := m.styles.Normal
	if selected {
		cursor = "> "
		style = m.styles.Selected
	}
	glyph := t.Status().Glyph()
	if t.Done {
		glyph = m.styles.Done.Render(glyph)
	}
	return cursor + glyph + " " + style.Render(fmt.Sprintf("%d %s", t.ID, t.Description))
}

func (m *Model) helpLine() string {
	var bindings []key.Binding
	if m.mode == ModeAdd {
		bindings = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	} else {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Done, m.keys.Add, m.keys.Quit, m.keys.Abort}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run starts the program over in/out and blocks until it quits.
// It returns the save error if the final save failed.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if !m.saved && m.err != nil {
		return m.err
	}
	return nil
}
