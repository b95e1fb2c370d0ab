// Package tui renders the focus timer in the terminal with bubbletea.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"neonfocus/internal/core/session"
	"neonfocus/internal/debug"
	"neonfocus/internal/tasks"
)

const (
	eventBuffer      = 64
	maxProgressWidth = 48
)

// eventMsg wraps a controller event.
type eventMsg session.Event

// eventsClosedMsg is sent once the controller closed its subscription.
type eventsClosedMsg struct{}

// Model is the bubbletea model for the timer screen.
type Model struct {
	controller *session.Controller
	tasks      *tasks.List
	events     <-chan session.Event
	keys       KeyMap
	progress   progress.Model
	input      textinput.Model

	snapshot session.Snapshot
	cursor   int
	adding   bool
	banner   string
	errText  string
	width    int
}

// NewModel creates a model bound to controller and list.
func NewModel(controller *session.Controller, list *tasks.List) Model {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 120

	if list == nil {
		list = tasks.NewList()
	}

	return Model{
		controller: controller,
		tasks:      list,
		events:     controller.Subscribe(eventBuffer),
		keys:       DefaultKeyMap(),
		progress: progress.New(
			progress.WithGradient(string(ColorCyan), string(ColorPink)),
			progress.WithWidth(maxProgressWidth),
			progress.WithoutPercentage(),
		),
		input:    input,
		snapshot: controller.Snapshot(),
	}
}

func waitForEvent(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKey(msg)
		}
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(10, min(maxProgressWidth, msg.Width-12))
		return m, nil

	case eventMsg:
		m.snapshot = msg.Snapshot
		if msg.Type == session.EventSessionComplete {
			m.banner = msg.Message
			debug.Logf("tui: session complete: %s", msg.Message)
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.controller.Snapshot().Running {
			m.controller.Pause()
		} else {
			m.banner = ""
			m.controller.Start()
		}

	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()

	case key.Matches(msg, m.keys.FocusUp):
		m.controller.SetFocusMinutes(m.controller.Config().FocusMinutes + 1)

	case key.Matches(msg, m.keys.FocusDown):
		m.controller.SetFocusMinutes(m.controller.Config().FocusMinutes - 1)

	case key.Matches(msg, m.keys.BreakUp):
		m.controller.SetBreakMinutes(m.controller.Config().BreakMinutes + 1)

	case key.Matches(msg, m.keys.BreakDown):
		m.controller.SetBreakMinutes(m.controller.Config().BreakMinutes - 1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.tasks.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.AddTask):
		m.adding = true
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleTask):
		if task, ok := m.selectedTask(); ok {
			if _, err := m.tasks.Toggle(task.ID); err != nil {
				m.errText = err.Error()
			}
		}

	case key.Matches(msg, m.keys.DeleteTask):
		if task, ok := m.selectedTask(); ok {
			if err := m.tasks.Remove(task.ID); err != nil {
				m.errText = err.Error()
			}
			m.clampCursor()
		}
	}

	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		_, err := m.tasks.Add(m.input.Value())
		switch {
		case errors.Is(err, tasks.ErrEmptyTask):
			m.errText = "task text is empty"
		case err != nil:
			m.errText = err.Error()
		default:
			m.errText = ""
			m.cursor = m.tasks.Len() - 1
		}
		m.stopAdding()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.stopAdding()
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) selectedTask() (tasks.Task, bool) {
	items := m.tasks.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return tasks.Task{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	if last := m.tasks.Len() - 1; m.cursor > last {
		m.cursor = max(0, last)
	}
}
