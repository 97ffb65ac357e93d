package shell

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	navstate "github.com/alexisbeaulieu97/sdui/internal/shell"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.painter = m.newPainter()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.state.Phase != navstate.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GeneratedMsg:
		return m.handleGenerated(msg), nil

	case ToggleThemeMsg:
		m.dark = !m.dark
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.stopGeneration()
		return m, tea.Quit
	}

	switch m.state.Phase {
	case navstate.PhaseLoading:
		if msg.Type == tea.KeyEsc {
			m.stopGeneration()
			m.state, _ = m.state.Fail(context.Canceled)
			m.afterLeavingLoading()
		}
		return m, nil

	case navstate.PhaseRendered:
		if m.input.Focused() {
			return m.handleInputKeys(msg)
		}
		return m.handleScreenKeys(msg)

	default:
		return m.handleInputKeys(msg)
	}
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit(m.input.Value())
	case tea.KeyEsc:
		if m.state.Phase == navstate.PhaseRendered {
			m.input.Blur()
			m.input.Reset()
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "b":
		m.state, _ = m.state.Back()
		m.viewport.SetContent("")
		m.input.Reset()
		return m, m.input.Focus()
	case "/", "n":
		return m, m.input.Focus()
	case "d", "t":
		return m.Update(ToggleThemeMsg{})
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) submit(prompt string) (tea.Model, tea.Cmd) {
	next, err := m.state.Submit(prompt)
	if err != nil {
		return m, nil
	}

	m.state = next
	m.seq++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.input.Reset()
	m.input.Blur()

	return m, tea.Batch(m.spinner.Tick, generateCmd(ctx, m.generator, next.Prompt, m.seq))
}

func (m Model) handleGenerated(msg GeneratedMsg) Model {
	if msg.Seq != m.seq || m.state.Phase != navstate.PhaseLoading {
		return m
	}
	m.stopGeneration()

	if msg.Err != nil {
		m.state, _ = m.state.Fail(msg.Err)
		m.afterLeavingLoading()
		return m
	}

	if _, err := m.engine.RenderScreen(msg.Screen, m.dark); err != nil {
		m.state, _ = m.state.Fail(err)
		m.afterLeavingLoading()
		return m
	}

	m.state, _ = m.state.Complete(msg.Screen)
	m.viewport.GotoTop()
	m.refresh()
	return m
}

func (m *Model) afterLeavingLoading() {
	if m.state.Phase == navstate.PhaseEmpty {
		m.input.Focus()
	}
	m.refresh()
}

func (m *Model) stopGeneration() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// refresh repaints the visible screen for the current theme and width.
func (m *Model) refresh() {
	if m.state.Phase != navstate.PhaseRendered || m.state.Screen == nil {
		return
	}
	result, err := m.engine.RenderScreen(m.state.Screen, m.dark)
	if err != nil {
		m.state.Err = errors.Join(m.state.Err, err)
		return
	}
	m.viewport.SetContent(m.painter.Paint(result.Output))
}
