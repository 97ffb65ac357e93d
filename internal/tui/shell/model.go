// Package shell is the interactive prompt-to-screen front end.
package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sdui/internal/engine"
	"github.com/alexisbeaulieu97/sdui/internal/generate"
	"github.com/alexisbeaulieu97/sdui/internal/paint/terminal"
	navstate "github.com/alexisbeaulieu97/sdui/internal/shell"
)

// chrome is the number of lines used by the header and footer.
const chrome = 4

// Model is the bubbletea model of the shell.
type Model struct {
	state navstate.State

	engine    *engine.Engine
	generator generate.Generator
	renderer  *lipgloss.Renderer
	painter   *terminal.Painter

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	dark   bool
	seq    int
	cancel context.CancelFunc

	width  int
	height int
}

// Options configures a new Model.
type Options struct {
	Engine    *engine.Engine
	Generator generate.Generator
	Renderer  *lipgloss.Renderer
	Dark      bool
	Width     int
	Height    int
}

// NewModel creates the shell model in the empty phase.
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Describe a screen, e.g. \"a music player\""
	input.Prompt = "› "
	input.CharLimit = 200
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	eng := opts.Engine
	if eng == nil {
		eng = engine.New()
	}
	gen := opts.Generator
	if gen == nil {
		gen = generate.NewKeywordGenerator(0)
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = terminal.DefaultWidth
	}
	if height <= 0 {
		height = 24
	}

	m := Model{
		engine:    eng,
		generator: gen,
		renderer:  r,
		input:     input,
		spinner:   s,
		viewport:  viewport.New(width, max(height-chrome, 1)),
		dark:      opts.Dark,
		width:     width,
		height:    height,
	}
	m.painter = terminal.New(terminal.WithRenderer(r), terminal.WithWidth(width))
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Phase returns the current navigation phase.
func (m Model) Phase() navstate.Phase {
	return m.state.Phase
}

// State returns the navigation state.
func (m Model) State() navstate.State {
	return m.state
}

// Dark reports whether the dark variant is active.
func (m Model) Dark() bool {
	return m.dark
}
