package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sdui/internal/paint/terminal"
	navstate "github.com/alexisbeaulieu97/sdui/internal/shell"
)

// View renders the current phase.
func (m Model) View() string {
	variant := "light"
	if m.dark {
		variant = "dark"
	}
	header := titleStyle.Render("sdui") + " " + statusStyle.Render(fmt.Sprintf("%s • %s", m.state.Phase, variant))

	var body, footer string
	switch m.state.Phase {
	case navstate.PhaseLoading:
		body = fmt.Sprintf("%s Generating %q…", m.spinner.View(), m.state.Prompt)
		footer = hintStyle.Render("esc cancel • ctrl+c quit")
	case navstate.PhaseRendered:
		body = m.viewport.View()
		if m.input.Focused() {
			footer = m.input.View()
		} else {
			footer = hintStyle.Render("↑/↓ scroll • / new prompt • d theme • esc back • q quit")
		}
	default:
		body = m.input.View()
		footer = hintStyle.Render("enter generate • esc quit")
	}

	sections := []string{header, body}
	if msg := errorText(m.state.Err); msg != "" {
		sections = append(sections, errorStyle.Render(msg))
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "Generation cancelled"
	default:
		return strings.TrimSpace("Error: " + err.Error())
	}
}

func (m Model) newPainter() *terminal.Painter {
	return terminal.New(terminal.WithRenderer(m.renderer), terminal.WithWidth(m.width))
}
