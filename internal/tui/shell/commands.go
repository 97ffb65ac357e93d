package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sdui/internal/generate"
)

// generateCmd runs the generator off the update loop.
func generateCmd(ctx context.Context, gen generate.Generator, prompt string, seq int) tea.Cmd {
	return func() tea.Msg {
		screen, err := gen.Generate(ctx, prompt)
		return GeneratedMsg{Seq: seq, Screen: screen, Err: err}
	}
}
