package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/sdui/internal/generate"
	"github.com/alexisbeaulieu97/sdui/internal/tui/shell"
)

func newShellCmd(app *AppContext) *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Launch the interactive prompt-to-screen shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height := 0, 0
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width, height = w, h
			}

			model := shell.NewModel(shell.Options{
				Engine:    app.Engine,
				Generator: generate.NewKeywordGenerator(app.Settings.Generate.Latency),
				Renderer:  app.Renderer,
				Dark:      app.dark(cmd),
				Width:     width,
				Height:    height,
			})

			app.Log.Debug("launching shell", "width", width, "height", height)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Start with the dark theme variant")

	return cmd
}
