package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sdui/internal/generate"
)

type generateOptions struct {
	render bool
	dark   bool
	width  int
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <prompt>...",
		Short: "Produce a screen document from a prompt",
		Long: `Match the prompt against the built-in templates and print the chosen
document as YAML, or paint it with --render.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			gen := generate.NewKeywordGenerator(app.Settings.Generate.Latency)

			app.Log.Debug("generating screen", "prompt", prompt, "latency", app.Settings.Generate.Latency.String())
			screen, err := gen.Generate(cmd.Context(), prompt)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if !opts.render {
				src, err := generate.Source(generate.Match(prompt))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}

			result, err := app.Engine.RenderScreen(screen, app.dark(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.painter(opts.width).Paint(result.Output))
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.render, "render", "r", false, "Paint the generated screen instead of printing YAML")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark theme variant")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Paint width in cells (default: terminal width)")

	return cmd
}
