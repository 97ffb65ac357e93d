package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type themeExportOptions struct {
	format string
	dark   bool
	both   bool
}

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect theme tokens",
	}
	cmd.AddCommand(newThemeExportCmd(app))
	return cmd
}

func newThemeExportCmd(app *AppContext) *cobra.Command {
	opts := &themeExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the active token table",
		Long: `Print the token table of the selected variant. With --both the light and
dark tables are printed together in the layout accepted by theme.tokens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := app.Engine.Themes()

			var payload any = themes.Select(app.dark(cmd)).Export()
			if opts.both {
				payload = map[string]any{
					"light": themes.Light().Export(),
					"dark":  themes.Dark().Export(),
				}
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(opts.format) {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(payload); err != nil {
					return fmt.Errorf("encode tokens: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			default:
				return fmt.Errorf("unsupported format %q (expected yaml or json)", opts.format)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format (yaml, json)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Export the dark variant")
	cmd.Flags().BoolVar(&opts.both, "both", false, "Export light and dark variants together")

	return cmd
}
