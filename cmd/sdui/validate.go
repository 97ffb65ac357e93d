package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sdui/internal/render"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document>...",
		Short: "Check screen documents without painting them",
		Long: `Load and validate each document and run a render pass against the
light theme, reporting schema errors, unknown node types and excessive nesting.
Color fallbacks are reported but do not fail validation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				result, err := app.Engine.RenderFile(path, false)
				if err != nil {
					failed++
					fmt.Fprintf(out, "✗ %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "✓ %s: %d nodes, %d fallbacks\n", path, countNodes(result.Output), len(result.Output.Fallbacks))
				for _, fb := range result.Output.Fallbacks {
					fmt.Fprintf(out, "  fallback %s (%q): %s\n", fb.Attribute, fb.Value, fb.Reason)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}

func countNodes(out *render.ScreenInstruction) int {
	n := 0
	out.Walk(func(*render.Instruction) { n++ })
	return n
}
