package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sdui/internal/engine"
	"github.com/alexisbeaulieu97/sdui/pkg/diff"
)

type diffOptions struct {
	format string
	dark   bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <document> [other]",
		Short: "Compare render output",
		Long: `With one document, compare its light and dark render output. With two,
compare the render output of both documents in the selected variant.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				before, after           *engine.Result
				beforeLabel, afterLabel string
				err                     error
			)

			if len(args) == 1 {
				beforeLabel, afterLabel = args[0]+" (light)", args[0]+" (dark)"
				if before, err = app.Engine.RenderFile(args[0], false); err != nil {
					return err
				}
				if after, err = app.Engine.RenderFile(args[0], true); err != nil {
					return err
				}
			} else {
				dark := app.dark(cmd)
				beforeLabel, afterLabel = args[0], args[1]
				if before, err = app.Engine.RenderFile(args[0], dark); err != nil {
					return err
				}
				if after, err = app.Engine.RenderFile(args[1], dark); err != nil {
					return err
				}
			}

			a, err := encodeResult(before, opts.format)
			if err != nil {
				return err
			}
			b, err := encodeResult(after, opts.format)
			if err != nil {
				return err
			}

			res := diff.Lines(a, b, beforeLabel, afterLabel)
			out := cmd.OutOrStdout()
			if res.Identical() {
				fmt.Fprintln(out, "no differences")
				return nil
			}
			fmt.Fprint(out, res.Text)
			fmt.Fprintf(out, "%d added, %d removed\n", res.Added, res.Removed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Compared format (json, tree)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Render both documents with the dark variant")

	return cmd
}

func encodeResult(result *engine.Result, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Output); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatTree:
		return []byte(instructionTree(result.Output).String() + "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected json or tree)", format)
	}
}
