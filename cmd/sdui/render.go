package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sdui/internal/engine"
	"github.com/alexisbeaulieu97/sdui/internal/render"
)

const (
	formatJSON  = "json"
	formatTree  = "tree"
	formatPaint = "paint"
)

type renderOptions struct {
	format string
	dark   bool
	width  int
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a screen document",
		Long:  `Load, validate and render a screen document. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := renderDocument(cmd, app, args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), app, result, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatPaint, "Output format (json, tree, paint)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark theme variant")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Paint width in cells (default: terminal width)")

	return cmd
}

func renderDocument(cmd *cobra.Command, app *AppContext, path string) (*engine.Result, error) {
	dark := app.dark(cmd)
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return app.Engine.RenderBytes("stdin", data, dark)
	}
	return app.Engine.RenderFile(path, dark)
}

func writeResult(w io.Writer, app *AppContext, result *engine.Result, opts *renderOptions) error {
	switch strings.ToLower(opts.format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Output)
	case formatTree:
		_, err := fmt.Fprintln(w, instructionTree(result.Output))
		return err
	case formatPaint:
		_, err := fmt.Fprintln(w, app.painter(opts.width).Paint(result.Output))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected json, tree or paint)", opts.format)
	}
}

// instructionTree lists the instruction hierarchy with kinds and ids.
func instructionTree(out *render.ScreenInstruction) *tree.Tree {
	variant := "light"
	if out.IsDark {
		variant = "dark"
	}
	root := tree.Root(fmt.Sprintf("screen %s (%s)", out.ID, variant))
	for _, node := range out.Nodes {
		root.Child(instructionNode(node))
	}
	for _, fb := range out.Fallbacks {
		root.Child(fmt.Sprintf("fallback %s: %s", fb.Attribute, fb.Reason))
	}
	return root
}

func instructionNode(in *render.Instruction) any {
	label := fmt.Sprintf("%s %s", in.KindName, in.ID)
	if in.Layout != nil {
		label += fmt.Sprintf(" [%dx%d]", in.Layout.Width, in.Layout.Height)
	}
	if len(in.Children) == 0 {
		return label
	}
	node := tree.Root(label)
	for _, child := range in.Children {
		node.Child(instructionNode(child))
	}
	return node
}
