package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sdui/internal/engine"
	"github.com/alexisbeaulieu97/sdui/internal/watch"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

type previewOptions struct {
	watch bool
	dark  bool
	width int
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Paint a document and optionally repaint it on change",
		Long: `Paint a screen document to the terminal. With --watch the document (and the
token file named in settings) is watched and repainted after every change. A
document that fails to render leaves the previous screen in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &previewer{app: app, out: cmd.OutOrStdout(), path: args[0], dark: app.dark(cmd), width: opts.width}
			if err := p.repaint(); err != nil && !opts.watch {
				return err
			}
			if !opts.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return p.watch(ctx)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Repaint when the document or tokens change")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark theme variant")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Paint width in cells (default: terminal width)")

	return cmd
}

type previewer struct {
	app   *AppContext
	out   io.Writer
	path  string
	dark  bool
	width int
}

// repaint renders the document. On failure the last good screen is painted
// again with the error below it.
func (p *previewer) repaint() error {
	result, err := p.app.Engine.RenderFile(p.path, p.dark)
	if err != nil {
		if last := p.app.Engine.Last(); last != nil {
			p.paint(last)
		}
		fmt.Fprintf(p.out, "error: %v\n", err)
		return err
	}
	p.paint(result)
	return nil
}

func (p *previewer) paint(result *engine.Result) {
	fmt.Fprint(p.out, clearScreen)
	fmt.Fprintln(p.out, p.app.painter(p.width).Paint(result.Output))
}

func (p *previewer) watch(ctx context.Context) error {
	tokens := p.app.Settings.Theme.Tokens
	w, err := watch.New([]string{p.path, tokens}, watch.WithLogger(p.app.Log))
	if err != nil {
		return err
	}

	tokensAbs := ""
	if tokens != "" {
		tokensAbs, _ = filepath.Abs(tokens)
	}

	p.app.Log.Info("watching document", "path", p.path)
	err = w.Run(ctx, func(paths []string) {
		for _, changed := range paths {
			if changed != tokensAbs {
				continue
			}
			themes, err := loadThemes(p.app.Settings)
			if err != nil {
				p.app.Log.Error(err, "theme reload failed", "path", tokens)
				continue
			}
			if err := p.app.Engine.SetThemeContext(themes); err != nil {
				p.app.Log.Error(err, "theme reload failed", "path", tokens)
			}
		}
		_ = p.repaint()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
