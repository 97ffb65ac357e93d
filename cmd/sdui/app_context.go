package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/sdui/internal/config"
	"github.com/alexisbeaulieu97/sdui/internal/engine"
	"github.com/alexisbeaulieu97/sdui/internal/logger"
	"github.com/alexisbeaulieu97/sdui/internal/metrics"
	"github.com/alexisbeaulieu97/sdui/internal/paint/terminal"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Settings config.Settings
	Log      *logger.Logger
	Metrics  *metrics.Collector
	Renderer *lipgloss.Renderer
	Painter  *terminal.Painter
	Engine   *engine.Engine
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	level := settings.Log.Level
	if flags.logLevel != "" {
		level = strings.ToLower(flags.logLevel)
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     "sdui",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	themes, err := loadThemes(settings)
	if err != nil {
		return err
	}

	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
	painter := terminal.New(terminal.WithRenderer(renderer), terminal.WithWidth(paintWidth(settings, 0)))
	dispatcher := render.NewDispatcher(
		render.WithMaxDepth(settings.Render.MaxDepth),
		render.WithMeasurer(painter.Measurer()),
	)
	collector := metrics.NewCollector("sdui")

	a.Settings = settings
	a.Log = log
	a.Metrics = collector
	a.Renderer = renderer
	a.Painter = painter
	a.Engine = engine.New(
		engine.WithLogger(log),
		engine.WithMetrics(collector),
		engine.WithDispatcher(dispatcher),
		engine.WithThemeContext(themes),
	)
	return nil
}

// loadThemes returns the built-in themes unless settings name a token file.
func loadThemes(settings config.Settings) (*theme.Context, error) {
	if settings.Theme.Tokens == "" {
		return theme.DefaultContext(), nil
	}
	set, err := theme.LoadTokens(settings.Theme.Tokens)
	if err != nil {
		return nil, err
	}
	return theme.NewContextFromTokens(set)
}

// dark picks the theme variant. An explicit --dark flag wins over settings.
func (a *AppContext) dark(cmd *cobra.Command) bool {
	if flag := cmd.Flags().Lookup("dark"); flag != nil && flag.Changed {
		return flag.Value.String() == "true"
	}
	return a.Settings.ResolveDark(a.Renderer.HasDarkBackground)
}

// paintWidth resolves the paint width: the flag, then settings, then the
// terminal, then the default.
func paintWidth(settings config.Settings, flagWidth int) int {
	switch {
	case flagWidth > 0:
		return flagWidth
	case settings.Render.Width > 0:
		return settings.Render.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return terminal.DefaultWidth
}

// painter returns the shared painter, or one sized for an explicit width.
func (a *AppContext) painter(flagWidth int) *terminal.Painter {
	if flagWidth <= 0 {
		return a.Painter
	}
	return terminal.New(terminal.WithRenderer(a.Renderer), terminal.WithWidth(flagWidth))
}
