package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	metrics    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "sdui",
		Short:         "sdui renders declarative screen documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to sdui.yaml settings")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.metrics, "metrics", false, "Print render metrics to stderr on exit")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newShellCmd(app))
	cmd.AddCommand(newVersionCmd())

	reportMetrics(cmd, flags, app)

	return cmd
}

// reportMetrics makes every command print the run's metrics when --metrics
// is set, whether or not the command fails.
func reportMetrics(cmd *cobra.Command, flags *rootFlags, app *AppContext) {
	for _, sub := range cmd.Commands() {
		reportMetrics(sub, flags, app)
	}
	if cmd.RunE == nil {
		return
	}

	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if !flags.metrics || app.Metrics == nil {
				return
			}
			if writeErr := app.Metrics.WriteText(cmd.ErrOrStderr()); err == nil {
				err = writeErr
			}
		}()
		return run(cmd, args)
	}
}
