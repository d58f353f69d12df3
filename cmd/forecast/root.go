package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/finboard/forecast/internal/config"
	"github.com/finboard/forecast/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// nowFunc supplies the default projection start month.
var nowFunc = time.Now

type rootOptions struct {
	settingsPath string
	logLevel     string
	logJSON      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "forecast",
		Short:        "Monthly cash flow projection",
		Long:         "Project liquid balances month by month from a snapshot of assets, income and expenses.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env FORECAST_LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")

	cmd.AddCommand(
		newProjectCmd(opts),
		newExampleCmd(),
		newFormatsCmd(),
		newSettingsCmd(opts),
	)
	return cmd
}

// loadSettings reads the settings file named by --settings, or the default one.
func (o *rootOptions) loadSettings() (config.Settings, error) {
	return config.LoadSettings(o.settingsPath)
}

// newLogger builds the logrus logger handed to the engine. The flag wins over
// the environment, which wins over the settings file.
func (o *rootOptions) newLogger(w io.Writer, settings config.Settings) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if o.logJSON || settings.Logging.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level := o.logLevel
	if level == "" {
		level = os.Getenv("FORECAST_LOG_LEVEL")
	}
	if level == "" {
		level = settings.Logging.Level
	}
	logLevel, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logLevel = logrus.WarnLevel
		if level != "" {
			logger.Warnf("unknown log level %q, using warn", level)
		}
	}
	logger.SetLevel(logLevel)
	return logger
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			fmt.Fprintln(out, "Use \"all\" with --out-dir to write every format.")
			return nil
		},
	}
}
