package main

import (
	"fmt"
	"time"

	"github.com/finboard/forecast/internal/calculation"
	"github.com/finboard/forecast/internal/config"
	"github.com/finboard/forecast/internal/output"
	"github.com/finboard/forecast/pkg/dateutil"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	format            string
	months            int
	asOf              string
	recurringVariable bool
	outDir            string
	currency          string
	debug             bool
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project <snapshot.yaml>",
		Short: "Project a snapshot document month by month",
		Long: `Project a snapshot document month by month.

The horizon comes from --months, then the document's projection_months, then
the settings file. The projection starts in the --as-of month, which defaults
to the current month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format, see \"forecast formats\"")
	cmd.Flags().IntVarP(&opts.months, "months", "m", 0, "Projection horizon in months, overrides the document")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Start month as YYYY-MM or YYYY-MM-DD (default current month)")
	cmd.Flags().BoolVar(&opts.recurringVariable, "recurring-variable", false, "Charge undated variable expenses every month instead of once")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Write the report to a timestamped file in this directory")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "Currency symbol for text output")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log every projected month")
	return cmd
}

func runProject(cmd *cobra.Command, root *rootOptions, opts *projectOptions, path string) error {
	settings, err := root.loadSettings()
	if err != nil {
		return err
	}
	logger := root.newLogger(cmd.ErrOrStderr(), settings)

	parser := config.NewInputParser()
	snapshot, err := parser.LoadFromFile(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("months"):
		snapshot.ProjectionMonths = opts.months
	case snapshot.ProjectionMonths == 0:
		snapshot.ProjectionMonths = settings.Projection.DefaultMonths
	}
	if flags.Changed("recurring-variable") {
		snapshot.RecurringVariable = opts.recurringVariable
	} else if settings.Projection.RecurringVariable {
		snapshot.RecurringVariable = true
	}
	if err := parser.ValidateSnapshot(snapshot); err != nil {
		return fmt.Errorf("invalid projection options: %w", err)
	}

	asOf := nowFunc()
	if opts.asOf != "" {
		if asOf, err = dateutil.ParseISODate(opts.asOf); err != nil {
			return fmt.Errorf("invalid --as-of: %w", err)
		}
	}
	asOf = dateutil.BeginningOfMonth(asOf.In(time.UTC))

	engine := calculation.NewProjectionEngine()
	engine.Debug = opts.debug
	engine.SetLogger(logger)

	report, err := engine.ProjectReport(snapshot, asOf)
	if err != nil {
		return err
	}
	report.Currency = firstNonEmpty(opts.currency, settings.Output.CurrencySymbol)

	format := firstNonEmpty(opts.format, settings.Output.Format, "console")
	outDir := firstNonEmpty(opts.outDir, settings.Output.Directory)
	if outDir == "" {
		return output.Render(cmd.OutOrStdout(), report, format)
	}

	files, err := output.GenerateReport(report, format, outDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", f)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
