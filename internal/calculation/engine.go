package calculation

import (
	"fmt"
	"time"

	"github.com/finboard/forecast/internal/domain"
)

// MaxProjectionMonths is the longest horizon the engine is validated for (30 years)
const MaxProjectionMonths = 360

// ProjectionEngine orchestrates aggregation, month stepping and summary derivation.
// It holds no state between calls; one engine may serve concurrent callers.
type ProjectionEngine struct {
	Debug  bool // Enable per-month debug output
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project runs a projection for the snapshot's horizon. asOf is the calendar
// month the projection starts from; dated variable expenses resolve against it.
//
// A negative horizon is a caller error. It is clamped to zero and logged rather
// than failing; InputParser.ValidateSnapshot rejects it at load time.
func (pe *ProjectionEngine) Project(snapshot *domain.Snapshot, asOf time.Time) *domain.ProjectionResult {
	logger := withPrefix(pe.Logger, snapshot.Name)
	months := snapshot.ProjectionMonths
	if months < 0 {
		logger.Warnf("negative projection horizon %d clamped to 0", months)
		months = 0
	}

	inputs := AggregateInputs(snapshot, asOf, logger)
	logger.Debugf("aggregated: liquid=%s passive=%s active=%s recurring=%s yield_assets=%d variable=%d",
		inputs.TotalLiquid.StringFixed(2), inputs.TotalPassiveIncome.StringFixed(2),
		inputs.TotalActiveIncome.StringFixed(2), inputs.TotalRecurringExpenses.StringFixed(2),
		len(inputs.YieldAssets), len(inputs.VariableExpenses))

	stepper := &ProjectionEngine{Debug: pe.Debug, Logger: logger}
	records := stepper.GenerateMonthlyProjection(&inputs, months, snapshot.RecurringVariable)
	summary := DeriveSummary(records, &inputs)

	logger.Infof("projected %d months: %s -> %s (%s)", months,
		summary.InitialBalance.StringFixed(2), summary.FinalBalance.StringFixed(2), summary.Trend)

	return &domain.ProjectionResult{
		MonthRecords: records,
		Summary:      summary,
	}
}

// ProjectReport runs a projection and wraps it with the context formatters render
func (pe *ProjectionEngine) ProjectReport(snapshot *domain.Snapshot, asOf time.Time) (*domain.ProjectionReport, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot is required")
	}
	if snapshot.ProjectionMonths > MaxProjectionMonths {
		pe.Logger.Warnf("projection horizon %d exceeds the validated %d months", snapshot.ProjectionMonths, MaxProjectionMonths)
	}
	result := pe.Project(snapshot, asOf)
	return &domain.ProjectionReport{
		Name:        snapshot.Name,
		AsOf:        asOf,
		Result:      *result,
		Assumptions: GenerateAssumptions(snapshot),
	}, nil
}
