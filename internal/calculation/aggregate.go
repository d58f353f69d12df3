package calculation

import (
	"time"

	"github.com/finboard/forecast/internal/domain"
	"github.com/finboard/forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// YieldPosition is a yield-eligible asset as seen by the month stepper
type YieldPosition struct {
	AssetID string
	Value   decimal.Decimal
	// Rate is the monthly yield as a fraction (1% -> 0.01)
	Rate decimal.Decimal
}

// MonthlyYield returns the yield a compounded value earns in one month
func (yp YieldPosition) MonthlyYield(value decimal.Decimal) decimal.Decimal {
	return value.Mul(yp.Rate)
}

// ScheduledExpense is an active variable expense with its resolved calendar month
type ScheduledExpense struct {
	ExpenseID string
	Amount    decimal.Decimal
	// Offset is the month index relative to the as-of month; nil when undated
	Offset *int
}

// AppliesIn reports whether the expense is charged in projection month i (i >= 1).
// Undated expenses charge in month 1, or every month when recurringVariable is set.
func (se ScheduledExpense) AppliesIn(month int, recurringVariable bool) bool {
	if month < 1 {
		return false
	}
	if se.Offset == nil {
		return recurringVariable || month == 1
	}
	return *se.Offset == month
}

// AggregatedInputs holds the scalars and collections the month stepper needs
type AggregatedInputs struct {
	TotalLiquid            decimal.Decimal
	TotalPassiveIncome     decimal.Decimal
	TotalActiveIncome      decimal.Decimal
	TotalRecurringExpenses decimal.Decimal
	YieldAssets            []YieldPosition
	VariableExpenses       []ScheduledExpense
}

// ExpectedYield returns one month of yield on the uncompounded snapshot values
func (ai *AggregatedInputs) ExpectedYield() decimal.Decimal {
	total := decimal.Zero
	for _, yp := range ai.YieldAssets {
		total = total.Add(yp.MonthlyYield(yp.Value))
	}
	return total
}

// AggregateInputs collects the parts of a snapshot relevant to projection.
// asOf anchors dated variable expenses; it is never read from the clock here.
func AggregateInputs(snapshot *domain.Snapshot, asOf time.Time, logger Logger) AggregatedInputs {
	if logger == nil {
		logger = NopLogger{}
	}
	inputs := AggregatedInputs{
		TotalLiquid:            decimal.Zero,
		TotalPassiveIncome:     sumActiveIncome(snapshot.PassiveIncomeRecords),
		TotalActiveIncome:      sumActiveIncome(snapshot.ActiveIncomeRecords),
		TotalRecurringExpenses: decimal.Zero,
	}

	for _, asset := range snapshot.LiquidAssets {
		if !asset.IsActive {
			continue
		}
		inputs.TotalLiquid = inputs.TotalLiquid.Add(asset.Value)
		if !asset.IsYieldEligible() {
			if asset.Yield != nil && asset.Yield.AutoCompound {
				logger.Debugf("asset %s: yield config ignored (percent=%s value=%s)", asset.ID, asset.Yield.MonthlyYieldPercent, asset.Value)
			}
			continue
		}
		inputs.YieldAssets = append(inputs.YieldAssets, YieldPosition{
			AssetID: asset.ID,
			Value:   asset.Value,
			Rate:    asset.Yield.MonthlyYieldPercent.Div(hundred),
		})
	}

	for _, expense := range snapshot.ExpenseRecords {
		if !expense.IsActive() {
			continue
		}
		if expense.IsRecurring() {
			inputs.TotalRecurringExpenses = inputs.TotalRecurringExpenses.Add(expense.Amount)
			continue
		}
		scheduled := ScheduledExpense{ExpenseID: expense.ID, Amount: expense.Amount}
		if expense.SpecificDate != "" {
			date, err := dateutil.ParseISODate(expense.SpecificDate)
			if err != nil {
				logger.Warnf("expense %s: %v; it will not be scheduled", expense.ID, err)
				continue
			}
			offset := dateutil.MonthsBetween(asOf, date)
			scheduled.Offset = &offset
		}
		inputs.VariableExpenses = append(inputs.VariableExpenses, scheduled)
	}

	return inputs
}

func sumActiveIncome(records []domain.IncomeRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.IsActive() {
			total = total.Add(r.Amount)
		}
	}
	return total
}
