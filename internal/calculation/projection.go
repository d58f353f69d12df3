package calculation

import (
	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// yieldPrecision bounds the decimal places carried by compounded yield. Without it
// the digit count of each asset value grows every month of a long horizon.
const yieldPrecision = 12

// GenerateMonthlyProjection steps the aggregated inputs forward one month at a
// time and returns records for months 0..months inclusive. Month 0 is the
// current state and never carries a net change.
func (pe *ProjectionEngine) GenerateMonthlyProjection(inputs *AggregatedInputs, months int, recurringVariable bool) []domain.MonthRecord {
	if months < 0 {
		months = 0
	}
	records := make([]domain.MonthRecord, 0, months+1)

	initial := inputs.TotalLiquid
	runningBalance := initial

	// Accrued yield is reinvested into the asset that earned it
	compounded := make([]decimal.Decimal, len(inputs.YieldAssets))
	for j, yp := range inputs.YieldAssets {
		compounded[j] = yp.Value
	}

	records = append(records, buildMonthRecord(0, runningBalance, initial, monthFlows{
		passive:   inputs.TotalPassiveIncome,
		active:    inputs.TotalActiveIncome,
		dividend:  inputs.ExpectedYield(),
		recurring: inputs.TotalRecurringExpenses,
		variable:  decimal.Zero,
	}, decimal.Zero))

	for month := 1; month <= months; month++ {
		dividend := decimal.Zero
		for j, yp := range inputs.YieldAssets {
			y := yp.MonthlyYield(compounded[j]).Round(yieldPrecision)
			compounded[j] = compounded[j].Add(y)
			dividend = dividend.Add(y)
		}

		variable := decimal.Zero
		for _, se := range inputs.VariableExpenses {
			if se.AppliesIn(month, recurringVariable) {
				variable = variable.Add(se.Amount)
			}
		}

		flows := monthFlows{
			passive:   inputs.TotalPassiveIncome,
			active:    inputs.TotalActiveIncome,
			dividend:  dividend,
			recurring: inputs.TotalRecurringExpenses,
			variable:  variable,
		}
		netChange := flows.net()
		runningBalance = runningBalance.Add(netChange)

		if pe.Debug {
			pe.Logger.Debugf("month %d: income=%s expenses=%s dividend=%s net=%s balance=%s",
				month, flows.income().StringFixed(2), flows.expenses().StringFixed(2),
				dividend.StringFixed(2), netChange.StringFixed(2), runningBalance.StringFixed(2))
		}

		records = append(records, buildMonthRecord(month, runningBalance, initial, flows, netChange))
	}

	return records
}

// monthFlows are the cash flows of a single month before they touch the balance
type monthFlows struct {
	passive   decimal.Decimal
	active    decimal.Decimal
	dividend  decimal.Decimal
	recurring decimal.Decimal
	variable  decimal.Decimal
}

func (f monthFlows) income() decimal.Decimal {
	return f.passive.Add(f.dividend).Add(f.active)
}

func (f monthFlows) expenses() decimal.Decimal {
	return f.recurring.Add(f.variable)
}

func (f monthFlows) net() decimal.Decimal {
	return f.income().Sub(f.expenses())
}

func buildMonthRecord(month int, balance, initial decimal.Decimal, f monthFlows, netChange decimal.Decimal) domain.MonthRecord {
	growth := balance.Sub(initial)
	change := decimal.Zero
	if !initial.IsZero() {
		change = growth.Div(initial).Mul(hundred)
	}
	return domain.MonthRecord{
		Month:             month,
		Balance:           balance,
		MonthlyIncome:     f.income(),
		MonthlyExpenses:   f.expenses(),
		NetChange:         netChange,
		PassiveIncome:     f.passive,
		ActiveIncome:      f.active,
		RecurringExpenses: f.recurring,
		VariableExpenses:  f.variable,
		DividendIncome:    f.dividend,
		CumulativeGrowth:  growth,
		BalanceChange:     change,
	}
}
