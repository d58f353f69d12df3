package calculation

import (
	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// FITargetMultiple is applied to monthly recurring expenses to get the
// balance treated as financially independent (the 4% withdrawal heuristic).
var FITargetMultiple = decimal.NewFromInt(25)

// Emergency fund coverage thresholds, in months of recurring expenses
var (
	comfortableCoverage = decimal.NewFromInt(6)
	minimumCoverage     = decimal.NewFromInt(3)
)

// DeriveSummary reduces a month sequence into scalar metrics. It never fails:
// degenerate input (no records, no expenses, zero horizon) yields zero values.
func DeriveSummary(records []domain.MonthRecord, inputs *AggregatedInputs) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		InitialBalance:       decimal.Zero,
		FinalBalance:         decimal.Zero,
		TotalGrowth:          decimal.Zero,
		MonthlyAverage:       decimal.Zero,
		FIRatio:              decimal.Zero,
		EmergencyFundMonths:  decimal.Zero,
		TotalDividendIncome:  decimal.Zero,
		IsPositiveProjection: true,
		Trend:                domain.TrendFlat,
		RiskTier:             domain.RiskLow,
	}
	if len(records) == 0 {
		return summary
	}

	months := len(records) - 1
	summary.InitialBalance = records[0].Balance
	summary.FinalBalance = records[months].Balance
	summary.TotalGrowth = summary.FinalBalance.Sub(summary.InitialBalance)
	if months > 0 {
		summary.MonthlyAverage = summary.TotalGrowth.Div(decimal.NewFromInt(int64(months)))
	}
	summary.IsPositiveProjection = summary.FinalBalance.GreaterThanOrEqual(summary.InitialBalance)

	for _, r := range records[1:] {
		summary.TotalDividendIncome = summary.TotalDividendIncome.Add(r.DividendIncome)
	}

	passive := decimal.Zero
	expenses := decimal.Zero
	if inputs != nil {
		passive = inputs.TotalPassiveIncome
		expenses = inputs.TotalRecurringExpenses
	}

	summary.FIRatio = CalculateFIRatio(passive, expenses)
	summary.MonthsToFI = CalculateMonthsToFI(passive, expenses, summary.InitialBalance, summary.MonthlyAverage)
	if expenses.IsPositive() {
		summary.EmergencyFundMonths = summary.InitialBalance.Div(expenses)
	}

	summary.Trend = classifyTrend(summary.TotalGrowth)
	summary.RiskTier = classifyRisk(summary, expenses)

	return summary
}

// CalculateFIRatio returns passive income as a percentage of monthly recurring
// expenses. 100 or more means passive income covers them.
func CalculateFIRatio(passiveIncome, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if !monthlyExpenses.IsPositive() {
		return decimal.Zero
	}
	return passiveIncome.Div(monthlyExpenses).Mul(hundred)
}

// CalculateMonthsToFI estimates the months until the balance reaches the FI
// target at the current average monthly growth. It returns nil when the
// estimate does not apply: passive income already covers expenses, or the
// balance is not growing.
func CalculateMonthsToFI(passiveIncome, monthlyExpenses, initialBalance, monthlyAverage decimal.Decimal) *int {
	if !passiveIncome.LessThan(monthlyExpenses) || !monthlyAverage.IsPositive() {
		return nil
	}
	target := monthlyExpenses.Mul(FITargetMultiple)
	months := int(target.Sub(initialBalance).Div(monthlyAverage).Ceil().IntPart())
	if months < 0 {
		months = 0
	}
	return &months
}

func classifyTrend(totalGrowth decimal.Decimal) domain.Trend {
	switch {
	case totalGrowth.IsPositive():
		return domain.TrendGrowing
	case totalGrowth.IsNegative():
		return domain.TrendDeclining
	default:
		return domain.TrendFlat
	}
}

// classifyRisk grades the projection by direction and by how many months of
// recurring expenses the current balance covers.
func classifyRisk(summary domain.ProjectionSummary, monthlyExpenses decimal.Decimal) domain.RiskTier {
	if summary.FinalBalance.IsNegative() {
		return domain.RiskHigh
	}
	declining := summary.Trend == domain.TrendDeclining
	if !monthlyExpenses.IsPositive() {
		if declining {
			return domain.RiskModerate
		}
		return domain.RiskLow
	}
	coverage := summary.EmergencyFundMonths
	switch {
	case declining && coverage.LessThan(minimumCoverage):
		return domain.RiskHigh
	case declining || coverage.LessThan(comfortableCoverage):
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
