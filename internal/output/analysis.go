package output

import (
	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthHighlights encapsulates the strongest and weakest projected months.
type MonthHighlights struct {
	BestMonth      int
	BestNetChange  decimal.Decimal
	WorstMonth     int
	WorstNetChange decimal.Decimal
	// VariableMonths lists months that carry a variable expense
	VariableMonths []int
}

// AnalyzeMonths finds the months with the highest and lowest net change.
// Month 0 is skipped because it never carries a change. Ties keep the earliest month.
// Extracted from the console formatter for testability.
func AnalyzeMonths(result *domain.ProjectionResult) MonthHighlights {
	var h MonthHighlights
	if len(result.MonthRecords) < 2 {
		return h
	}
	first := result.MonthRecords[1]
	h.BestMonth, h.BestNetChange = first.Month, first.NetChange
	h.WorstMonth, h.WorstNetChange = first.Month, first.NetChange
	for _, m := range result.MonthRecords[1:] {
		if m.NetChange.GreaterThan(h.BestNetChange) {
			h.BestMonth, h.BestNetChange = m.Month, m.NetChange
		}
		if m.NetChange.LessThan(h.WorstNetChange) {
			h.WorstMonth, h.WorstNetChange = m.Month, m.NetChange
		}
		if m.VariableExpenses.IsPositive() {
			h.VariableMonths = append(h.VariableMonths, m.Month)
		}
	}
	return h
}
