package output

import (
	"time"

	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func month(n int, income, recurring, variable, net, balance string) domain.MonthRecord {
	return domain.MonthRecord{
		Month:             n,
		Balance:           d(balance),
		MonthlyIncome:     d(income),
		MonthlyExpenses:   d(recurring).Add(d(variable)),
		NetChange:         d(net),
		PassiveIncome:     d("500"),
		ActiveIncome:      decimal.Zero,
		RecurringExpenses: d(recurring),
		VariableExpenses:  d(variable),
		DividendIncome:    d("20"),
		CumulativeGrowth:  d(balance).Sub(d("10000")),
		BalanceChange:     d(balance).Sub(d("10000")).Div(d("100")),
	}
}

// buildTestReport is a three month projection with a one-off expense in month 2.
func buildTestReport() *domain.ProjectionReport {
	return &domain.ProjectionReport{
		Name: "Test",
		AsOf: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Result: domain.ProjectionResult{
			MonthRecords: []domain.MonthRecord{
				month(0, "520", "300", "0", "0", "10000"),
				month(1, "520", "300", "0", "220", "10220"),
				month(2, "520", "300", "1000", "-780", "9440"),
				month(3, "520", "300", "0", "220", "9660"),
			},
			Summary: domain.ProjectionSummary{
				InitialBalance:       d("10000"),
				FinalBalance:         d("9660"),
				TotalGrowth:          d("-340"),
				MonthlyAverage:       d("-113.33"),
				FIRatio:              d("166.67"),
				IsPositiveProjection: false,
				EmergencyFundMonths:  d("33.33"),
				TotalDividendIncome:  d("60"),
				Trend:                domain.TrendDeclining,
				RiskTier:             domain.RiskModerate,
			},
		},
		Assumptions: []string{"Undated variable expenses: charged once, in month 1"},
		Currency:    "$",
	}
}
