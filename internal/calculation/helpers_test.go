package calculation

import (
	"time"

	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// testAsOf anchors dated expenses so tests never depend on the clock
var testAsOf = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func activeIncome(id, amount string) domain.IncomeRecord {
	return domain.IncomeRecord{ID: id, Amount: dec(amount), Status: domain.IncomeActive}
}

func recurringExpense(id, amount string) domain.ExpenseRecord {
	return domain.ExpenseRecord{ID: id, Amount: dec(amount), Type: domain.ExpenseRecurring, Status: domain.ExpenseActive}
}

func variableExpense(id, amount, date string) domain.ExpenseRecord {
	return domain.ExpenseRecord{ID: id, Amount: dec(amount), Type: domain.ExpenseVariable, Status: domain.ExpenseActive, SpecificDate: date}
}

func cashAsset(id, value string) domain.LiquidAsset {
	return domain.LiquidAsset{ID: id, Value: dec(value), IsActive: true}
}

func yieldAsset(id, value, percent string) domain.LiquidAsset {
	return domain.LiquidAsset{
		ID:       id,
		Value:    dec(value),
		IsActive: true,
		Yield:    &domain.YieldConfig{MonthlyYieldPercent: dec(percent), AutoCompound: true},
	}
}

// baselineSnapshot: 10,000 liquid, 500 passive income, 300 recurring expenses, 12 months
func baselineSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Name:                 "baseline",
		LiquidAssets:         []domain.LiquidAsset{cashAsset("checking", "4000"), cashAsset("savings", "6000")},
		PassiveIncomeRecords: []domain.IncomeRecord{activeIncome("rent", "500")},
		ExpenseRecords:       []domain.ExpenseRecord{recurringExpense("utilities", "300")},
		ProjectionMonths:     12,
	}
}

// recordingLogger keeps warnings for assertions
type recordingLogger struct {
	NopLogger
	warnings []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, format)
}
