package output

import (
	"strconv"

	"github.com/finboard/forecast/internal/domain"
	money "github.com/finboard/forecast/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	return money.NewMoneyFromDecimal(amount).Format(symbol)
}

// FormatWholeCurrency formats a decimal as currency rounded to whole units for display.
func FormatWholeCurrency(amount decimal.Decimal, symbol string) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole(symbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonthsToFI renders the optional months-to-FI estimate.
func FormatMonthsToFI(summary *domain.ProjectionSummary) string {
	if !summary.HasMonthsToFI() {
		return "n/a"
	}
	return intToString(*summary.MonthsToFI)
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
