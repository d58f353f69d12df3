package output

import (
	"bytes"
	"fmt"

	"github.com/finboard/forecast/internal/domain"
)

// SummaryFormatter provides a concise plain-text summary without the month table.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string      { return "summary" }
func (s SummaryFormatter) Extension() string { return "txt" }

func (s SummaryFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	sym := report.Currency
	sum := &report.Result.Summary

	name := report.Name
	if name == "" {
		name = "Projection"
	}
	fmt.Fprintf(&buf, "%s (%s, %d months)\n", name, report.AsOf.Format("2006-01"), report.Result.Months())
	fmt.Fprintf(&buf, "Balance: %s -> %s (%s)\n", FormatCurrency(sum.InitialBalance, sym), FormatCurrency(sum.FinalBalance, sym), FormatCurrency(sum.TotalGrowth, sym))
	fmt.Fprintf(&buf, "Monthly average: %s\n", FormatCurrency(sum.MonthlyAverage, sym))
	fmt.Fprintf(&buf, "FI ratio: %s  Months to FI: %s\n", FormatPercentage(sum.FIRatio), FormatMonthsToFI(sum))
	fmt.Fprintf(&buf, "Trend: %s  Risk: %s  Positive: %s\n", sum.Trend, sum.RiskTier, boolToString(sum.IsPositiveProjection))
	return buf.Bytes(), nil
}
