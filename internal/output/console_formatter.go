package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the full report: assumptions, summary metrics and
// the month-by-month table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	sym := report.Currency
	s := &report.Result.Summary

	title := "CASH FLOW PROJECTION"
	if report.Name != "" {
		title = fmt.Sprintf("CASH FLOW PROJECTION: %s", report.Name)
	}
	fmt.Fprintln(&buf, renderTitle(title))
	fmt.Fprintf(&buf, "  %s\n\n", mutedStyle.Render(fmt.Sprintf("Starting %s, %d months", report.AsOf.Format("January 2006"), report.Result.Months())))

	if len(report.Assumptions) > 0 {
		fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Assumptions"))
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  • %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Summary"))
	fmt.Fprint(&buf, renderField("Starting balance", FormatCurrency(s.InitialBalance, sym)))
	fmt.Fprint(&buf, renderField("Final balance", FormatCurrency(s.FinalBalance, sym)))
	fmt.Fprint(&buf, renderField("Total growth", signedStyle(s.TotalGrowth).Render(FormatCurrency(s.TotalGrowth, sym))))
	fmt.Fprint(&buf, renderField("Average monthly growth", FormatCurrency(s.MonthlyAverage, sym)))
	fmt.Fprint(&buf, renderField("Dividend income", FormatCurrency(s.TotalDividendIncome, sym)))
	fmt.Fprint(&buf, renderField("FI ratio", FormatPercentage(s.FIRatio)))
	fmt.Fprint(&buf, renderField("Months to FI", FormatMonthsToFI(s)))
	fmt.Fprint(&buf, renderField("Emergency fund", s.EmergencyFundMonths.StringFixed(1)+" months"))
	fmt.Fprint(&buf, renderField("Trend", string(s.Trend)))
	fmt.Fprint(&buf, renderField("Risk", riskStyle(s.RiskTier).Render(string(s.RiskTier))))
	fmt.Fprintln(&buf)

	if h := AnalyzeMonths(&report.Result); len(report.Result.MonthRecords) > 1 {
		fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Highlights"))
		fmt.Fprint(&buf, renderField("Strongest month", fmt.Sprintf("%s (%s)", report.MonthDate(h.BestMonth).Format("Jan 2006"), FormatCurrency(h.BestNetChange, sym))))
		fmt.Fprint(&buf, renderField("Weakest month", fmt.Sprintf("%s (%s)", report.MonthDate(h.WorstMonth).Format("Jan 2006"), FormatCurrency(h.WorstNetChange, sym))))
		fmt.Fprintln(&buf)
	}

	rows := make([][]string, 0, len(report.Result.MonthRecords))
	for _, m := range report.Result.MonthRecords {
		rows = append(rows, []string{
			report.MonthDate(m.Month).Format("Jan 2006"),
			FormatWholeCurrency(m.MonthlyIncome, sym),
			FormatWholeCurrency(m.RecurringExpenses, sym),
			FormatWholeCurrency(m.VariableExpenses, sym),
			FormatWholeCurrency(m.NetChange, sym),
			FormatWholeCurrency(m.Balance, sym),
		})
	}
	fmt.Fprint(&buf, renderTable(table{
		Title:   "Monthly Projection",
		Headers: []string{"Month", "Income", "Recurring", "Variable", "Net", "Balance"},
		Rows:    rows,
	}))

	return buf.Bytes(), nil
}

func signedStyle(v decimal.Decimal) lipgloss.Style {
	switch {
	case v.IsPositive():
		return goodStyle
	case v.IsNegative():
		return badStyle
	default:
		return mutedStyle
	}
}

func riskStyle(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.RiskHigh:
		return badStyle
	case domain.RiskModerate:
		return warnStyle
	default:
		return goodStyle
	}
}
