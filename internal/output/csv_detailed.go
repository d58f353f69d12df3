package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finboard/forecast/internal/domain"
)

// CSVDetailedExporter provides the raw month trace, one row per projected month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "CalendarMonth", "Balance", "MonthlyIncome", "MonthlyExpenses", "NetChange", "PassiveIncome", "ActiveIncome", "DividendIncome", "RecurringExpenses", "VariableExpenses", "CumulativeGrowth", "BalanceChangePct"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range report.Result.MonthRecords {
		row := []string{
			intToString(m.Month),
			report.MonthDate(m.Month).Format("2006-01"),
			m.Balance.StringFixed(2),
			m.MonthlyIncome.StringFixed(2),
			m.MonthlyExpenses.StringFixed(2),
			m.NetChange.StringFixed(2),
			m.PassiveIncome.StringFixed(2),
			m.ActiveIncome.StringFixed(2),
			m.DividendIncome.StringFixed(2),
			m.RecurringExpenses.StringFixed(2),
			m.VariableExpenses.StringFixed(2),
			m.CumulativeGrowth.StringFixed(2),
			m.BalanceChange.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
