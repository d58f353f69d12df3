package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finboard/forecast/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per projection).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Projection", "AsOf", "Months", "InitialBalance", "FinalBalance", "TotalGrowth", "MonthlyAverage", "FIRatio", "MonthsToFI", "IsPositive", "EmergencyFundMonths", "TotalDividendIncome", "Trend", "RiskTier"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	s := report.Result.Summary
	row := []string{
		report.Name,
		report.AsOf.Format("2006-01"),
		intToString(report.Result.Months()),
		s.InitialBalance.StringFixed(2),
		s.FinalBalance.StringFixed(2),
		s.TotalGrowth.StringFixed(2),
		s.MonthlyAverage.StringFixed(2),
		s.FIRatio.StringFixed(2),
		FormatMonthsToFI(&s),
		boolToString(s.IsPositiveProjection),
		s.EmergencyFundMonths.StringFixed(2),
		s.TotalDividendIncome.StringFixed(2),
		string(s.Trend),
		string(s.RiskTier),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
