package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthRecord represents the complete cash flow for a single projected month
type MonthRecord struct {
	Month   int             `json:"month"`
	Balance decimal.Decimal `json:"balance"`

	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	NetChange       decimal.Decimal `json:"net_change"`

	// Breakdown
	PassiveIncome     decimal.Decimal `json:"passive_income"`
	ActiveIncome      decimal.Decimal `json:"active_income"`
	RecurringExpenses decimal.Decimal `json:"recurring_expenses"`
	VariableExpenses  decimal.Decimal `json:"variable_expenses"`
	DividendIncome    decimal.Decimal `json:"dividend_income"`

	// CumulativeGrowth is the balance minus the month 0 balance
	CumulativeGrowth decimal.Decimal `json:"cumulative_growth"`
	// BalanceChange is CumulativeGrowth as a percentage of the month 0 balance (0 when that balance is 0)
	BalanceChange decimal.Decimal `json:"balance_change"`
}

// Trend is a qualitative label for the direction of a projection
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendFlat      Trend = "flat"
	TrendDeclining Trend = "declining"
)

// RiskTier is a qualitative label for how exposed the projection is to a cash shortfall
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// ProjectionSummary provides a summary of key metrics derived from a month sequence
type ProjectionSummary struct {
	InitialBalance       decimal.Decimal `json:"initial_balance"`
	FinalBalance         decimal.Decimal `json:"final_balance"`
	TotalGrowth          decimal.Decimal `json:"total_growth"`
	MonthlyAverage       decimal.Decimal `json:"monthly_average"`
	FIRatio              decimal.Decimal `json:"fi_ratio"`
	MonthsToFI           *int            `json:"months_to_fi"` // nil when not applicable
	IsPositiveProjection bool            `json:"is_positive_projection"`

	EmergencyFundMonths decimal.Decimal `json:"emergency_fund_months"`
	TotalDividendIncome decimal.Decimal `json:"total_dividend_income"`
	Trend               Trend           `json:"trend"`
	RiskTier            RiskTier        `json:"risk_tier"`
}

// HasMonthsToFI reports whether a months-to-FI estimate applies
func (ps *ProjectionSummary) HasMonthsToFI() bool {
	return ps.MonthsToFI != nil
}

// ProjectionResult is the engine output: the month trace and its summary
type ProjectionResult struct {
	MonthRecords []MonthRecord     `json:"month_records"`
	Summary      ProjectionSummary `json:"summary"`
}

// Months returns the projection horizon covered by the result
func (pr *ProjectionResult) Months() int {
	if len(pr.MonthRecords) == 0 {
		return 0
	}
	return len(pr.MonthRecords) - 1
}

// FinalRecord returns the last month of the projection
func (pr *ProjectionResult) FinalRecord() MonthRecord {
	if len(pr.MonthRecords) == 0 {
		return MonthRecord{}
	}
	return pr.MonthRecords[len(pr.MonthRecords)-1]
}

// ProjectionReport wraps a result with the context presentation layers need
type ProjectionReport struct {
	Name        string           `json:"name"`
	AsOf        time.Time        `json:"as_of"`
	Result      ProjectionResult `json:"result"`
	Assumptions []string         `json:"assumptions"`

	// Currency is the display symbol; the engine itself never formats amounts
	Currency string `json:"currency,omitempty"`
}

// MonthDate returns the first day of the calendar month a record represents
func (r *ProjectionReport) MonthDate(month int) time.Time {
	start := time.Date(r.AsOf.Year(), r.AsOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, month, 0)
}
