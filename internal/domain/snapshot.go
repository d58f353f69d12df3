package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// IncomeStatus is the lifecycle state of an income record
type IncomeStatus string

const (
	IncomeActive   IncomeStatus = "active"
	IncomeInactive IncomeStatus = "inactive"
	IncomePending  IncomeStatus = "pending"
)

// ExpenseType distinguishes monthly obligations from one-off or scheduled costs
type ExpenseType string

const (
	ExpenseRecurring ExpenseType = "recurring"
	ExpenseVariable  ExpenseType = "variable"
)

// ExpenseStatus is the lifecycle state of an expense record
type ExpenseStatus string

const (
	ExpenseActive   ExpenseStatus = "active"
	ExpenseInactive ExpenseStatus = "inactive"
)

// YieldConfig describes monthly income generated by an asset and reinvested into it
type YieldConfig struct {
	MonthlyYieldPercent decimal.Decimal `yaml:"monthly_yield_percent" json:"monthly_yield_percent"`
	AutoCompound        bool            `yaml:"auto_compound" json:"auto_compound"`
}

// LiquidAsset represents a cash-equivalent or yield-bearing holding at projection time
type LiquidAsset struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name,omitempty" json:"name,omitempty"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
	IsActive bool            `yaml:"is_active" json:"is_active"`
	Yield    *YieldConfig    `yaml:"yield,omitempty" json:"yield,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for LiquidAsset.
// Assets are active unless the document says otherwise.
func (la *LiquidAsset) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		ID       string       `yaml:"id"`
		Name     string       `yaml:"name,omitempty"`
		Value    *string      `yaml:"value"`
		IsActive *bool        `yaml:"is_active,omitempty"`
		Yield    *YieldConfig `yaml:"yield,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	la.ID = aux.ID
	la.Name = aux.Name
	la.Yield = aux.Yield
	la.IsActive = true
	if aux.IsActive != nil {
		la.IsActive = *aux.IsActive
	}

	la.Value = decimal.Zero
	if aux.Value != nil {
		val, err := decimal.NewFromString(*aux.Value)
		if err != nil {
			return err
		}
		la.Value = val
	}

	return nil
}

// IsYieldEligible reports whether the asset compounds a positive yield on a positive value
func (la *LiquidAsset) IsYieldEligible() bool {
	if !la.IsActive || la.Yield == nil || !la.Yield.AutoCompound {
		return false
	}
	return la.Yield.MonthlyYieldPercent.IsPositive() && la.Value.IsPositive()
}

// IncomeRecord is a single monthly income stream
type IncomeRecord struct {
	ID     string          `yaml:"id" json:"id"`
	Name   string          `yaml:"name,omitempty" json:"name,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Status IncomeStatus    `yaml:"status" json:"status"`
}

// IsActive reports whether the record contributes to a projection
func (ir *IncomeRecord) IsActive() bool {
	return ir.Status == IncomeActive
}

// ExpenseRecord is a single monthly or scheduled cost
type ExpenseRecord struct {
	ID     string          `yaml:"id" json:"id"`
	Name   string          `yaml:"name,omitempty" json:"name,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Type   ExpenseType     `yaml:"type" json:"type"`
	Status ExpenseStatus   `yaml:"status" json:"status"`
	// SpecificDate is an ISO date (2006-01-02); only the year and month are used
	SpecificDate string `yaml:"specific_date,omitempty" json:"specific_date,omitempty"`
}

// IsActive reports whether the record contributes to a projection
func (er *ExpenseRecord) IsActive() bool {
	return er.Status == ExpenseActive
}

// IsRecurring reports whether the expense applies every month. Records with no type are recurring.
func (er *ExpenseRecord) IsRecurring() bool {
	return er.Type == ExpenseRecurring || er.Type == ""
}

// Snapshot is the subset of a user's financial-data document relevant to projection
type Snapshot struct {
	Name                 string          `yaml:"name,omitempty" json:"name,omitempty"`
	LiquidAssets         []LiquidAsset   `yaml:"liquid_assets" json:"liquid_assets"`
	PassiveIncomeRecords []IncomeRecord  `yaml:"passive_income" json:"passive_income"`
	ActiveIncomeRecords  []IncomeRecord  `yaml:"active_income" json:"active_income"`
	ExpenseRecords       []ExpenseRecord `yaml:"expenses" json:"expenses"`
	ProjectionMonths     int             `yaml:"projection_months" json:"projection_months"`

	// RecurringVariable applies undated variable expenses every month instead of only in month 1
	RecurringVariable bool `yaml:"recurring_variable,omitempty" json:"recurring_variable,omitempty"`
}

// TotalLiquid returns the sum of active asset values
func (s *Snapshot) TotalLiquid() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.LiquidAssets {
		if a.IsActive {
			total = total.Add(a.Value)
		}
	}
	return total
}
