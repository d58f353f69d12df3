package config

import (
	"fmt"
	"os"

	"github.com/finboard/forecast/internal/calculation"
	"github.com/finboard/forecast/internal/domain"
	"github.com/finboard/forecast/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of snapshot documents
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a snapshot document. JSON is accepted as a subset of YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&snapshot)

	if err := ip.ValidateSnapshot(&snapshot); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}

	return &snapshot, nil
}

// ApplyDefaults fills fields a hand-written document commonly omits: record
// IDs, and statuses, which default to active.
func (ip *InputParser) ApplyDefaults(snapshot *domain.Snapshot) {
	for i := range snapshot.LiquidAssets {
		if snapshot.LiquidAssets[i].ID == "" {
			snapshot.LiquidAssets[i].ID = uuid.New().String()
		}
	}
	for _, records := range [][]domain.IncomeRecord{snapshot.PassiveIncomeRecords, snapshot.ActiveIncomeRecords} {
		for i := range records {
			if records[i].ID == "" {
				records[i].ID = uuid.New().String()
			}
			if records[i].Status == "" {
				records[i].Status = domain.IncomeActive
			}
		}
	}
	for i := range snapshot.ExpenseRecords {
		e := &snapshot.ExpenseRecords[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Status == "" {
			e.Status = domain.ExpenseActive
		}
		if e.Type == "" {
			e.Type = domain.ExpenseRecurring
		}
	}
}

// ValidateSnapshot validates a loaded snapshot. Malformed yield settings are
// not rejected here; the engine treats them as zero yield.
func (ip *InputParser) ValidateSnapshot(snapshot *domain.Snapshot) error {
	if snapshot.ProjectionMonths < 0 {
		return fmt.Errorf("projection months cannot be negative")
	}
	if snapshot.ProjectionMonths > calculation.MaxProjectionMonths {
		return fmt.Errorf("projection months must be at most %d", calculation.MaxProjectionMonths)
	}

	seen := make(map[string]bool)
	for i := range snapshot.LiquidAssets {
		asset := &snapshot.LiquidAssets[i]
		if err := ip.validateAsset(asset); err != nil {
			return fmt.Errorf("asset %s validation failed: %w", asset.ID, err)
		}
		if seen[asset.ID] {
			return fmt.Errorf("duplicate asset id %s", asset.ID)
		}
		seen[asset.ID] = true
	}

	for i := range snapshot.PassiveIncomeRecords {
		if err := ip.validateIncome(&snapshot.PassiveIncomeRecords[i]); err != nil {
			return fmt.Errorf("passive income %s validation failed: %w", snapshot.PassiveIncomeRecords[i].ID, err)
		}
	}
	for i := range snapshot.ActiveIncomeRecords {
		if err := ip.validateIncome(&snapshot.ActiveIncomeRecords[i]); err != nil {
			return fmt.Errorf("active income %s validation failed: %w", snapshot.ActiveIncomeRecords[i].ID, err)
		}
	}

	for i := range snapshot.ExpenseRecords {
		if err := ip.validateExpense(&snapshot.ExpenseRecords[i]); err != nil {
			return fmt.Errorf("expense %s validation failed: %w", snapshot.ExpenseRecords[i].ID, err)
		}
	}

	return nil
}

// validateAsset validates a single liquid asset
func (ip *InputParser) validateAsset(asset *domain.LiquidAsset) error {
	if asset.Value.LessThan(decimal.Zero) {
		return fmt.Errorf("value cannot be negative")
	}
	return nil
}

// validateIncome validates a single income record
func (ip *InputParser) validateIncome(record *domain.IncomeRecord) error {
	if record.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	switch record.Status {
	case domain.IncomeActive, domain.IncomeInactive, domain.IncomePending:
	default:
		return fmt.Errorf("status must be 'active', 'inactive', or 'pending'")
	}
	return nil
}

// validateExpense validates a single expense record
func (ip *InputParser) validateExpense(record *domain.ExpenseRecord) error {
	if record.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	if record.Type != domain.ExpenseRecurring && record.Type != domain.ExpenseVariable {
		return fmt.Errorf("type must be 'recurring' or 'variable'")
	}
	if record.Status != domain.ExpenseActive && record.Status != domain.ExpenseInactive {
		return fmt.Errorf("status must be 'active' or 'inactive'")
	}
	if record.SpecificDate != "" {
		if record.Type != domain.ExpenseVariable {
			return fmt.Errorf("specific_date is only allowed on variable expenses")
		}
		if _, err := dateutil.ParseISODate(record.SpecificDate); err != nil {
			return err
		}
	}
	return nil
}

// CreateExampleSnapshot creates an example snapshot document
func (ip *InputParser) CreateExampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Name: "Household",
		LiquidAssets: []domain.LiquidAsset{
			{ID: "checking", Name: "Checking account", Value: decimal.NewFromInt(4500), IsActive: true},
			{ID: "emergency", Name: "Emergency fund", Value: decimal.NewFromInt(12000), IsActive: true},
			{
				ID:       "reit-fund",
				Name:     "Real estate income fund",
				Value:    decimal.NewFromInt(20000),
				IsActive: true,
				Yield: &domain.YieldConfig{
					MonthlyYieldPercent: decimal.NewFromFloat(0.85),
					AutoCompound:        true,
				},
			},
		},
		PassiveIncomeRecords: []domain.IncomeRecord{
			{ID: "rental", Name: "Rental unit", Amount: decimal.NewFromInt(950), Status: domain.IncomeActive},
		},
		ActiveIncomeRecords: []domain.IncomeRecord{
			{ID: "salary", Name: "Salary", Amount: decimal.NewFromInt(5200), Status: domain.IncomeActive},
			{ID: "freelance", Name: "Freelance", Amount: decimal.NewFromInt(800), Status: domain.IncomePending},
		},
		ExpenseRecords: []domain.ExpenseRecord{
			{ID: "rent", Name: "Rent", Amount: decimal.NewFromInt(1800), Type: domain.ExpenseRecurring, Status: domain.ExpenseActive},
			{ID: "groceries", Name: "Groceries", Amount: decimal.NewFromInt(650), Type: domain.ExpenseRecurring, Status: domain.ExpenseActive},
			{ID: "utilities", Name: "Utilities", Amount: decimal.NewFromInt(240), Type: domain.ExpenseRecurring, Status: domain.ExpenseActive},
			{ID: "laptop", Name: "New laptop", Amount: decimal.NewFromInt(1400), Type: domain.ExpenseVariable, Status: domain.ExpenseActive},
			{ID: "insurance", Name: "Car insurance", Amount: decimal.NewFromInt(960), Type: domain.ExpenseVariable, Status: domain.ExpenseActive, SpecificDate: "2027-03-01"},
		},
		ProjectionMonths: 24,
	}
}
