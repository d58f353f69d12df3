package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finboard/forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testSnapshot := "name: \"Test household\"\n" +
		"projection_months: 12\n" +
		"liquid_assets:\n" +
		"  - id: checking\n" +
		"    value: 4000\n" +
		"  - id: savings\n" +
		"    value: \"6000.50\"\n" +
		"  - id: old-brokerage\n" +
		"    value: 900\n" +
		"    is_active: false\n" +
		"  - id: fund\n" +
		"    value: 1000\n" +
		"    yield:\n" +
		"      monthly_yield_percent: 0.9\n" +
		"      auto_compound: true\n" +
		"passive_income:\n" +
		"  - id: rent\n" +
		"    amount: 500\n" +
		"active_income:\n" +
		"  - id: salary\n" +
		"    amount: 3000\n" +
		"    status: pending\n" +
		"expenses:\n" +
		"  - id: utilities\n" +
		"    amount: 300\n" +
		"  - id: trip\n" +
		"    amount: 1200\n" +
		"    type: variable\n" +
		"    specific_date: \"2027-02-14\"\n"

	parser := NewInputParser()
	snapshot, err := parser.LoadFromFile(writeTemp(t, "snapshot.yaml", testSnapshot))

	require.NoError(t, err)
	assert.Equal(t, "Test household", snapshot.Name)
	assert.Equal(t, 12, snapshot.ProjectionMonths)
	require.Len(t, snapshot.LiquidAssets, 4)
	assert.True(t, snapshot.LiquidAssets[0].IsActive, "assets default to active")
	assert.False(t, snapshot.LiquidAssets[2].IsActive)
	assert.True(t, snapshot.LiquidAssets[1].Value.Equal(decimal.RequireFromString("6000.50")))
	require.NotNil(t, snapshot.LiquidAssets[3].Yield)
	assert.True(t, snapshot.LiquidAssets[3].Yield.AutoCompound)
	assert.True(t, snapshot.TotalLiquid().Equal(decimal.RequireFromString("11000.50")))

	assert.Equal(t, domain.IncomeActive, snapshot.PassiveIncomeRecords[0].Status)
	assert.Equal(t, domain.IncomePending, snapshot.ActiveIncomeRecords[0].Status)
	assert.Equal(t, domain.ExpenseRecurring, snapshot.ExpenseRecords[0].Type)
	assert.Equal(t, domain.ExpenseActive, snapshot.ExpenseRecords[0].Status)
	assert.Equal(t, "2027-02-14", snapshot.ExpenseRecords[1].SpecificDate)
}

func TestLoadFromFile_JSON(t *testing.T) {
	testSnapshot := `{
  "projection_months": 6,
  "liquid_assets": [{"id": "cash", "value": 2500}],
  "passive_income": [],
  "active_income": [{"id": "salary", "amount": 1800, "status": "active"}],
  "expenses": [{"id": "rent", "amount": 900, "type": "recurring", "status": "active"}]
}`

	snapshot, err := NewInputParser().LoadFromFile(writeTemp(t, "snapshot.json", testSnapshot))

	require.NoError(t, err)
	assert.Equal(t, 6, snapshot.ProjectionMonths)
	assert.True(t, snapshot.TotalLiquid().Equal(decimal.NewFromInt(2500)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	snapshot, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testSnapshot := `
liquid_assets:
	- id: cash
		value: "not-a-number"
`

	parser := NewInputParser()
	snapshot, err := parser.LoadFromFile(writeTemp(t, "bad.yaml", testSnapshot))

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidAmount(t *testing.T) {
	testSnapshot := "liquid_assets:\n  - id: cash\n    value: lots\n"

	_, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testSnapshot))

	assert.Error(t, err)
}

func TestApplyDefaults_AssignsIDs(t *testing.T) {
	snapshot := &domain.Snapshot{
		LiquidAssets:         []domain.LiquidAsset{{Value: decimal.NewFromInt(1)}},
		PassiveIncomeRecords: []domain.IncomeRecord{{Amount: decimal.NewFromInt(1)}},
		ExpenseRecords:       []domain.ExpenseRecord{{Amount: decimal.NewFromInt(1)}, {Amount: decimal.NewFromInt(2)}},
	}

	NewInputParser().ApplyDefaults(snapshot)

	assert.NotEmpty(t, snapshot.LiquidAssets[0].ID)
	assert.NotEmpty(t, snapshot.PassiveIncomeRecords[0].ID)
	assert.Equal(t, domain.IncomeActive, snapshot.PassiveIncomeRecords[0].Status)
	assert.NotEqual(t, snapshot.ExpenseRecords[0].ID, snapshot.ExpenseRecords[1].ID)
}

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.Snapshot)
		wantErr string
	}{
		{"Valid example", func(s *domain.Snapshot) {}, ""},
		{"Zero horizon", func(s *domain.Snapshot) { s.ProjectionMonths = 0 }, ""},
		{"Negative horizon", func(s *domain.Snapshot) { s.ProjectionMonths = -1 }, "projection months cannot be negative"},
		{"Horizon too long", func(s *domain.Snapshot) { s.ProjectionMonths = 361 }, "projection months must be at most 360"},
		{"Negative asset", func(s *domain.Snapshot) { s.LiquidAssets[0].Value = decimal.NewFromInt(-5) }, "value cannot be negative"},
		{"Duplicate asset", func(s *domain.Snapshot) { s.LiquidAssets[1].ID = s.LiquidAssets[0].ID }, "duplicate asset id"},
		{"Negative yield is tolerated", func(s *domain.Snapshot) {
			s.LiquidAssets[2].Yield.MonthlyYieldPercent = decimal.NewFromInt(-1)
		}, ""},
		{"Bad income status", func(s *domain.Snapshot) { s.ActiveIncomeRecords[0].Status = "paused" }, "status must be 'active', 'inactive', or 'pending'"},
		{"Negative income", func(s *domain.Snapshot) { s.PassiveIncomeRecords[0].Amount = decimal.NewFromInt(-1) }, "amount cannot be negative"},
		{"Bad expense type", func(s *domain.Snapshot) { s.ExpenseRecords[0].Type = "annual" }, "type must be 'recurring' or 'variable'"},
		{"Bad expense status", func(s *domain.Snapshot) { s.ExpenseRecords[0].Status = "pending" }, "status must be 'active' or 'inactive'"},
		{"Dated recurring expense", func(s *domain.Snapshot) { s.ExpenseRecords[0].SpecificDate = "2027-01-01" }, "only allowed on variable expenses"},
		{"Bad date", func(s *domain.Snapshot) { s.ExpenseRecords[4].SpecificDate = "03/01/2027" }, "invalid ISO date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			snapshot := parser.CreateExampleSnapshot()
			tt.mutate(snapshot)

			err := parser.ValidateSnapshot(snapshot)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleSnapshot_RoundTripsThroughYAML(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleSnapshot()

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	loaded, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, example.Name, loaded.Name)
	assert.Len(t, loaded.ExpenseRecords, len(example.ExpenseRecords))
	assert.True(t, loaded.TotalLiquid().Equal(example.TotalLiquid()))
	assert.True(t, loaded.LiquidAssets[2].IsYieldEligible())
}
