package calculation

import (
	"fmt"

	"github.com/finboard/forecast/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a projection of the snapshot
func GenerateAssumptions(snapshot *domain.Snapshot) []string {
	undated := "Undated variable expenses: charged once, in month 1"
	if snapshot.RecurringVariable {
		undated = "Undated variable expenses: charged every month"
	}

	yieldAssets := 0
	for i := range snapshot.LiquidAssets {
		if snapshot.LiquidAssets[i].IsYieldEligible() {
			yieldAssets++
		}
	}

	return []string{
		fmt.Sprintf("Horizon: %d months", snapshot.ProjectionMonths),
		fmt.Sprintf("Yield: monthly, reinvested into %d compounding asset(s)", yieldAssets),
		"Dated variable expenses: charged only in their calendar month",
		undated,
		"Only active income and expense records are included",
		fmt.Sprintf("FI target: %s x monthly recurring expenses", FITargetMultiple.String()),
		"No taxes, inflation or currency conversion",
	}
}
