package output

import (
	"testing"

	"github.com/finboard/forecast/internal/domain"
)

func TestAnalyzeMonths(t *testing.T) {
	h := AnalyzeMonths(&buildTestReport().Result)
	if h.BestMonth != 1 {
		t.Fatalf("expected earliest of tied best months (1), got %d", h.BestMonth)
	}
	if !h.BestNetChange.Equal(d("220")) {
		t.Fatalf("best net change = %s", h.BestNetChange)
	}
	if h.WorstMonth != 2 || !h.WorstNetChange.Equal(d("-780")) {
		t.Fatalf("worst = month %d (%s), want month 2 (-780)", h.WorstMonth, h.WorstNetChange)
	}
	if len(h.VariableMonths) != 1 || h.VariableMonths[0] != 2 {
		t.Fatalf("variable months = %v, want [2]", h.VariableMonths)
	}
}

func TestAnalyzeMonths_NoProjectedMonths(t *testing.T) {
	h := AnalyzeMonths(&domain.ProjectionResult{MonthRecords: []domain.MonthRecord{month(0, "0", "0", "0", "0", "0")}})
	if h.BestMonth != 0 || h.WorstMonth != 0 || h.VariableMonths != nil {
		t.Fatalf("expected zero highlights, got %+v", h)
	}
}
