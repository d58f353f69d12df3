package output

import (
	"encoding/json"

	"github.com/finboard/forecast/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
// Amounts are emitted at full precision as decimal strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
