package output

import (
	"encoding/json"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Decimal values are encoded as strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
