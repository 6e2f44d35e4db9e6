package output

import (
	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// resultAssumptions returns the assumptions carried by results, or the engine's
// model assumptions when there are none.
func resultAssumptions(results *domain.ScenarioComparison) []string {
	if results != nil && len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return calculation.ModelAssumptions()
}
