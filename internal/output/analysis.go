package output

import (
	"fmt"
	"sort"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation is the verdict for the scenario where owning fares best.
type Recommendation struct {
	ScenarioName string
	Winner       string
	OwnPostTax   decimal.Decimal
	RentPostTax  decimal.Decimal
	Margin       decimal.Decimal
}

// Verdict phrases the recommendation as one sentence.
func (r Recommendation) Verdict() string {
	if r.ScenarioName == "" {
		return ""
	}
	if r.Winner == domain.WinnerOwn {
		return fmt.Sprintf("Owning the apartment would be more profitable, generating %s after taxes compared to %s by renting.",
			FormatWhole(r.OwnPostTax), FormatWhole(r.RentPostTax))
	}
	return fmt.Sprintf("Renting the apartment would be more profitable, generating %s after taxes compared to %s by owning.",
		FormatWhole(r.RentPostTax), FormatWhole(r.OwnPostTax))
}

// AnalyzeScenarios picks the scenario with the largest own-minus-rent margin.
// Ties keep the first scenario in input order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := make([]domain.ScenarioResult, len(results.Scenarios))
	copy(ranked, results.Scenarios)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Summary.Margin.GreaterThan(ranked[j].Summary.Margin)
	})
	best := ranked[0]
	return Recommendation{
		ScenarioName: best.Name,
		Winner:       best.Summary.Winner,
		OwnPostTax:   best.Summary.OwnPostTax,
		RentPostTax:  best.Summary.RentPostTax,
		Margin:       best.Summary.Margin,
	}
}

// VerdictFor phrases the outcome of a single scenario.
func VerdictFor(sc domain.ScenarioResult) string {
	return Recommendation{
		ScenarioName: sc.Name,
		Winner:       sc.Summary.Winner,
		OwnPostTax:   sc.Summary.OwnPostTax,
		RentPostTax:  sc.Summary.RentPostTax,
		Margin:       sc.Summary.Margin,
	}.Verdict()
}
