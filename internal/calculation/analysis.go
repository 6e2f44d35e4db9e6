package calculation

import (
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// generateAnalysis ranks scenarios by post-tax margin (own minus rent).
func (ce *CalculationEngine) generateAnalysis(scenarios []domain.ScenarioResult) domain.ComparisonAnalysis {
	var a domain.ComparisonAnalysis
	for i, s := range scenarios {
		margin := s.Summary.Margin
		if i == 0 || margin.GreaterThan(a.BestMargin) {
			a.BestScenario, a.BestMargin = s.Name, margin
		}
		if i == 0 || margin.LessThan(a.WorstMargin) {
			a.WorstScenario, a.WorstMargin = s.Name, margin
		}
		if s.Summary.OwnWins {
			a.OwnWinsCount++
		} else {
			a.RentWinsCount++
		}
	}

	a.KeyConsiderations = []string{
		"The invested cash-flow difference is fixed at the first month's principal and interest split",
		"Apartment and investment gains are taxed once, at the end of the horizon",
	}
	if a.OwnWinsCount > 0 && a.RentWinsCount > 0 {
		a.KeyConsiderations = append(a.KeyConsiderations, "The winner depends on the scenario; compare the margins rather than the labels")
	}
	return a
}

// ModelAssumptions lists the simplifications shared by every scenario.
func ModelAssumptions() []string {
	return []string{
		"Mortgage: fixed-rate annuity loan, payment computed once and paid monthly",
		"Monthly rates: loan uses annual/12, investments and apartment compound at (1+annual)^(1/12)",
		"Renter invests the down payment and the month-1 difference between owning and renting costs",
		"Owner invests the former mortgage payment after payoff; the condo fee continues",
		"Tables are rounded to whole currency units; small residual balances are rounding drift",
		"Terminal rows liquidate everything and apply apartment gain and capital gains taxes once",
	}
}
