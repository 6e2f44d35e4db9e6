package calculation

import (
	"math"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var decimalMinusOne = decimal.NewFromInt(-1)

// MonthlyGrowthFactor converts an effective annual rate into the monthly factor
// (1+rate)^(1/12). The rate must be greater than -1.
func MonthlyGrowthFactor(annualRate decimal.Decimal) (decimal.Decimal, error) {
	if annualRate.LessThanOrEqual(decimalMinusOne) {
		return decimal.Zero, &domain.ParameterError{Name: "annual_return", Value: annualRate.String(), Reason: "must be greater than -1"}
	}
	g := math.Pow(1+annualRate.InexactFloat64(), 1.0/domain.MonthsPerYear)
	return decimal.NewFromFloat(g), nil
}

// InvestmentSchedule compounds an account monthly:
//
//	balance_i       = balance_{i-1} * g + monthlyFlow
//	contributions_i = contributions_{i-1} + monthlyFlow
//
// starting from initialValue for both. Balance and contributions are rounded to
// whole units and interest is their difference, so the three columns always agree.
func InvestmentSchedule(initialValue, monthlyFlow, annualReturn decimal.Decimal, termYears int) ([]domain.InvestmentRow, error) {
	if err := domain.InvestmentTermBound.Check("term_years", termYears); err != nil {
		return nil, err
	}
	g, err := MonthlyGrowthFactor(annualReturn)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.InvestmentRow, dateutil.MonthsInYears(termYears))
	balance := initialValue
	contributions := initialValue
	for i := range rows {
		month := i + 1
		balance = balance.Mul(g).Round(internalPrecision).Add(monthlyFlow)
		contributions = contributions.Add(monthlyFlow)

		row := domain.InvestmentRow{
			Month:         month,
			Year:          dateutil.YearOfMonth(month),
			Contributions: roundWhole(contributions),
			Balance:       roundWhole(balance),
		}
		row.Interest = row.Balance.Sub(row.Contributions)
		rows[i] = row
	}
	return rows, nil
}

// Schedule is InvestmentSchedule for an InvestmentTerms value.
func Schedule(terms domain.InvestmentTerms) ([]domain.InvestmentRow, error) {
	return InvestmentSchedule(terms.InitialBalance, terms.MonthlyFlow, terms.AnnualReturn, terms.TermYears)
}
