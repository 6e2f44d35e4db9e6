package calculation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	rdecimal "github.com/rasmushaa/renting-vs-owning/pkg/decimal"
	"github.com/shopspring/decimal"
)

// internalPrecision bounds the number of decimal places carried between months so
// repeated multiplication does not grow the underlying big integers without limit.
const internalPrecision = 10

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(domain.MonthsPerYear)
)

// roundWhole rounds a monetary value to whole currency units, half to even.
func roundWhole(d decimal.Decimal) decimal.Decimal {
	return rdecimal.NewMoneyFromDecimal(d).Whole().Decimal
}

// MonthlyPayment returns the fixed payment of an amortized loan:
//
//	A = P * r * (1+r)^n / ((1+r)^n - 1),  r = annualRate/12
//
// A zero rate, or one too small to move (1+r)^n away from 1 in float64, uses the
// limit A = P/n instead of dividing by zero.
func MonthlyPayment(principal, annualRate decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, &domain.ParameterError{Name: "term_months", Value: strconv.Itoa(months), Reason: "must be positive"}
	}
	n := decimal.NewFromInt(int64(months))
	if annualRate.IsZero() {
		return principal.Div(n), nil
	}

	r := annualRate.Div(decimalTwelve)
	// (1+r)^n via float64; the remaining arithmetic stays in decimal.
	growth := math.Pow(1+r.InexactFloat64(), float64(months))
	if math.IsNaN(growth) || math.IsInf(growth, 0) {
		return decimal.Zero, fmt.Errorf("%w: (1+%s)^%d is not finite", domain.ErrNumericDegeneracy, r, months)
	}
	if growth-1 == 0 {
		return principal.Div(n), nil
	}

	factor := decimal.NewFromFloat(growth)
	return principal.Mul(r).Mul(factor).Div(factor.Sub(decimalOne)), nil
}

// AmortizationSchedule returns one row per month of an amortized loan.
//
// Running balances keep full precision; each row is rounded to whole units, so the
// final reported balance may differ from zero by a few units of accumulated drift.
func AmortizationSchedule(principal, annualRate decimal.Decimal, termYears int) ([]domain.AmortizationRow, error) {
	if err := validateLoan(principal, annualRate, termYears); err != nil {
		return nil, err
	}

	months := dateutil.MonthsInYears(termYears)
	payment, err := MonthlyPayment(principal, annualRate, months)
	if err != nil {
		return nil, err
	}

	r := annualRate.Div(decimalTwelve)
	rows := make([]domain.AmortizationRow, months)
	balance := principal
	for i := range rows {
		month := i + 1
		interest := balance.Mul(r).Round(internalPrecision)
		principalPart := payment.Sub(interest)
		balance = balance.Sub(principalPart)

		rows[i] = domain.AmortizationRow{
			Month:     month,
			Year:      dateutil.YearOfMonth(month),
			Payment:   roundWhole(payment),
			Principal: roundWhole(principalPart),
			Interest:  roundWhole(interest),
			Balance:   roundWhole(balance),
		}
	}
	return rows, nil
}

// LoanSchedule is AmortizationSchedule for a LoanTerms value.
func LoanSchedule(terms domain.LoanTerms) ([]domain.AmortizationRow, error) {
	return AmortizationSchedule(terms.Principal, terms.AnnualRate, terms.TermYears)
}

func validateLoan(principal, annualRate decimal.Decimal, termYears int) error {
	if !principal.IsPositive() {
		return &domain.ParameterError{Name: "principal", Value: principal.String(), Reason: "must be positive"}
	}
	if annualRate.IsNegative() || annualRate.GreaterThanOrEqual(decimalOne) {
		return &domain.ParameterError{Name: "annual_rate", Value: annualRate.String(), Reason: "must satisfy 0 <= rate < 1"}
	}
	return domain.MortgageTermBound.Check("term_years", termYears)
}
