package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Bound is the inclusive valid range of a decimal parameter.
type Bound struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// IntBound is the inclusive valid range of an integer parameter.
type IntBound struct {
	Min int
	Max int
}

// Parameter ranges accepted at the boundary of the projection engine.
var (
	PurchasePriceBound        = Bound{decimal.NewFromInt(1000), decimal.NewFromInt(10_000_000)}
	DownPaymentBound          = Bound{decimal.NewFromInt(1000), decimal.NewFromInt(10_000_000)}
	MortgageTermBound         = IntBound{1, 50}
	InterestRateBound         = Bound{decimal.RequireFromString("0.0001"), decimal.RequireFromString("0.50")}
	CondoFeeBound             = Bound{decimal.Zero, decimal.NewFromInt(10_000)}
	ApartmentReturnBound      = Bound{decimal.RequireFromString("-0.50"), decimal.RequireFromString("0.50")}
	ApartmentGainTaxRateBound = Bound{decimal.Zero, decimal.NewFromInt(1)}
	MonthlyRentBound          = Bound{decimal.NewFromInt(100), decimal.NewFromInt(10_000)}
	ExtraHorizonBound         = IntBound{1, 100}
	InvestmentTermBound       = IntBound{1, MortgageTermBound.Max + ExtraHorizonBound.Max}
	InvestmentReturnBound     = Bound{decimal.RequireFromString("0.0001"), decimal.RequireFromString("0.50")}
	CapitalGainsTaxRateBound  = Bound{decimal.Zero, decimal.NewFromInt(1)}
)

// Check returns a *ParameterError when v lies outside b.
func (b Bound) Check(name string, v decimal.Decimal) error {
	if v.LessThan(b.Min) || v.GreaterThan(b.Max) {
		return &ParameterError{Name: name, Value: v.String(), Min: b.Min.String(), Max: b.Max.String()}
	}
	return nil
}

// Check returns a *ParameterError when v lies outside b.
func (b IntBound) Check(name string, v int) error {
	if v < b.Min || v > b.Max {
		return &ParameterError{Name: name, Value: strconv.Itoa(v), Min: strconv.Itoa(b.Min), Max: strconv.Itoa(b.Max)}
	}
	return nil
}

// Validate checks every parameter against its range and that the loan amount is
// positive. The first violation is returned; nothing is clamped.
func (p ScenarioParameters) Validate() error {
	checks := []func() error{
		func() error { return PurchasePriceBound.Check("purchase_price", p.PurchasePrice) },
		func() error { return DownPaymentBound.Check("down_payment", p.DownPayment) },
		func() error { return MortgageTermBound.Check("mortgage_term_years", p.MortgageTermYears) },
		func() error { return InterestRateBound.Check("interest_rate", p.InterestRate) },
		func() error { return CondoFeeBound.Check("condo_fee", p.CondoFee) },
		func() error { return ApartmentReturnBound.Check("apartment_return", p.ApartmentReturn) },
		func() error { return ApartmentGainTaxRateBound.Check("apartment_gain_tax_rate", p.ApartmentGainTaxRate) },
		func() error { return MonthlyRentBound.Check("monthly_rent", p.MonthlyRent) },
		func() error { return ExtraHorizonBound.Check("extra_horizon_years", p.ExtraHorizonYears) },
		func() error { return InvestmentReturnBound.Check("investment_return", p.InvestmentReturn) },
		func() error { return CapitalGainsTaxRateBound.Check("capital_gains_tax_rate", p.CapitalGainsTaxRate) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	if p.DownPayment.GreaterThanOrEqual(p.PurchasePrice) {
		return &ParameterError{
			Name:   "down_payment",
			Value:  p.DownPayment.String(),
			Reason: "must be less than purchase_price " + p.PurchasePrice.String() + " so the loan amount is positive",
		}
	}
	return nil
}
