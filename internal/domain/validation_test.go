package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParametersAreValid(t *testing.T) {
	p := DefaultParameters()
	require.NoError(t, p.Validate())
	assert.True(t, p.LoanAmount().Equal(decimal.NewFromInt(157500)))
	assert.Equal(t, 30, p.TotalYears())
	assert.Equal(t, 300, p.Loan().Months())
}

func TestValidate_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ScenarioParameters)
		param  string
	}{
		{"price too low", func(p *ScenarioParameters) { p.PurchasePrice = decimal.NewFromInt(999) }, "purchase_price"},
		{"price too high", func(p *ScenarioParameters) { p.PurchasePrice = decimal.NewFromInt(10_000_001) }, "purchase_price"},
		{"down payment too low", func(p *ScenarioParameters) { p.DownPayment = decimal.NewFromInt(500) }, "down_payment"},
		{"term zero", func(p *ScenarioParameters) { p.MortgageTermYears = 0 }, "mortgage_term_years"},
		{"term too long", func(p *ScenarioParameters) { p.MortgageTermYears = 51 }, "mortgage_term_years"},
		{"interest rate zero", func(p *ScenarioParameters) { p.InterestRate = decimal.Zero }, "interest_rate"},
		{"interest rate too high", func(p *ScenarioParameters) { p.InterestRate = decimal.NewFromFloat(0.51) }, "interest_rate"},
		{"negative condo fee", func(p *ScenarioParameters) { p.CondoFee = decimal.NewFromInt(-1) }, "condo_fee"},
		{"apartment crash", func(p *ScenarioParameters) { p.ApartmentReturn = decimal.NewFromFloat(-0.6) }, "apartment_return"},
		{"apartment tax above 100%", func(p *ScenarioParameters) { p.ApartmentGainTaxRate = decimal.NewFromFloat(1.01) }, "apartment_gain_tax_rate"},
		{"rent too low", func(p *ScenarioParameters) { p.MonthlyRent = decimal.NewFromInt(99) }, "monthly_rent"},
		{"horizon zero", func(p *ScenarioParameters) { p.ExtraHorizonYears = 0 }, "extra_horizon_years"},
		{"horizon too long", func(p *ScenarioParameters) { p.ExtraHorizonYears = 101 }, "extra_horizon_years"},
		{"investment return zero", func(p *ScenarioParameters) { p.InvestmentReturn = decimal.Zero }, "investment_return"},
		{"negative capital tax", func(p *ScenarioParameters) { p.CapitalGainsTaxRate = decimal.NewFromFloat(-0.1) }, "capital_gains_tax_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var pe *ParameterError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.param, pe.Name)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestValidate_BoundsAreInclusive(t *testing.T) {
	p := DefaultParameters()
	p.PurchasePrice = decimal.NewFromInt(10_000_000)
	p.DownPayment = decimal.NewFromInt(1000)
	p.MortgageTermYears = 50
	p.InterestRate = decimal.RequireFromString("0.0001")
	p.CondoFee = decimal.Zero
	p.ApartmentReturn = decimal.RequireFromString("-0.50")
	p.ApartmentGainTaxRate = decimal.NewFromInt(1)
	p.MonthlyRent = decimal.NewFromInt(10_000)
	p.ExtraHorizonYears = 100
	p.InvestmentReturn = decimal.RequireFromString("0.50")
	p.CapitalGainsTaxRate = decimal.Zero
	assert.NoError(t, p.Validate())
}

func TestValidate_DownPaymentMustLeaveALoan(t *testing.T) {
	for _, down := range []int64{175000, 200000} {
		p := DefaultParameters()
		p.DownPayment = decimal.NewFromInt(down)
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Contains(t, err.Error(), "down_payment")
		assert.Contains(t, err.Error(), "loan amount is positive")
	}
}

func TestParameterErrorMessage(t *testing.T) {
	err := InterestRateBound.Check("interest_rate", decimal.NewFromFloat(0.9))
	require.Error(t, err)
	assert.Equal(t, "invalid parameter interest_rate=0.9: must be within [0.0001, 0.5]", err.Error())

	err = MortgageTermBound.Check("mortgage_term_years", 0)
	assert.Equal(t, "invalid parameter mortgage_term_years=0: must be within [1, 50]", err.Error())
}

func TestGenerateAssumptionsUsesValues(t *testing.T) {
	lines := DefaultParameters().GenerateAssumptions()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "25 years at 4.50%")
	assert.Contains(t, lines[len(lines)-1], "30.00% (capital)")
}
