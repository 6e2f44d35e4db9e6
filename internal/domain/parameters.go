package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of compounding periods in a year.
const MonthsPerYear = 12

// LoanTerms describes an amortized loan with a fixed monthly payment.
type LoanTerms struct {
	Principal  decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // nominal, e.g. 0.045
	TermYears  int             `yaml:"term_years" json:"term_years"`
}

// Months returns the number of monthly payments.
func (lt LoanTerms) Months() int { return lt.TermYears * MonthsPerYear }

// MonthlyRate returns the nominal annual rate divided by twelve.
func (lt LoanTerms) MonthlyRate() decimal.Decimal {
	return lt.AnnualRate.Div(decimal.NewFromInt(MonthsPerYear))
}

// InvestmentTerms describes an account receiving a constant monthly flow.
// MonthlyFlow may be negative to model a net cash drain.
type InvestmentTerms struct {
	InitialBalance decimal.Decimal `yaml:"initial_balance" json:"initial_balance"`
	MonthlyFlow    decimal.Decimal `yaml:"monthly_flow" json:"monthly_flow"`
	AnnualReturn   decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	TermYears      int             `yaml:"term_years" json:"term_years"`
}

// Months returns the length of the schedule in months.
func (it InvestmentTerms) Months() int { return it.TermYears * MonthsPerYear }

// ScenarioParameters holds every input of a single rent-versus-own comparison.
// Rates are fractions (0.045 means 4.5%).
type ScenarioParameters struct {
	PurchasePrice        decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPayment          decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	MortgageTermYears    int             `yaml:"mortgage_term_years" json:"mortgage_term_years"`
	InterestRate         decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	CondoFee             decimal.Decimal `yaml:"condo_fee" json:"condo_fee"`
	ApartmentReturn      decimal.Decimal `yaml:"apartment_return" json:"apartment_return"`
	ApartmentGainTaxRate decimal.Decimal `yaml:"apartment_gain_tax_rate" json:"apartment_gain_tax_rate"`
	MonthlyRent          decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	ExtraHorizonYears    int             `yaml:"extra_horizon_years" json:"extra_horizon_years"`
	InvestmentReturn     decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	CapitalGainsTaxRate  decimal.Decimal `yaml:"capital_gains_tax_rate" json:"capital_gains_tax_rate"`
}

// LoanAmount is the purchase price minus the down payment.
func (p ScenarioParameters) LoanAmount() decimal.Decimal {
	return p.PurchasePrice.Sub(p.DownPayment)
}

// Loan returns the mortgage implied by the scenario.
func (p ScenarioParameters) Loan() LoanTerms {
	return LoanTerms{
		Principal:  p.LoanAmount(),
		AnnualRate: p.InterestRate,
		TermYears:  p.MortgageTermYears,
	}
}

// TotalYears is the mortgage term plus the extra horizon.
func (p ScenarioParameters) TotalYears() int {
	return p.MortgageTermYears + p.ExtraHorizonYears
}

// GenerateAssumptions lists the modeling assumptions behind a scenario using its actual values.
func (p ScenarioParameters) GenerateAssumptions() []string {
	pct := func(d decimal.Decimal) string { return d.Mul(decimalHundred).StringFixed(2) + "%" }
	return []string{
		fmt.Sprintf("Mortgage: %d years at %s nominal, compounded monthly", p.MortgageTermYears, pct(p.InterestRate)),
		fmt.Sprintf("Apartment appreciation: %s annually, compounded monthly from month 0", pct(p.ApartmentReturn)),
		fmt.Sprintf("Investment return: %s annually, compounded monthly", pct(p.InvestmentReturn)),
		"Rent and condominium fee held constant (no inflation)",
		"Rent-vs-own cash flow differential frozen at the month-1 principal/interest mix",
		fmt.Sprintf("All assets sold after %d years; gains taxed at %s (apartment) and %s (capital)", p.TotalYears(), pct(p.ApartmentGainTaxRate), pct(p.CapitalGainsTaxRate)),
	}
}

var decimalHundred = decimal.NewFromInt(100)

// Scenario is a named parameter set as it appears in a configuration file.
type Scenario struct {
	Name       string             `yaml:"name" json:"name"`
	Parameters ScenarioParameters `yaml:",inline" json:"parameters"`
}

// Configuration is the top-level input file: one or more scenarios and an optional
// calendar anchor used only to label months in tabular reports.
type Configuration struct {
	StartDate time.Time  `yaml:"start_date,omitempty" json:"start_date,omitzero"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// DefaultParameters returns the reference scenario: a 175,000 apartment bought with
// 10% down on a 25 year mortgage, compared with renting for 850 a month.
func DefaultParameters() ScenarioParameters {
	return ScenarioParameters{
		PurchasePrice:        decimal.NewFromInt(175000),
		DownPayment:          decimal.NewFromInt(17500),
		MortgageTermYears:    25,
		InterestRate:         decimal.NewFromFloat(0.045),
		CondoFee:             decimal.NewFromInt(220),
		ApartmentReturn:      decimal.NewFromFloat(0.005),
		ApartmentGainTaxRate: decimal.Zero,
		MonthlyRent:          decimal.NewFromInt(850),
		ExtraHorizonYears:    5,
		InvestmentReturn:     decimal.NewFromFloat(0.07),
		CapitalGainsTaxRate:  decimal.NewFromFloat(0.30),
	}
}
