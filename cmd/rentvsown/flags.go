package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

type decimalFlag struct {
	name  string
	usage string
	field func(p *domain.ScenarioParameters) *decimal.Decimal
}

type intFlag struct {
	name  string
	usage string
	field func(p *domain.ScenarioParameters) *int
}

var scenarioDecimalFlags = []decimalFlag{
	{"price", "purchase price of the apartment", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.PurchasePrice }},
	{"down", "down payment", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.DownPayment }},
	{"rate", "nominal annual mortgage rate, e.g. 0.045", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.InterestRate }},
	{"condo-fee", "monthly condominium fee", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.CondoFee }},
	{"apartment-return", "annual apartment appreciation", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.ApartmentReturn }},
	{"apartment-tax", "tax rate on the apartment gain at sale", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.ApartmentGainTaxRate }},
	{"rent", "monthly rent", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.MonthlyRent }},
	{"return", "annual investment return", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.InvestmentReturn }},
	{"capital-tax", "capital gains tax rate", func(p *domain.ScenarioParameters) *decimal.Decimal { return &p.CapitalGainsTaxRate }},
}

var scenarioIntFlags = []intFlag{
	{"term", "mortgage term in years", func(p *domain.ScenarioParameters) *int { return &p.MortgageTermYears }},
	{"horizon", "years after the mortgage ends", func(p *domain.ScenarioParameters) *int { return &p.ExtraHorizonYears }},
}

// addScenarioFlags registers one flag per scenario parameter, defaulting to the
// reference scenario.
func addScenarioFlags(cmd *cobra.Command) {
	defaults := domain.DefaultParameters()
	for _, f := range scenarioDecimalFlags {
		cmd.Flags().String(f.name, f.field(&defaults).String(), f.usage)
	}
	for _, f := range scenarioIntFlags {
		cmd.Flags().Int(f.name, *f.field(&defaults), f.usage)
	}
}

// applyScenarioFlags copies the explicitly set parameter flags into p.
func applyScenarioFlags(cmd *cobra.Command, p *domain.ScenarioParameters) error {
	for _, f := range scenarioDecimalFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		raw, _ := cmd.Flags().GetString(f.name)
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("--%s: %q is not a number", f.name, raw)
		}
		*f.field(p) = v
	}
	for _, f := range scenarioIntFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		*f.field(p), _ = cmd.Flags().GetInt(f.name)
	}
	return nil
}

func decimalFlagValue(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, raw)
	}
	return v, nil
}
