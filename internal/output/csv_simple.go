package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "MonthlyPayment", "MonthlyOwnCost", "MonthlyRent", "RentDifferential", "OwnerReinvestment", "ShortOwnNetAssets", "ShortRentNetAssets", "OwnPreTax", "OwnPostTax", "RentPreTax", "RentPostTax", "Winner", "Margin", "BreakEvenMonth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		s := sc.Summary
		row := []string{
			sc.Name,
			s.MonthlyPayment.StringFixed(0),
			s.MonthlyOwnCost.StringFixed(0),
			sc.Parameters.MonthlyRent.StringFixed(0),
			s.RentDifferential.StringFixed(0),
			s.OwnerReinvestment.StringFixed(0),
			s.ShortOwnNetAssets.StringFixed(0),
			s.ShortRentNetAssets.StringFixed(0),
			s.OwnPreTax.StringFixed(0),
			s.OwnPostTax.StringFixed(2),
			s.RentPreTax.StringFixed(0),
			s.RentPostTax.StringFixed(2),
			s.Winner,
			s.Margin.StringFixed(2),
			intToString(s.BreakEvenMonth),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
