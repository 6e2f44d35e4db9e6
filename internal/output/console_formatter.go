package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RENT VERSUS OWN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		s := sc.Summary
		fmt.Fprintf(&buf, "%s: Payment=%s MonthlyCost=%s Rent=%s Invested=%s\n",
			sc.Name,
			FormatWhole(s.MonthlyPayment),
			FormatWhole(s.MonthlyOwnCost),
			FormatWhole(sc.Parameters.MonthlyRent),
			FormatWhole(s.RentDifferential),
		)
		fmt.Fprintf(&buf, "  Own=%s Rent=%s Winner=%s Margin=%s BreakEvenMonth=%d\n",
			FormatWhole(s.OwnPostTax), FormatWhole(s.RentPostTax), s.Winner, FormatWhole(s.Margin), s.BreakEvenMonth)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best for owning: %s (%s, margin %s)\n", rec.ScenarioName, rec.Winner, FormatWhole(rec.Margin))
	}
	return buf.Bytes(), nil
}
