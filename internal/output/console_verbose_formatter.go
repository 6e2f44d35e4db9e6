package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "RENT VERSUS OWN ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range resultAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		writeScenario(&buf, i+1, sc, results)
	}

	writeDetailedComparison(&buf, results)
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, index int, sc domain.ScenarioResult, results *domain.ScenarioComparison) {
	p, s := sc.Parameters, sc.Summary

	fmt.Fprintf(buf, "SCENARIO %d: %s\n", index, sc.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	fmt.Fprintln(buf, "PURCHASE:")
	fmt.Fprintf(buf, "  Purchase Price:         %s\n", FormatWhole(p.PurchasePrice))
	fmt.Fprintf(buf, "  Down Payment:           %s (%s of price)\n", FormatWhole(p.DownPayment), FormatPercentage(p.DownPayment.Div(p.PurchasePrice).Mul(decimalHundred)))
	fmt.Fprintf(buf, "  Loan Amount:            %s\n", FormatWhole(p.LoanAmount()))
	fmt.Fprintf(buf, "  Mortgage:               %d years at %s\n", p.MortgageTermYears, FormatRate(p.InterestRate))
	fmt.Fprintf(buf, "  Apartment Appreciation: %s yearly\n", FormatRate(p.ApartmentReturn))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "MONTHLY CASH FLOW (month 1):")
	fmt.Fprintf(buf, "  Condominium Fee:        %s\n", FormatWhole(p.CondoFee))
	fmt.Fprintf(buf, "  Principal Payment:      %s\n", FormatWhole(s.FirstPrincipal))
	fmt.Fprintf(buf, "  Loan Interest:          %s\n", FormatWhole(s.FirstInterest))
	fmt.Fprintf(buf, "  Total Monthly Cost:     %s\n", FormatWhole(s.MonthlyOwnCost))
	fmt.Fprintf(buf, "  Monthly Rent:           %s\n", FormatWhole(p.MonthlyRent))
	fmt.Fprintf(buf, "  Invested When Renting:  %s\n", FormatWhole(s.RentDifferential))
	fmt.Fprintf(buf, "  Invested After Payoff:  %s\n", FormatWhole(s.OwnerReinvestment))
	if !s.FinalLoanBalance.IsZero() {
		fmt.Fprintf(buf, "  Final Loan Balance:     %s (rounding drift)\n", FormatWhole(s.FinalLoanBalance))
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "AFTER %d YEARS (mortgage term, before taxes):\n", p.MortgageTermYears)
	fmt.Fprintf(buf, "  Owning:                 %s\n", FormatWhole(s.ShortOwnNetAssets))
	fmt.Fprintf(buf, "  Renting and Investing:  %s\n", FormatWhole(s.ShortRentNetAssets))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "AFTER %d YEARS (all assets sold):\n", p.TotalYears())
	fmt.Fprintf(buf, "  %-22s %16s %16s\n", "", "Before Taxes", "After Taxes")
	fmt.Fprintf(buf, "  %-22s %16s %16s\n", "Owning", FormatWhole(s.OwnPreTax), FormatWhole(s.OwnPostTax))
	fmt.Fprintf(buf, "  %-22s %16s %16s\n", "Renting and Investing", FormatWhole(s.RentPreTax), FormatWhole(s.RentPostTax))
	if s.BreakEvenMonth > 0 {
		fmt.Fprintf(buf, "  Owning stays ahead from month %d (year %d)%s\n", s.BreakEvenMonth, dateutil.YearOfMonth(s.BreakEvenMonth), calendarSuffix(results, s.BreakEvenMonth))
	} else {
		fmt.Fprintln(buf, "  Owning does not finish ahead before taxes")
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "VERDICT: %s\n", VerdictFor(sc))
	fmt.Fprintln(buf)

	writeYearlySnapshot(buf, sc, results)
	fmt.Fprintln(buf)
}

// writeYearlySnapshot prints the long-horizon tracks at each year end.
func writeYearlySnapshot(buf *bytes.Buffer, sc domain.ScenarioResult, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "YEAR-END NET ASSETS (final row after taxes):")
	fmt.Fprintf(buf, "  %4s %8s %14s %14s %14s %14s\n", "Year", "Month", "Loan Balance", "Apartment", "Owning", "Renting")
	for i, own := range sc.OwnLong {
		if !dateutil.IsYearEnd(own.Month) || i >= len(sc.RentLong) {
			continue
		}
		label := intToString(own.Month)
		if l := dateutil.MonthLabel(results.StartDate, own.Month); l != "" {
			label = l
		}
		fmt.Fprintf(buf, "  %4d %8s %14s %14s %14s %14s\n",
			own.Year, label,
			FormatWhole(own.Balance),
			FormatWhole(own.Apartment.Add(own.ApartmentGain)),
			FormatWhole(own.NetAssets),
			FormatWhole(sc.RentLong[i].NetAssets))
	}
}

func writeDetailedComparison(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	if len(results.Scenarios) == 0 {
		return
	}
	fmt.Fprintln(buf, "SCENARIO COMPARISON (after taxes)")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "%-24s %14s %14s %14s  %s\n", "Scenario", "Owning", "Renting", "Margin", "Winner")
	for _, sc := range results.Scenarios {
		s := sc.Summary
		fmt.Fprintf(buf, "%-24s %14s %14s %14s  %s\n", sc.Name, FormatWhole(s.OwnPostTax), FormatWhole(s.RentPostTax), FormatWhole(s.Margin), s.Winner)
	}
	rec := AnalyzeScenarios(results)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Best case for owning: %s (margin %s)\n", rec.ScenarioName, FormatWhole(rec.Margin))
	for _, k := range results.Analysis.KeyConsiderations {
		fmt.Fprintf(buf, "• %s\n", k)
	}
}

func calendarSuffix(results *domain.ScenarioComparison, month int) string {
	if l := dateutil.MonthLabel(results.StartDate, month); l != "" {
		return ", " + l
	}
	return ""
}
