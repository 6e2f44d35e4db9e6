package output

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MarkdownFormatter renders the narrative report as Markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"whole": FormatWhole,
	"rate":  FormatRate,
	"share": func(part, whole decimal.Decimal) string {
		if whole.IsZero() {
			return FormatPercentage(whole)
		}
		return FormatPercentage(part.Div(whole).Mul(decimalHundred))
	},
	"verdict":  VerdictFor,
	"yearOf":   dateutil.YearOfMonth,
	"ownValue": func(sc domain.ScenarioResult) decimal.Decimal { return lastOwnValue(sc) },
}).Parse(`# Renting versus Owning
{{range .Scenarios}}
## {{.Name}}

### Mortgage and Apartment

The apartment costs **{{whole .Parameters.PurchasePrice}}**. With a down payment of {{whole .Parameters.DownPayment}} ({{share .Parameters.DownPayment .Parameters.PurchasePrice}} of the price) the loan is **{{whole .Parameters.LoanAmount}}**, paid back over {{.Parameters.MortgageTermYears}} years at {{rate .Parameters.InterestRate}} interest. The monthly payment is {{whole .Summary.MonthlyPayment}}.

The apartment appreciates {{rate .Parameters.ApartmentReturn}} a year, and after {{.Parameters.MortgageTermYears}} years it is worth {{whole (ownValue .)}}. Net assets from owning reach **{{whole .Summary.ShortOwnNetAssets}}** once the loan is repaid.

| Monthly cost | Amount |
|---|---:|
| Condominium fee | {{whole .Parameters.CondoFee}} |
| Principal | {{whole .Summary.FirstPrincipal}} |
| Interest | {{whole .Summary.FirstInterest}} |
| **Total** | **{{whole .Summary.MonthlyOwnCost}}** |

### Renting and Investing

Renting costs {{whole .Parameters.MonthlyRent}} a month, so the renter invests the remaining **{{whole .Summary.RentDifferential}}** every month together with the down payment at {{rate .Parameters.InvestmentReturn}} a year. After {{.Parameters.MortgageTermYears}} years the portfolio is worth **{{whole .Summary.ShortRentNetAssets}}**, compared with {{whole .Summary.ShortOwnNetAssets}} from owning.

### Longer Time Horizon with Taxes

After the loan is repaid the owner invests the former mortgage payment of {{whole .Summary.OwnerReinvestment}} a month for {{.Parameters.ExtraHorizonYears}} more years. Everything is sold after {{.Parameters.TotalYears}} years: apartment gains are taxed at {{rate .Parameters.ApartmentGainTaxRate}} and capital gains at {{rate .Parameters.CapitalGainsTaxRate}}.

| | Before taxes | After taxes |
|---|---:|---:|
| Owning | {{whole .Summary.OwnPreTax}} | {{whole .Summary.OwnPostTax}} |
| Renting | {{whole .Summary.RentPreTax}} | {{whole .Summary.RentPostTax}} |
{{if gt .Summary.BreakEvenMonth 0}}
Owning stays ahead of renting from month {{.Summary.BreakEvenMonth}} (year {{yearOf .Summary.BreakEvenMonth}}) before taxes.
{{else}}
Owning does not finish ahead of renting before taxes.
{{end}}
### Comparison

{{verdict .}}
{{end}}{{if .Assumptions}}
## Assumptions
{{range .Assumptions}}
- {{.}}{{end}}
{{end}}`))

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	data := struct {
		Scenarios   []domain.ScenarioResult
		Assumptions []string
	}{results.Scenarios, resultAssumptions(results)}

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// lastOwnValue is the market value of the apartment at the end of the mortgage.
func lastOwnValue(sc domain.ScenarioResult) decimal.Decimal {
	if len(sc.Own) == 0 {
		return sc.Parameters.PurchasePrice
	}
	return sc.Own[len(sc.Own)-1].Apartment
}

// RenderTerminal renders Markdown for a terminal with word wrapping.
func RenderTerminal(markdown []byte, width int) (string, error) {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(string(markdown))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
