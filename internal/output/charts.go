package output

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// echartsAssetURL is the script every rendered chart depends on.
const echartsAssetURL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// ChartStyle controls the appearance of report charts. It is a value type; the
// With methods return modified copies and never change the receiver.
type ChartStyle struct {
	theme     string
	width     string
	height    string
	ownColor  string
	rentColor string
	loanColor string
}

// DefaultChartStyle is the style used by the html format.
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		theme:     "white",
		width:     "900px",
		height:    "420px",
		ownColor:  "#5470c6",
		rentColor: "#91cc75",
		loanColor: "#ee6666",
	}
}

func (s ChartStyle) WithTheme(theme string) ChartStyle { s.theme = theme; return s }

func (s ChartStyle) WithSize(width, height string) ChartStyle {
	s.width, s.height = width, height
	return s
}

// WithColors sets the series colors for owning, renting and the loan.
func (s ChartStyle) WithColors(own, rent, loan string) ChartStyle {
	s.ownColor, s.rentColor, s.loanColor = own, rent, loan
	return s
}

func (s ChartStyle) Theme() string  { return s.theme }
func (s ChartStyle) Width() string  { return s.width }
func (s ChartStyle) Height() string { return s.height }

func (s ChartStyle) colors() opts.Colors {
	return opts.Colors{s.ownColor, s.rentColor, s.loanColor}
}

func (s ChartStyle) initOpts(id string) opts.Initialization {
	return opts.Initialization{ChartID: id, Theme: s.theme, Width: s.width, Height: s.height}
}

var nonIDChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// chartID derives a stable element id from a scenario name and chart kind.
func chartID(scenario, kind string) string {
	return "chart_" + strings.Trim(nonIDChars.ReplaceAllString(strings.ToLower(scenario), "_"), "_") + "_" + kind
}

func yearEndLabel(start time.Time, month int) string {
	if l := dateutil.MonthLabel(start, month); l != "" {
		return l
	}
	return fmt.Sprintf("Year %d", dateutil.YearOfMonth(month))
}

func lineData(values []decimal.Decimal) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		out[i] = opts.LineData{Value: v.InexactFloat64()}
	}
	return out
}

func barData(values []decimal.Decimal) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		out[i] = opts.BarData{Value: v.InexactFloat64()}
	}
	return out
}

// NetAssetsChart plots net assets of both long-horizon tracks at every year end. The
// last point is the after-tax liquidation row.
func NetAssetsChart(style ChartStyle, sc domain.ScenarioResult, start time.Time) *charts.Line {
	var labels []string
	var own, rent []decimal.Decimal
	for i, row := range sc.OwnLong {
		if !dateutil.IsYearEnd(row.Month) || i >= len(sc.RentLong) {
			continue
		}
		labels = append(labels, yearEndLabel(start, row.Month))
		own = append(own, row.NetAssets)
		rent = append(rent, sc.RentLong[i].NetAssets)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(style.initOpts(chartID(sc.Name, "net_assets"))),
		charts.WithTitleOpts(opts.Title{Title: "Net assets, taxed at liquidation", Subtitle: sc.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
		charts.WithColorsOpts(style.colors()),
	)
	line.SetXAxis(labels).
		AddSeries("Owning", lineData(own)).
		AddSeries("Renting", lineData(rent))
	return line
}

// LoanChart stacks the yearly principal and interest paid on the mortgage.
func LoanChart(style ChartStyle, sc domain.ScenarioResult, start time.Time) *charts.Bar {
	var labels []string
	var principal, interest []decimal.Decimal
	for _, row := range sc.Loan {
		y := row.Year - 1
		if y >= len(principal) {
			labels = append(labels, yearEndLabel(start, row.Year*domain.MonthsPerYear))
			principal = append(principal, decimal.Zero)
			interest = append(interest, decimal.Zero)
		}
		principal[y] = principal[y].Add(row.Principal)
		interest[y] = interest[y].Add(row.Interest)
	}

	stacked := charts.WithBarChartOpts(opts.BarChart{Stack: "stackA"})
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(style.initOpts(chartID(sc.Name, "loan"))),
		charts.WithTitleOpts(opts.Title{Title: "Loan repayment schedule", Subtitle: sc.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
		charts.WithColorsOpts(opts.Colors{style.ownColor, style.loanColor}),
	)
	bar.SetXAxis(labels).
		AddSeries("Principal", barData(principal), stacked).
		AddSeries("Interest", barData(interest), stacked)
	return bar
}

// ApartmentChart compares the apartment value with the renter's portfolio over the mortgage term.
func ApartmentChart(style ChartStyle, sc domain.ScenarioResult, start time.Time) *charts.Line {
	var labels []string
	var apartment, portfolio []decimal.Decimal
	for i, row := range sc.Own {
		if row.Month%domain.MonthsPerYear != 0 || i >= len(sc.Rent) {
			continue
		}
		labels = append(labels, yearEndLabel(start, row.Month))
		apartment = append(apartment, row.Apartment)
		portfolio = append(portfolio, sc.Rent[i].Balance)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(style.initOpts(chartID(sc.Name, "apartment"))),
		charts.WithTitleOpts(opts.Title{Title: "Apartment value and rent portfolio", Subtitle: sc.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
		charts.WithColorsOpts(style.colors()),
	)
	line.SetXAxis(labels).
		AddSeries("Apartment value", lineData(apartment)).
		AddSeries("Rent portfolio", lineData(portfolio))
	return line
}

// SummaryChart compares after-tax net assets across scenarios.
func SummaryChart(style ChartStyle, results *domain.ScenarioComparison) *charts.Bar {
	names := make([]string, 0, len(results.Scenarios))
	var own, rent []decimal.Decimal
	for _, sc := range results.Scenarios {
		names = append(names, sc.Name)
		own = append(own, sc.Summary.OwnPostTax)
		rent = append(rent, sc.Summary.RentPostTax)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(style.initOpts("chart_summary")),
		charts.WithTitleOpts(opts.Title{Title: "Net assets after taxes"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
		charts.WithColorsOpts(style.colors()),
	)
	bar.SetXAxis(names).
		AddSeries("Owning", barData(own)).
		AddSeries("Renting", barData(rent))
	return bar
}

// chartRenderer is implemented by every go-echarts chart.
type chartRenderer interface {
	Render(w io.Writer) error
}

var bodyPattern = regexp.MustCompile(`(?s)<body>(.*)</body>`)

// renderChart renders a chart and keeps only the markup inside <body>, so that
// several charts can share one page and one copy of the echarts script.
func renderChart(c chartRenderer) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	m := bodyPattern.FindSubmatch(buf.Bytes())
	if m == nil {
		return "", errors.New("render chart: no body in output")
	}
	return template.HTML(strings.TrimSpace(string(m[1]))), nil
}
