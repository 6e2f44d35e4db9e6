package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartStyle_WithReturnsCopies(t *testing.T) {
	base := DefaultChartStyle()
	resized := base.WithSize("600px", "300px")
	themed := resized.WithTheme("dark")

	assert.Equal(t, "900px", base.Width())
	assert.Equal(t, "white", base.Theme())
	assert.Equal(t, "600px", resized.Width())
	assert.Equal(t, "white", resized.Theme())
	assert.Equal(t, "dark", themed.Theme())
	assert.Equal(t, "300px", themed.Height())

	assert.Equal(t, DefaultChartStyle(), base, "defaults are never mutated")
}

func TestChartID(t *testing.T) {
	tests := map[string]string{
		"Baseline":           "chart_baseline_loan",
		"High Rent":          "chart_high_rent_loan",
		"  5% down / 30y!  ": "chart_5_down_30y_loan",
	}
	for name, want := range tests {
		assert.Equal(t, want, chartID(name, "loan"))
	}
}

func TestLoanChart_SumsYears(t *testing.T) {
	sc := buildTestComparison(t).Scenarios[0]
	bar := LoanChart(DefaultChartStyle(), sc, time.Time{})
	require.Len(t, bar.MultiSeries, 2)

	principal := bar.MultiSeries[0].Data
	// one bar per mortgage year
	assert.Len(t, principal, 25)

	frag, err := renderChart(bar)
	require.NoError(t, err)
	assert.Contains(t, string(frag), `"stack":"stackA"`)
	assert.Contains(t, string(frag), "Year 25")
	assert.NotContains(t, string(frag), "<head>")
}

func TestNetAssetsChart_YearEnds(t *testing.T) {
	sc := buildTestComparison(t).Scenarios[0]
	line := NetAssetsChart(DefaultChartStyle(), sc, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, line.MultiSeries, 2)

	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))
	// month 348 is the last natural year end; month 372 is the liquidation row
	assert.Contains(t, buf.String(), "2053-12")
	assert.NotContains(t, buf.String(), "2054-12")
	assert.Contains(t, buf.String(), "2055-12")
	assert.Contains(t, buf.String(), `id="chart_baseline_net_assets"`)
}
