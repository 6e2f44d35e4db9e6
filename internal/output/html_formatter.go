package output

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML report: the Markdown narrative
// converted to HTML plus interactive charts for every scenario.
type HTMLFormatter struct {
	Style ChartStyle
}

func (h HTMLFormatter) Name() string { return "html" }

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"whole": FormatWhole,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Renting versus Owning</title>
<script src="{{.AssetURL}}"></script>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: #f4f6f8; }
.container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; }
table { border-collapse: collapse; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 6px 12px; }
.recommendation { background: #eef6ee; border-left: 4px solid #3ba272; padding: 12px 16px; margin: 20px 0; }
.chart { margin: 20px 0; }
</style>
</head>
<body>
<div class="container">
{{if .Recommendation.ScenarioName}}<div class="recommendation"><strong>{{.Recommendation.ScenarioName}}:</strong> {{.Recommendation.Verdict}}</div>{{end}}
{{.Narrative}}
<h2>Charts</h2>
{{if .Summary}}<div class="chart">{{.Summary}}</div>{{end}}
{{range .Charts}}<h3>{{.Name}}</h3>
{{range .Fragments}}<div class="chart">{{.}}</div>
{{end}}{{end}}
</div>
</body>
</html>
`))

type scenarioCharts struct {
	Name      string
	Fragments []template.HTML
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	style := h.Style
	if style == (ChartStyle{}) {
		style = DefaultChartStyle()
	}

	md, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}
	var narrative bytes.Buffer
	if err := markdownToHTML.Convert(md, &narrative); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var summary template.HTML
	if len(results.Scenarios) > 1 {
		frag, err := renderChart(SummaryChart(style, results))
		if err != nil {
			return nil, err
		}
		summary = frag
	}

	perScenario := make([]scenarioCharts, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		entry := scenarioCharts{Name: sc.Name}
		for _, c := range []chartRenderer{
			NetAssetsChart(style, sc, results.StartDate),
			ApartmentChart(style, sc, results.StartDate),
			LoanChart(style, sc, results.StartDate),
		} {
			frag, err := renderChart(c)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			entry.Fragments = append(entry.Fragments, frag)
		}
		perScenario = append(perScenario, entry)
	}

	data := struct {
		AssetURL       string
		Recommendation Recommendation
		Narrative      template.HTML
		Summary        template.HTML
		Charts         []scenarioCharts
	}{
		AssetURL:       echartsAssetURL,
		Recommendation: AnalyzeScenarios(results),
		Narrative:      template.HTML(narrative.String()),
		Summary:        summary,
		Charts:         perScenario,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
