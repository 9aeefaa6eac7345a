package cli

import (
	"fmt"
	"html/template"
	"io"

	"github.com/pfrederiksen/euromillions-csv/internal/stats"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":  percent,
	"join": joinInts,
	"dict": dict,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 0.25em 0.75em; text-align: right; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- if eq .Report.Draws 0}}
<p>No draws found.</p>
{{- else}}
<p>Draws analyzed: {{.Report.Draws}}</p>

<h2>Basic statistics</h2>
{{template "counts" dict "Title" "Main balls, most frequent" "Counts" .TopMain}}
{{template "counts" dict "Title" "Main balls, least frequent" "Counts" .BottomMain}}
{{template "counts" dict "Title" "Lucky stars, most frequent" "Counts" .TopStars}}
{{template "counts" dict "Title" "Lucky stars, least frequent" "Counts" .BottomStars}}

<h2>Overdue numbers</h2>
{{template "gaps" dict "Title" "Main balls" "Gaps" .OverdueMain}}
{{template "gaps" dict "Title" "Lucky stars" "Gaps" .OverdueStars}}

<h2>Hot/cold (last {{.Report.HotCold.Window}} draws)</h2>
{{template "counts" dict "Title" "Hot main balls" "Counts" .HotMain}}
<p>Cold main balls: {{join .Report.HotCold.ColdMain}}</p>
{{template "counts" dict "Title" "Hot lucky stars" "Counts" .HotStars}}
<p>Cold lucky stars: {{join .Report.HotCold.ColdStars}}</p>

<h2>Patterns</h2>
<table>
<tr><th>Pattern</th><th>Draws</th><th>Share</th></tr>
{{- range .Patterns}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td>{{printf "%.1f%%" (pct .Count $.Report.Draws)}}</td></tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
{{define "counts"}}<table>
<caption>{{.Title}}</caption>
<tr><th>Number</th><th>Times</th><th>Share</th></tr>
{{- range .Counts}}
<tr><td>{{.Number}}</td><td>{{.Count}}</td><td>{{printf "%.1f%%" .Percent}}</td></tr>
{{- end}}
</table>{{end}}
{{define "gaps"}}<table>
<caption>{{.Title}}</caption>
<tr><th>Number</th><th>Draws ago</th></tr>
{{- range .Gaps}}
<tr><td>{{.Number}}</td><td>{{.DrawsAgo}}</td></tr>
{{- end}}
</table>{{end}}
`))

type patternRow struct {
	Label string
	Count int
}

type reportPage struct {
	Title        string
	Report       *stats.Report
	TopMain      []stats.Count
	BottomMain   []stats.Count
	TopStars     []stats.Count
	BottomStars  []stats.Count
	OverdueMain  []stats.Gap
	OverdueStars []stats.Gap
	HotMain      []stats.Count
	HotStars     []stats.Count
	Patterns     []patternRow
}

// writeReportHTML renders the report as a standalone HTML page with the same
// rankings as the text output
func writeReportHTML(w io.Writer, report *stats.Report, top int) error {
	starTop := min(top, stats.MaxStar/2)
	p := report.Patterns

	page := reportPage{
		Title:        "EuroMillions draw statistics",
		Report:       report,
		TopMain:      head(report.Frequency.Main, top),
		BottomMain:   tail(report.Frequency.Main, top),
		TopStars:     head(report.Frequency.Stars, starTop),
		BottomStars:  tail(report.Frequency.Stars, starTop),
		OverdueMain:  head(report.Overdue.Main, top),
		OverdueStars: head(report.Overdue.Stars, starTop),
		HotMain:      head(report.HotCold.Frequency.Main, top),
		HotStars:     head(report.HotCold.Frequency.Stars, starTop),
		Patterns: []patternRow{
			{"Consecutive pairs", p.ConsecutivePairs},
			{"Consecutive triplets", p.ConsecutiveTriplets},
			{"All odd", p.AllOdd},
			{"All even", p.AllEven},
			{"Majority odd", p.MajorityOdd},
			{"Majority even", p.MajorityEven},
			{"Within three decades", p.SameDecade},
		},
	}
	for _, r := range sortedRanges(p.SumRanges) {
		page.Patterns = append(page.Patterns, patternRow{"Sum " + r, p.SumRanges[r]})
	}

	if err := reportTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}
	return nil
}

// dict builds a map from alternating keys and values for sub-templates
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
