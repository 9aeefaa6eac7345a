package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pfrederiksen/euromillions-csv/internal/convert"
	"github.com/pfrederiksen/euromillions-csv/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatHTML OutputFormat = "html"
)

// WriteSummary writes a conversion summary in the specified format
func WriteSummary(w io.Writer, summary *convert.Summary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		fmt.Fprintf(w, "Wrote %d draws from %d files to %s\n", summary.Draws, summary.Files, summary.Output)
		if summary.Unreadable > 0 {
			fmt.Fprintf(w, "Skipped %d unreadable files\n", summary.Unreadable)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteReport writes a stats report in the specified format.
// top limits each ranking in text and HTML output; JSON always carries every number.
func WriteReport(w io.Writer, report *stats.Report, format OutputFormat, top int) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeReportText(w, report, top)
	case FormatHTML:
		return writeReportHTML(w, report, top)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeReportText(w io.Writer, report *stats.Report, top int) error {
	if report.Draws == 0 {
		fmt.Fprintln(w, "No draws found.")
		return nil
	}

	starTop := min(top, stats.MaxStar/2)

	section(w, "BASIC STATISTICS")
	fmt.Fprintf(w, "Draws analyzed: %d\n", report.Draws)
	fmt.Fprintln(w, "\nMain balls, most frequent:")
	writeCounts(w, head(report.Frequency.Main, top))
	fmt.Fprintln(w, "Main balls, least frequent:")
	writeCounts(w, tail(report.Frequency.Main, top))
	fmt.Fprintln(w, "\nLucky stars, most frequent:")
	writeCounts(w, head(report.Frequency.Stars, starTop))
	fmt.Fprintln(w, "Lucky stars, least frequent:")
	writeCounts(w, tail(report.Frequency.Stars, starTop))

	section(w, "OVERDUE NUMBERS")
	fmt.Fprintln(w, "Main balls:")
	writeGaps(w, report.Overdue.Main, top)
	fmt.Fprintln(w, "Lucky stars:")
	writeGaps(w, report.Overdue.Stars, starTop)

	section(w, fmt.Sprintf("HOT/COLD (last %d draws)", report.HotCold.Window))
	fmt.Fprintln(w, "Hot main balls:")
	writeCounts(w, head(report.HotCold.Frequency.Main, top))
	fmt.Fprintf(w, "Cold main balls: %s\n", joinInts(report.HotCold.ColdMain))
	fmt.Fprintln(w, "Hot lucky stars:")
	writeCounts(w, head(report.HotCold.Frequency.Stars, starTop))
	fmt.Fprintf(w, "Cold lucky stars: %s\n", joinInts(report.HotCold.ColdStars))

	p := report.Patterns
	section(w, "PATTERNS")
	writePattern(w, "Consecutive pairs", p.ConsecutivePairs, report.Draws)
	writePattern(w, "Consecutive triplets", p.ConsecutiveTriplets, report.Draws)
	writePattern(w, "All odd", p.AllOdd, report.Draws)
	writePattern(w, "All even", p.AllEven, report.Draws)
	writePattern(w, "Majority odd", p.MajorityOdd, report.Draws)
	writePattern(w, "Majority even", p.MajorityEven, report.Draws)
	writePattern(w, "Within three decades", p.SameDecade, report.Draws)

	fmt.Fprintln(w, "\nSum ranges:")
	for _, r := range sortedRanges(p.SumRanges) {
		writePattern(w, r, p.SumRanges[r], report.Draws)
	}

	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", 50))
}

func writeCounts(w io.Writer, counts []stats.Count) {
	for _, c := range counts {
		fmt.Fprintf(w, "  %2d: %3d times (%.1f%%)\n", c.Number, c.Count, c.Percent)
	}
}

func writeGaps(w io.Writer, gaps []stats.Gap, top int) {
	for _, g := range head(gaps, top) {
		fmt.Fprintf(w, "  %2d: %3d draws ago\n", g.Number, g.DrawsAgo)
	}
}

func writePattern(w io.Writer, label string, count, total int) {
	fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", label, count, percent(count, total))
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// sortedRanges orders sum range keys by their lower bound
func sortedRanges(ranges map[string]int) []string {
	keys := make([]string, 0, len(ranges))
	for r := range ranges {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool {
		return rangeStart(keys[i]) < rangeStart(keys[j])
	})
	return keys
}

func head[T any](items []T, n int) []T {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func tail[T any](items []T, n int) []T {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return items[len(items)-n:]
}

func joinInts(nums []int) string {
	if len(nums) == 0 {
		return "none"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

// rangeStart returns the lower bound of a "low-high" sum range
func rangeStart(r string) int {
	var low int
	fmt.Sscanf(r, "%d-", &low)
	return low
}
