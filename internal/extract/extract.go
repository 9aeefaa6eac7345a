package extract

import (
	"slices"

	"github.com/pfrederiksen/euromillions-csv/internal/draw"
)

// Result is the outcome of extracting one file
type Result struct {
	Draws    []draw.Draw
	Sections int
}

// Extractor turns page content into draws using a Matcher
type Extractor struct {
	matcher Matcher
}

// New creates an Extractor. A nil matcher selects SourceMatcher.
func New(m Matcher) *Extractor {
	if m == nil {
		m = SourceMatcher{}
	}
	return &Extractor{matcher: m}
}

// Extract returns the draws found in content, labelled with label.
// Sections with fewer than five main balls are skipped. The returned draws
// are in reverse document order.
func (e *Extractor) Extract(content, label string) Result {
	sections := e.matcher.Sections(content)

	draws := make([]draw.Draw, 0, len(sections))
	for _, section := range sections {
		d, ok := draw.New(label, e.matcher.MainBalls(section), e.matcher.BonusBalls(section))
		if !ok {
			continue
		}
		draws = append(draws, d)
	}

	ReverseDraws(draws)

	return Result{
		Draws:    draws,
		Sections: len(sections),
	}
}

// Extract runs the default view-source extractor over content
func Extract(content, label string) []draw.Draw {
	return New(nil).Extract(content, label).Draws
}

// ReverseDraws reverses the per-file draw order in place, so the last
// section of a page becomes the first draw of its file.
func ReverseDraws(draws []draw.Draw) {
	slices.Reverse(draws)
}
