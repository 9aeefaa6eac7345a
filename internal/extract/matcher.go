package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher holds the format-specific matching rules
type Matcher interface {
	// Sections returns each results list in document order
	Sections(content string) []string
	// MainBalls returns the main numbers of a section in document order
	MainBalls(section string) []string
	// BonusBalls returns the lucky-star numbers of a section in document order
	BonusBalls(section string) []string
}

const (
	MatcherSource = "source"
	MatcherDOM    = "dom"
)

var (
	// A results list starts at the highlighted class="balls" attribute and runs
	// to the first escaped closing </ul>.
	sectionPattern = regexp.MustCompile(`(?s)<span class="html-attribute-value">balls</span>"&gt;</span>.*?&lt;/ul&gt;`)

	mainBallPattern = regexp.MustCompile(`<span class="html-attribute-value">resultBall ball small</span>"&gt;</span>(\d+)<span class="html-tag">&lt;/li&gt;</span>`)

	luckyStarPattern = regexp.MustCompile(`<span class="html-attribute-value">resultBall lucky-star small</span>"&gt;</span>(\d+)<span class="html-tag">&lt;/li&gt;</span>`)
)

// SourceMatcher matches the escaped markup of a view-source snapshot
type SourceMatcher struct{}

// Sections implements Matcher
func (SourceMatcher) Sections(content string) []string {
	return sectionPattern.FindAllString(content, -1)
}

// MainBalls implements Matcher
func (SourceMatcher) MainBalls(section string) []string {
	return captures(mainBallPattern, section)
}

// BonusBalls implements Matcher
func (SourceMatcher) BonusBalls(section string) []string {
	return captures(luckyStarPattern, section)
}

// captures returns the first submatch of every match of re in s
func captures(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}

// MatcherFor returns the matcher registered under name
func MatcherFor(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MatcherSource, "":
		return SourceMatcher{}, nil
	case MatcherDOM:
		return DOMMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher: %s (must be '%s' or '%s')", name, MatcherSource, MatcherDOM)
	}
}
