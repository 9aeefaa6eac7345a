package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	sectionSelector   = "ul.balls"
	mainBallSelector  = "li.resultBall.ball"
	luckyStarSelector = "li.resultBall.lucky-star"
)

// DOMMatcher matches a plain (non view-source) results page.
// Sections are returned as outer HTML so they can be parsed again on their own.
type DOMMatcher struct{}

// Sections implements Matcher
func (DOMMatcher) Sections(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	sections := make([]string, 0)
	doc.Find(sectionSelector).Each(func(i int, sel *goquery.Selection) {
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		sections = append(sections, html)
	})
	return sections
}

// MainBalls implements Matcher
func (DOMMatcher) MainBalls(section string) []string {
	return numbersIn(section, mainBallSelector)
}

// BonusBalls implements Matcher
func (DOMMatcher) BonusBalls(section string) []string {
	return numbersIn(section, luckyStarSelector)
}

// numbersIn returns the text of every element matching selector that is a
// plain run of digits
func numbersIn(section, selector string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(section))
	if err != nil {
		return nil
	}

	numbers := make([]string, 0)
	doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if isDigits(text) {
			numbers = append(numbers, text)
		}
	})
	return numbers
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
