// Package extracttest builds result-page fixtures for tests.
package extracttest

import (
	"fmt"
	"strings"
)

// SourceSection renders one results list the way a view-source snapshot does
func SourceSection(main, bonus []string) string {
	var b strings.Builder
	b.WriteString(`<span class="html-tag">&lt;ul <span class="html-attribute-name">class</span>="<span class="html-attribute-value">balls</span>"&gt;</span>` + "\n")
	for _, n := range main {
		b.WriteString(sourceBall("resultBall ball small", n))
	}
	for _, n := range bonus {
		b.WriteString(sourceBall("resultBall lucky-star small", n))
	}
	b.WriteString(`<span class="html-tag">&lt;/ul&gt;</span>` + "\n")
	return b.String()
}

func sourceBall(class, n string) string {
	return fmt.Sprintf(`<span class="html-tag">&lt;li <span class="html-attribute-name">class</span>="<span class="html-attribute-value">%s</span>"&gt;</span>%s<span class="html-tag">&lt;/li&gt;</span>`+"\n", class, n)
}

// SourcePage wraps sections in the surrounding view-source table markup
func SourcePage(sections ...string) string {
	var b strings.Builder
	b.WriteString("<html><head><title>view-source</title></head><body><table><tbody>\n")
	for i, s := range sections {
		fmt.Fprintf(&b, `<tr><td class="line-number" value="%d"></td><td class="line-content">`, i+1)
		b.WriteString(s)
		b.WriteString("</td></tr>\n")
	}
	b.WriteString("</tbody></table></body></html>\n")
	return b.String()
}

// DOMSection renders one results list as plain markup
func DOMSection(main, bonus []string) string {
	var b strings.Builder
	b.WriteString(`<ul class="balls">`)
	for _, n := range main {
		fmt.Fprintf(&b, `<li class="resultBall ball small">%s</li>`, n)
	}
	for _, n := range bonus {
		fmt.Fprintf(&b, `<li class="resultBall lucky-star small">%s</li>`, n)
	}
	b.WriteString("</ul>")
	return b.String()
}

// DOMPage wraps plain sections in a minimal document
func DOMPage(sections ...string) string {
	return "<html><body><div class=\"results\">" + strings.Join(sections, "\n") + "</div></body></html>"
}
