package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Labels prepended to the single-property limit fields.
const (
	TimeLimitLabel   = "Time limit per test: "
	MemoryLimitLabel = "Memory limit per test: "
)

// SectionContent returns the content of a labelled container (such as the
// input specification) with its section-title child removed.
//
// Element children contribute their outer HTML so inline formatting and
// math survive; text children contribute their text. Comments are dropped.
// An empty selection yields "".
func SectionContent(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	var b strings.Builder
	sel.First().Contents().Each(func(_ int, child *goquery.Selection) {
		n := child.Get(0)
		switch n.Type {
		case html.ElementNode:
			if child.HasClass(sectionTitleClass) {
				return
			}
			markup, err := goquery.OuterHtml(child)
			if err != nil {
				b.WriteString(child.Text())
				return
			}
			b.WriteString(markup)
		case html.TextNode:
			b.WriteString(n.Data)
		}
	})
	return strings.TrimSpace(b.String())
}

// PropertyValue reads a single-property container such as
// <div class="time-limit"><div class="property-title">time limit per test</div>1 second</div>.
// The property title text is removed from the container text and the
// remainder is prefixed with label. An empty selection yields "".
func PropertyValue(sel *goquery.Selection, label string) string {
	if sel.Length() == 0 {
		return ""
	}
	sel = sel.First()

	title := strings.TrimSpace(sel.FindMatcher(selPropertyTitle).First().Text())
	value := strings.TrimSpace(strings.Replace(sel.Text(), title, "", 1))
	return label + value
}
