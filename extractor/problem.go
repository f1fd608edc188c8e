// Package extractor turns a rendered problem page into a models.Problem.
//
// Every query runs against fixed selectors. Only the .problem-statement root
// is mandatory; any other missing block degrades to an empty value.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/codaddy/models"
)

// StatementSeparator joins statement paragraphs.
const StatementSeparator = "<br/><br/>"

// ExtractHTML parses rawHTML and runs Extract on it.
func ExtractHTML(rawHTML string) (*models.Problem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeInternal,
			"failed to parse rendered HTML",
			err,
		)
	}
	return Extract(doc)
}

// Extract builds a Problem from a rendered document.
//
// Flow:
//  1. Locate the .problem-statement root (ErrCodeNotFound if absent).
//  2. Title from the header, nil if absent.
//  3. Note as raw inner markup.
//  4. Statement paragraphs: the root's remaining div children.
//  5. Time and memory limits, queried document-wide.
//  6. Input/output specifications without their section titles.
//  7. Sample pairs.
func Extract(doc *goquery.Document) (*models.Problem, error) {
	// ── 1. Root anchor ──────────────────────────────────────────────
	root := doc.FindMatcher(selRoot).First()
	if root.Length() == 0 {
		return nil, models.NewScrapeError(
			models.ErrCodeNotFound,
			"problem statement container not found",
			nil,
		)
	}

	// ── 2-4. Root-scoped blocks ─────────────────────────────────────
	var title *string
	if t := root.FindMatcher(selTitle).First(); t.Length() > 0 {
		text := strings.TrimSpace(t.Text())
		title = &text
	}

	note := innerHTML(root.FindMatcher(selNote).First())
	statement := statementParagraphs(root)

	// ── 5-7. Document-level blocks ──────────────────────────────────
	inputs, outputs := ExtractSamples(doc.Selection)

	return &models.Problem{
		Title:               title,
		ProblemStatement:    statement,
		TimeLimit:           PropertyValue(doc.FindMatcher(selTimeLimit), TimeLimitLabel),
		MemoryLimit:         PropertyValue(doc.FindMatcher(selMemoryLimit), MemoryLimitLabel),
		InputSpecification:  SectionContent(doc.FindMatcher(selInputSp)),
		OutputSpecification: SectionContent(doc.FindMatcher(selOutputSp)),
		InputExamples:       inputs,
		OutputExamples:      outputs,
		Note:                note,
	}, nil
}

// statementParagraphs joins the inner markup of the root's non-structural
// div children, dropping empty ones.
func statementParagraphs(root *goquery.Selection) string {
	var parts []string
	root.ChildrenMatcher(selParagraph).Each(func(_ int, s *goquery.Selection) {
		if markup := innerHTML(s); markup != "" {
			parts = append(parts, markup)
		}
	})
	return strings.Join(parts, StatementSeparator)
}

// innerHTML returns the trimmed inner markup of sel, or "" when sel is
// empty or cannot be rendered.
func innerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	markup, err := sel.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(markup)
}
