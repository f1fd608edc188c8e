package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ReconstructLines converts a node whose children mix raw text runs with
// <br> elements into the ordered lines the author intended.
//
// Text children accumulate into a pending line; each <br> flushes it. Blank
// lines are never emitted and other element children are skipped. When the
// walk yields nothing, the node's whole text content (trimmed) is returned
// as the single line, so a non-empty subtree is never reduced to nothing.
func ReconstructLines(n *html.Node) []string {
	if n == nil {
		return nil
	}

	var (
		lines   []string
		pending strings.Builder
	)
	flush := func() {
		if line := strings.TrimSpace(pending.String()); line != "" {
			lines = append(lines, line)
		}
		pending.Reset()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				pending.WriteString(c.Data)
			}
		case c.Type == html.ElementNode && c.DataAtom == atom.Br:
			flush()
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{strings.TrimSpace(goquery.NewDocumentFromNode(n).Text())}
	}
	return lines
}
