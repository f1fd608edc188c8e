package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractSamples collects every sample input and output block in document
// order. inputs[i] pairs with outputs[i] on a well-formed page; the slices
// are never nil.
func ExtractSamples(doc *goquery.Selection) (inputs, outputs []string) {
	return sampleBlocks(doc.FindMatcher(selSampleInput)),
		sampleBlocks(doc.FindMatcher(selSampleOutput))
}

func sampleBlocks(sel *goquery.Selection) []string {
	blocks := make([]string, 0, sel.Length())
	sel.Each(func(_ int, pre *goquery.Selection) {
		blocks = append(blocks, SampleText(pre))
	})
	return blocks
}

// SampleText rebuilds one sample block as newline-joined lines.
//
// Blocks whose lines are tagged with the test-example-line marker class
// take one line per marker. Otherwise the block is split on <br> elements
// by ReconstructLines.
func SampleText(pre *goquery.Selection) string {
	if marked := pre.FindMatcher(selExampleLine); marked.Length() > 0 {
		lines := make([]string, 0, marked.Length())
		marked.Each(func(_ int, line *goquery.Selection) {
			lines = append(lines, strings.TrimSpace(line.Text()))
		})
		return strings.Join(lines, "\n")
	}
	return strings.Join(ReconstructLines(pre.Get(0)), "\n")
}
