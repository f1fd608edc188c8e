package extractor_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// watermelonPage mirrors the markup of a rendered problem page.
const watermelonPage = `<!DOCTYPE html>
<html>
<body>
<div class="problemindexholder">
<div class="ttypography">
<div class="problem-statement">
	<div class="header">
		<div class="title">A. Watermelon</div>
		<div class="time-limit"><div class="property-title">time limit per test</div>1 second</div>
		<div class="memory-limit"><div class="property-title">memory limit per test</div>64 megabytes</div>
		<div class="input-file"><div class="property-title">input</div>standard input</div>
	</div>
	<div><p>One hot summer day Pete and his friend Billy decided to buy a watermelon.</p></div>
	<div></div>
	<div><p>Help them decide.</p></div>
	<div class="input-specification"><div class="section-title">Input</div><p>The first line contains integer <i>w</i>.</p></div>
	<div class="output-specification"><div class="section-title">Output</div><p>Print <b>YES</b> or <b>NO</b>.</p></div>
	<div class="sample-tests">
		<div class="section-title">Examples</div>
		<div class="sample-test">
			<div class="input"><div class="title">Input</div><pre><div class="test-example-line test-example-line-even test-example-line-0">3</div><div class="test-example-line test-example-line-odd test-example-line-1">1 2 3</div></pre></div>
			<div class="output"><div class="title">Output</div><pre>YES
</pre></div>
			<div class="input"><div class="title">Input</div><pre>8<br>2 4<br></pre></div>
			<div class="output"><div class="title">Output</div><pre>NO<br></pre></div>
		</div>
	</div>
	<div class="note"><div class="section-title">Note</div><p>For example, the boys can divide the watermelon into two parts.</p></div>
</div>
</div>
</div>
</body>
</html>`

func parse(t *testing.T, rawHTML string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	require.NoError(t, err)
	return doc
}
