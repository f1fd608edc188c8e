package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/codaddy/extractor"
)

func TestToMarkdown(t *testing.T) {
	t.Parallel()

	p, err := extractor.ExtractHTML(watermelonPage)
	require.NoError(t, err)

	md, err := extractor.ToMarkdown(extractor.NewMarkdownConverter(), p, "https://codeforces.com")
	require.NoError(t, err)

	assert.Contains(t, md.OutputSpecification, "**YES**")
	assert.NotContains(t, md.OutputSpecification, "<b>")
	assert.Contains(t, md.ProblemStatement, "watermelon")
	assert.NotContains(t, md.ProblemStatement, "<p>")

	// Plain-text fields and the source record are untouched.
	assert.Equal(t, p.TimeLimit, md.TimeLimit)
	assert.Equal(t, p.InputExamples, md.InputExamples)
	assert.Contains(t, p.OutputSpecification, "<b>YES</b>")
}
