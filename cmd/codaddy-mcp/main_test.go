package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/use-agent/codaddy/models"
)

func TestProblemPath(t *testing.T) {
	assert.Equal(t, "/api/problem/4/A?format=markdown", problemPath("4", "A", "markdown"))
	assert.Equal(t, "/api/problem/4/A", problemPath("4", "A", "html"))
	assert.Equal(t, "/api/problem/1%2F2/A", problemPath("1/2", "A", "html"))
}

func TestFormatProblem(t *testing.T) {
	title := "A. Watermelon"
	p := &models.Problem{
		Title:            &title,
		TimeLimit:        "Time limit per test: 1 second",
		MemoryLimit:      "Memory limit per test: 64 megabytes",
		ProblemStatement: "Split the watermelon.",
		InputExamples:    []string{"8"},
		OutputExamples:   []string{"YES"},
	}

	got := formatProblem(p)
	assert.Contains(t, got, "# A. Watermelon")
	assert.Contains(t, got, "Time limit per test: 1 second\nMemory limit per test: 64 megabytes")
	assert.Contains(t, got, "## Statement\n\nSplit the watermelon.")
	assert.Contains(t, got, "Input:\n```\n8\n```")
	assert.Contains(t, got, "Output:\n```\nYES\n```")
	assert.NotContains(t, got, "## Note")
	assert.NotContains(t, got, "## Input")
}

func TestFormatProblem_Untitled(t *testing.T) {
	got := formatProblem(&models.Problem{InputExamples: []string{}, OutputExamples: []string{}})
	assert.Empty(t, got)
}

func TestAPIErrorMessage(t *testing.T) {
	assert.Equal(t, "[404] Problem not found", apiErrorMessage(404, []byte(`{"error":"Problem not found"}`)))
	assert.Equal(t, "[500] Failed to scrape problem: timeout",
		apiErrorMessage(500, []byte(`{"error":"Failed to scrape problem","details":"timeout"}`)))
	assert.Equal(t, "API returned status 502", apiErrorMessage(502, []byte("<html>bad gateway</html>")))
}
