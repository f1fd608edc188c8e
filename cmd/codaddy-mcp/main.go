package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/codaddy/models"
)

func main() {
	apiURL := os.Getenv("CODADDY_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:5000"
	}
	apiURL = strings.TrimRight(apiURL, "/")

	s := server.NewMCPServer(
		"codaddy",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	getProblemTool := mcp.NewTool("get_problem",
		mcp.WithDescription("Fetch a Codeforces problem by contest ID and problem index and return its statement, limits, specifications, sample tests and note."),
		mcp.WithString("contest_id",
			mcp.Required(),
			mcp.Description("Contest ID, e.g. '4'"),
		),
		mcp.WithString("problem_id",
			mcp.Required(),
			mcp.Description("Problem index within the contest, e.g. 'A' or 'C1'"),
		),
		mcp.WithString("format",
			mcp.Description("Statement format: 'markdown' (default) or 'html'"),
			mcp.Enum("markdown", "html"),
		),
	)
	s.AddTool(getProblemTool, handleGetProblem(apiURL))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// problemPath builds the API path for one problem.
func problemPath(contestID, problemID, format string) string {
	path := "/api/problem/" + url.PathEscape(contestID) + "/" + url.PathEscape(problemID)
	if format == "markdown" {
		path += "?format=markdown"
	}
	return path
}

func handleGetProblem(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 90 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contestID, err := request.RequireString("contest_id")
		if err != nil {
			return mcp.NewToolResultError("contest_id is required"), nil
		}
		problemID, err := request.RequireString("problem_id")
		if err != nil {
			return mcp.NewToolResultError("problem_id is required"), nil
		}
		format := request.GetString("format", "markdown")

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+problemPath(contestID, problemID, format), nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		if resp.StatusCode != http.StatusOK {
			return mcp.NewToolResultError(apiErrorMessage(resp.StatusCode, respBody)), nil
		}

		var problem models.Problem
		if err := json.Unmarshal(respBody, &problem); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		return mcp.NewToolResultText(formatProblem(&problem)), nil
	}
}

// apiErrorMessage renders an API error body, falling back to the status.
func apiErrorMessage(status int, body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return fmt.Sprintf("API returned status %d", status)
	}
	if errResp.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", status, errResp.Error, errResp.Details)
	}
	return fmt.Sprintf("[%d] %s", status, errResp.Error)
}

// formatProblem lays a problem out as a plain-text document.
// Empty sections are omitted.
func formatProblem(p *models.Problem) string {
	var b strings.Builder

	if p.Title != nil {
		fmt.Fprintf(&b, "# %s\n\n", *p.Title)
	}
	for _, limit := range []string{p.TimeLimit, p.MemoryLimit} {
		if limit != "" {
			b.WriteString(limit + "\n")
		}
	}

	section := func(heading, body string) {
		if body == "" {
			return
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", heading, body)
	}
	section("Statement", p.ProblemStatement)
	section("Input", p.InputSpecification)
	section("Output", p.OutputSpecification)

	for i, in := range p.InputExamples {
		fmt.Fprintf(&b, "\n## Example %d\n\nInput:\n```\n%s\n```\n", i+1, in)
		if i < len(p.OutputExamples) {
			fmt.Fprintf(&b, "\nOutput:\n```\n%s\n```\n", p.OutputExamples[i])
		}
	}
	section("Note", p.Note)

	return strings.TrimSpace(b.String())
}
