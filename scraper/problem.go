package scraper

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/use-agent/codaddy/extractor"
	"github.com/use-agent/codaddy/models"
)

// ProblemURL returns the problemset page address for one problem.
func ProblemURL(baseURL, contestID, problemID string) string {
	return baseURL + "/problemset/problem/" +
		url.PathEscape(contestID) + "/" + url.PathEscape(problemID)
}

// ScrapeProblem renders the problem page and extracts its record.
// A page without a problem statement yields ErrCodeNotFound.
func (s *Scraper) ScrapeProblem(ctx context.Context, contestID, problemID string) (*models.Problem, error) {
	if contestID == "" || problemID == "" {
		return nil, models.NewScrapeError(
			models.ErrCodeInvalidInput,
			"contest and problem identifiers are required",
			nil,
		)
	}

	target := ProblemURL(s.scraperCfg.SourceBaseURL, contestID, problemID)
	start := time.Now()

	rawHTML, err := s.Render(ctx, target)
	if err != nil {
		slog.Warn("problem render failed", "url", target, "error", err)
		return nil, err
	}

	problem, err := parseProblem(target, rawHTML)
	if err != nil {
		return nil, err
	}

	slog.Info("problem scraped",
		"url", target,
		"samples", len(problem.InputExamples),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return problem, nil
}

// parseProblem runs the extractor and reports data-quality issues.
func parseProblem(target, rawHTML string) (*models.Problem, error) {
	problem, err := extractor.ExtractHTML(rawHTML)
	if err != nil {
		return nil, err
	}

	if len(problem.InputExamples) != len(problem.OutputExamples) {
		slog.Warn("sample count mismatch",
			"url", target,
			"inputs", len(problem.InputExamples),
			"outputs", len(problem.OutputExamples),
		)
	}
	return problem, nil
}
