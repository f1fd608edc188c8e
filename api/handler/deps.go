package handler

import (
	"context"

	"github.com/use-agent/codaddy/models"
)

// ProblemScraper renders and extracts one problem page.
type ProblemScraper interface {
	ScrapeProblem(ctx context.Context, contestID, problemID string) (*models.Problem, error)
}

// ImageFetcher downloads one image on behalf of the client.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*models.Image, error)
}

// StatsProvider reports browser session usage.
type StatsProvider interface {
	Stats() models.SessionStats
}
