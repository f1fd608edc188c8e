package scraper

import (
	"context"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/use-agent/codaddy/models"
)

// withSession runs fn inside one isolated browser session: an incognito
// browser context holding a single tab. The tab and the context are
// released on every exit path, including panics and expired deadlines.
//
// When a session cap is configured, withSession first waits for a free
// slot; giving up because ctx ended is reported like any other timeout.
func (s *Scraper) withSession(ctx context.Context, fn func(page *rod.Page) error) error {
	if s.sessions != nil {
		if err := s.sessions.Acquire(ctx, 1); err != nil {
			return categorizeError(err, "no browser session available")
		}
		defer s.sessions.Release(1)
	}

	s.active.Add(1)
	defer s.active.Add(-1)
	s.total.Add(1)

	incognito, err := s.browser.Incognito()
	if err != nil {
		return models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to open browser context",
			err,
		)
	}
	defer func() {
		if closeErr := incognito.Close(); closeErr != nil {
			slog.Warn("session cleanup: failed to dispose browser context",
				"error", closeErr,
			)
		}
	}()

	// The page reference kept here carries no request context, so Close
	// still works after the request deadline has passed.
	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to open browser page",
			err,
		)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			slog.Debug("session cleanup: failed to close page", "error", closeErr)
		}
	}()

	return fn(page)
}
