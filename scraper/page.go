package scraper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/use-agent/codaddy/models"
	"github.com/ysmood/gson"
)

const (
	// networkIdleWindow is how long the page must have no in-flight
	// requests before it counts as settled.
	networkIdleWindow = 500 * time.Millisecond

	acceptLanguage = "en-US,en;q=0.9"
)

// Render loads targetURL in a fresh isolated session and returns the DOM
// serialized after the page has settled.
//
// Order of operations matters:
//   - Stealth, user agent, headers and the hijack router are installed
//     before navigation; they only affect navigations that follow them.
//   - The network idle waiter is armed BEFORE Navigate. Arming it after
//     would miss in-flight requests and report a false idle.
//   - WaitRequestIdle and HijackRequests both use the Fetch domain, so
//     when resources are blocked the wait falls back to WaitDOMStable.
func (s *Scraper) Render(ctx context.Context, targetURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.NavigationTimeout)
	defer cancel()

	var rawHTML string
	err := s.withSession(ctx, func(page *rod.Page) error {
		if s.browserCfg.Stealth {
			if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
				slog.Warn("stealth injection failed, proceeding without stealth",
					"error", evalErr,
				)
			}
		}

		if s.scraperCfg.UserAgent != "" {
			if uaErr := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
				UserAgent:      s.scraperCfg.UserAgent,
				AcceptLanguage: "en-US,en",
			}); uaErr != nil {
				slog.Warn("user agent override failed", "error", uaErr)
			}
		}

		_ = proto.NetworkSetExtraHTTPHeaders{
			Headers: toHeadersMap(map[string]string{"Accept-Language": acceptLanguage}),
		}.Call(page)

		router := setupHijack(page, s.scraperCfg.BlockedResourceTypes)
		if router != nil {
			defer func() { _ = router.Stop() }()
		}

		p := page.Context(ctx)

		var waitIdle func()
		if router == nil {
			waitIdle = p.WaitRequestIdle(networkIdleWindow, nil, nil, nil)
		}

		if err := p.Navigate(targetURL); err != nil {
			return categorizeError(err, "navigation to problem page failed")
		}
		if err := p.WaitLoad(); err != nil {
			return categorizeError(err, "problem page did not finish loading")
		}

		if waitIdle != nil {
			waitIdle()
		} else if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
			slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
				"error", stableErr,
			)
		}

		// waitIdle returns silently when ctx ends; surface that as a timeout.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return categorizeError(ctxErr, "problem page did not settle in time")
		}

		html, err := p.HTML()
		if err != nil {
			return categorizeError(err, "failed to extract page HTML")
		}
		rawHTML = html
		return nil
	})
	if err != nil {
		return "", err
	}
	return rawHTML, nil
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}

// categorizeError maps a low-level error to a ScrapeError with the right code.
// Errors that already carry a code pass through unchanged.
func categorizeError(err error, msg string) *models.ScrapeError {
	var se *models.ScrapeError
	switch {
	case errors.As(err, &se):
		return se
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeTimeout, "request canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}
