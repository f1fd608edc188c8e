package scraper

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/use-agent/codaddy/config"
	"github.com/use-agent/codaddy/models"
	"golang.org/x/sync/semaphore"
)

// Scraper owns the shared browser process and hands out one isolated
// session per request. It is safe for concurrent use.
type Scraper struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	sessions   *semaphore.Weighted // nil when unlimited
	browserCfg config.BrowserConfig
	scraperCfg config.ScraperConfig
	active     atomic.Int32
	total      atomic.Int64
}

// NewScraper launches a headless browser. Sessions are created lazily,
// one per request, and never reused.
func NewScraper(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig) (*Scraper, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox).
		Leakless(true)

	if browserCfg.BrowserBin != "" {
		l = l.Bin(browserCfg.BrowserBin)
	}
	if browserCfg.DefaultProxy != "" {
		l = l.Proxy(browserCfg.DefaultProxy)
	}

	// ── Stealth and stability flags ─────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-features"), "AudioServiceOutOfProcess,TranslateUI")
	l.Set(flags.Flag("disable-renderer-backgrounding"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-backgrounding-occluded-windows"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	s := &Scraper{
		browser:    browser,
		launcher:   l,
		browserCfg: browserCfg,
		scraperCfg: scraperCfg,
	}
	if browserCfg.MaxSessions > 0 {
		s.sessions = semaphore.NewWeighted(int64(browserCfg.MaxSessions))
	}
	slog.Info("session limiter configured", "maxSessions", browserCfg.MaxSessions)

	return s, nil
}

// Stats returns a snapshot of session usage.
func (s *Scraper) Stats() models.SessionStats {
	return models.SessionStats{
		MaxSessions:    s.browserCfg.MaxSessions,
		ActiveSessions: int(s.active.Load()),
		TotalSessions:  s.total.Load(),
	}
}

// Close kills the browser process.
// Call this on graceful shutdown to prevent zombie Chrome processes.
func (s *Scraper) Close() {
	slog.Info("scraper shutting down: closing browser")
	if err := s.browser.Close(); err != nil {
		slog.Warn("browser close failed", "error", err)
	}
	s.launcher.Kill()
	slog.Info("scraper shutdown complete")
}
