// Package imagefetch proxies remote images whose origin insists on a
// Referer from its own site.
package imagefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/use-agent/codaddy/models"
)

// Defaults match what the problem site expects from a regular browser.
const (
	DefaultReferer   = "https://codeforces.com"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout   = 30 * time.Second
	DefaultMaxBytes  = 10 << 20
)

// Fetcher downloads images with spoofed browser headers.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client    *http.Client
	referer   string
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithReferer overrides the Referer header sent with every request.
func WithReferer(referer string) Option {
	return func(f *Fetcher) {
		f.referer = referer
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTimeout sets the overall deadline of a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithMaxBytes caps the accepted body size. Larger images are rejected.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// New creates a Fetcher with a Chrome TLS fingerprint.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Transport: newChromeTransport(),
			Timeout:   DefaultTimeout,
		},
		referer:   DefaultReferer,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs one GET for rawURL and returns the body with the declared
// content type. Non-2xx statuses and transport failures are returned as a
// ScrapeError with code ErrCodeImageFetch. There is no retry.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*models.Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, models.NewScrapeError(
			models.ErrCodeInvalidInput,
			fmt.Sprintf("invalid image URL %q", rawURL),
			err,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeImageFetch, "failed to build image request", err)
	}
	req.Header.Set("Referer", f.referer)
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeImageFetch, "failed to fetch image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, models.NewScrapeError(
			models.ErrCodeImageFetch,
			"failed to fetch image: "+resp.Status,
			nil,
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeImageFetch, "failed to read image body", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, models.NewScrapeError(
			models.ErrCodeImageFetch,
			fmt.Sprintf("image exceeds %d bytes", f.maxBytes),
			nil,
		)
	}

	return &models.Image{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
