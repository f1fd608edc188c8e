package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Browser BrowserConfig
	Scraper ScraperConfig
	Image   ImageConfig
	Log     LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 5000
	Mode string // "debug", "release", "test"; default: "release"

	// AllowedOrigins is the CORS allow-list. Requests without an Origin
	// header are always accepted.
	AllowedOrigins []string

	// ShutdownTimeout bounds the drain of in-flight requests on SIGTERM.
	ShutdownTimeout time.Duration // default: 5s
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: true

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// DefaultProxy is the proxy URL for all browser traffic.
	DefaultProxy string

	// MaxSessions caps concurrent browser sessions; 0 means unlimited.
	MaxSessions int // default: 8

	// Stealth injects anti-bot-detection evasions into every session.
	Stealth bool // default: true
}

// ScraperConfig controls problem page scraping.
type ScraperConfig struct {
	// SourceBaseURL is the problem site origin.
	SourceBaseURL string // default: "https://codeforces.com"

	// NavigationTimeout bounds navigation, rendering and extraction.
	NavigationTimeout time.Duration // default: 60s

	// UserAgent is the browser identity presented to the site.
	UserAgent string

	// BlockedResourceTypes lists resource types to block, e.g. "Image".
	// When empty the scraper waits for network idle; otherwise it waits
	// for the DOM to settle (request hijacking and idle tracking conflict).
	BlockedResourceTypes []string // default: none
}

// ImageConfig controls the image proxy.
type ImageConfig struct {
	Referer   string        // default: "https://codeforces.com"
	UserAgent string        // default: Chrome 91 UA
	Timeout   time.Duration // default: 30s
	MaxBytes  int64         // default: 10 MiB
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// DefaultUserAgent is presented by both the browser and the image proxy.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultAllowedOrigins are the frontends permitted by CORS.
var DefaultAllowedOrigins = []string{
	"https://codaddy.netlify.app",
	"http://localhost:3000",
	"https://codaddy.vercel.app",
	"http://localhost:5173",
	"http://localhost:3001",
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            envOr("CODADDY_HOST", "0.0.0.0"),
			Port:            envIntOr("CODADDY_PORT", envIntOr("PORT", 5000)),
			Mode:            envOr("CODADDY_MODE", "release"),
			AllowedOrigins:  envSliceOr("CODADDY_ALLOWED_ORIGINS", DefaultAllowedOrigins),
			ShutdownTimeout: envDurationOr("CODADDY_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Browser: BrowserConfig{
			Headless:     envBoolOr("CODADDY_HEADLESS", true),
			NoSandbox:    envBoolOr("CODADDY_NO_SANDBOX", true),
			BrowserBin:   os.Getenv("CODADDY_BROWSER_BIN"),
			DefaultProxy: os.Getenv("CODADDY_PROXY"),
			MaxSessions:  envIntOr("CODADDY_MAX_SESSIONS", 8),
			Stealth:      envBoolOr("CODADDY_STEALTH", true),
		},
		Scraper: ScraperConfig{
			SourceBaseURL:        strings.TrimRight(envOr("CODADDY_SOURCE_URL", "https://codeforces.com"), "/"),
			NavigationTimeout:    envDurationOr("CODADDY_NAV_TIMEOUT", 60*time.Second),
			UserAgent:            envOr("CODADDY_USER_AGENT", DefaultUserAgent),
			BlockedResourceTypes: envSliceOr("CODADDY_BLOCKED_RESOURCES", nil),
		},
		Image: ImageConfig{
			Referer:   envOr("CODADDY_IMAGE_REFERER", "https://codeforces.com"),
			UserAgent: envOr("CODADDY_IMAGE_USER_AGENT", DefaultUserAgent),
			Timeout:   envDurationOr("CODADDY_IMAGE_TIMEOUT", 30*time.Second),
			MaxBytes:  int64(envIntOr("CODADDY_IMAGE_MAX_BYTES", 10<<20)),
		},
		Log: LogConfig{
			Level:  envOr("CODADDY_LOG_LEVEL", "info"),
			Format: envOr("CODADDY_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
