package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/use-agent/codaddy/api/handler"
	"github.com/use-agent/codaddy/api/middleware"
	"github.com/use-agent/codaddy/config"
	"github.com/use-agent/codaddy/extractor"
)

// Deps bundles what the handlers need.
type Deps struct {
	Scraper interface {
		handler.ProblemScraper
		handler.StatsProvider
	}
	Images handler.ImageFetcher
}

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → SecurityHeaders
//
// CORS is applied outside the engine by WithCORS so preflight requests are
// answered before routing.
func NewRouter(deps Deps, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeaders())

	r.GET("/", handler.Health(deps.Scraper, startTime))

	r.GET("/api/problem/:contestId/:problemId", handler.Problem(
		deps.Scraper,
		extractor.NewMarkdownConverter(),
		cfg.Scraper.SourceBaseURL,
	))

	r.GET("/proxy-image", handler.ProxyImage(deps.Images))

	r.NoRoute(handler.NotFound)

	return r
}

// WithCORS wraps h with the origin allow-list. Requests without an Origin
// header are not CORS requests and pass through untouched.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           600,
	}).Handler(h)
}
