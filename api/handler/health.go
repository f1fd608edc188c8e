package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/codaddy/models"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Health returns a handler for GET /.
func Health(stats StatsProvider, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Message:   "Codeforces scraper API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Sessions:  stats.Stats(),
			Version:   Version,
		})
	}
}

// NotFound answers unknown routes with a JSON body naming the path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: "Route not found",
		Path:  c.Request.URL.Path,
	})
}
