package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/codaddy/models"
)

const fallbackContentType = "application/octet-stream"

// ProxyImage returns a handler for GET /proxy-image?url=.
// The image bytes are written back verbatim with the upstream content type.
func ProxyImage(fetcher ImageFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		imageURL := c.Query("url")
		if imageURL == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Image URL is required"})
			return
		}

		img, err := fetcher.Fetch(c.Request.Context(), imageURL)
		if err != nil {
			slog.Warn("image proxy failed", "url", imageURL, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to fetch image",
				Details: err.Error(),
			})
			return
		}

		contentType := img.ContentType
		if contentType == "" {
			contentType = fallbackContentType
		}
		c.Data(http.StatusOK, contentType, img.Data)
	}
}
