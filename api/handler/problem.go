package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/gin-gonic/gin"
	"github.com/use-agent/codaddy/extractor"
	"github.com/use-agent/codaddy/models"
)

// FormatMarkdown is the ?format= value that converts markup fields to Markdown.
const FormatMarkdown = "markdown"

// Problem returns a handler for GET /api/problem/:contestId/:problemId.
//
// A missing problem statement is a 404; every other failure is a 500 with
// the underlying error in details. With ?format=markdown the statement,
// specifications and note are converted, resolving links against domain.
func Problem(sc ProblemScraper, conv *converter.Converter, domain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contestID := c.Param("contestId")
		problemID := c.Param("problemId")

		problem, err := sc.ScrapeProblem(c.Request.Context(), contestID, problemID)
		if err != nil {
			var se *models.ScrapeError
			if errors.As(err, &se) && se.Code == models.ErrCodeNotFound {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Problem not found"})
				return
			}
			slog.Error("problem scrape failed",
				"contestId", contestID,
				"problemId", problemID,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to scrape problem",
				Details: err.Error(),
			})
			return
		}

		if c.Query("format") == FormatMarkdown {
			problem, err = extractor.ToMarkdown(conv, problem, domain)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:   "Failed to scrape problem",
					Details: err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, problem)
	}
}
