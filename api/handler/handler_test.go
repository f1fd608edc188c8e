package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/codaddy/api/handler"
	"github.com/use-agent/codaddy/extractor"
	"github.com/use-agent/codaddy/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeScraper struct {
	problem *models.Problem
	err     error

	gotContest string
	gotProblem string
}

func (f *fakeScraper) ScrapeProblem(_ context.Context, contestID, problemID string) (*models.Problem, error) {
	f.gotContest, f.gotProblem = contestID, problemID
	return f.problem, f.err
}

func (f *fakeScraper) Stats() models.SessionStats {
	return models.SessionStats{MaxSessions: 8, ActiveSessions: 1, TotalSessions: 42}
}

type fakeFetcher struct {
	img *models.Image
	err error
}

func (f *fakeFetcher) Fetch(context.Context, string) (*models.Image, error) {
	return f.img, f.err
}

func serve(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func problemRouter(sc handler.ProblemScraper) *gin.Engine {
	r := gin.New()
	r.GET("/api/problem/:contestId/:problemId",
		handler.Problem(sc, extractor.NewMarkdownConverter(), "https://codeforces.com"))
	return r
}

func TestProblem(t *testing.T) {
	t.Parallel()

	title := "A. Watermelon"
	record := &models.Problem{
		Title:            &title,
		ProblemStatement: "<p>Split <b>w</b> kilos.</p>",
		TimeLimit:        "Time limit per test: 1 second",
		MemoryLimit:      "Memory limit per test: 64 megabytes",
		InputExamples:    []string{"8"},
		OutputExamples:   []string{"YES"},
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		sc := &fakeScraper{problem: record}
		w := serve(t, problemRouter(sc), "/api/problem/4/A")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", sc.gotContest)
		assert.Equal(t, "A", sc.gotProblem)

		var got models.Problem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Title)
		assert.Equal(t, title, *got.Title)
		assert.Equal(t, record.ProblemStatement, got.ProblemStatement)
		assert.Equal(t, []string{"8"}, got.InputExamples)
	})

	t.Run("markdown format", func(t *testing.T) {
		t.Parallel()
		w := serve(t, problemRouter(&fakeScraper{problem: record}), "/api/problem/4/A?format=markdown")

		require.Equal(t, http.StatusOK, w.Code)
		var got models.Problem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Contains(t, got.ProblemStatement, "**w**")
		assert.NotContains(t, got.ProblemStatement, "<p>")
		assert.Equal(t, record.TimeLimit, got.TimeLimit)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		sc := &fakeScraper{err: models.NewScrapeError(models.ErrCodeNotFound, "no statement", nil)}
		w := serve(t, problemRouter(sc), "/api/problem/9999/Z")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Problem not found"}`, w.Body.String())
	})

	t.Run("scrape failure", func(t *testing.T) {
		t.Parallel()
		sc := &fakeScraper{err: models.NewScrapeError(models.ErrCodeTimeout, "page did not settle", context.DeadlineExceeded)}
		w := serve(t, problemRouter(sc), "/api/problem/4/A")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to scrape problem", body.Error)
		assert.Contains(t, body.Details, models.ErrCodeTimeout)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		w := serve(t, problemRouter(&fakeScraper{err: errors.New("boom")}), "/api/problem/4/A")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to scrape problem","details":"boom"}`, w.Body.String())
	})
}

func TestProxyImage(t *testing.T) {
	t.Parallel()

	imageRouter := func(f handler.ImageFetcher) *gin.Engine {
		r := gin.New()
		r.GET("/proxy-image", handler.ProxyImage(f))
		return r
	}

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()
		w := serve(t, imageRouter(&fakeFetcher{}), "/proxy-image")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Image URL is required"}`, w.Body.String())
	})

	t.Run("bytes pass through", func(t *testing.T) {
		t.Parallel()
		png := []byte{0x89, 'P', 'N', 'G'}
		f := &fakeFetcher{img: &models.Image{Data: png, ContentType: "image/png"}}
		w := serve(t, imageRouter(f), "/proxy-image?url=https%3A%2F%2Fespresso.codeforces.com%2Fa.png")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, png, w.Body.Bytes())
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{img: &models.Image{Data: []byte("x")}}
		w := serve(t, imageRouter(f), "/proxy-image?url=https://example.com/x")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	})

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{err: models.NewScrapeError(models.ErrCodeImageFetch, "failed to fetch image: 404 Not Found", nil)}
		w := serve(t, imageRouter(f), "/proxy-image?url=https://example.com/missing.png")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to fetch image", body.Error)
		assert.Contains(t, body.Details, "404 Not Found")
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/", handler.Health(&fakeScraper{}, time.Now().Add(-time.Minute)))
	w := serve(t, r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, handler.Version, body.Version)
	assert.Equal(t, int64(42), body.Sessions.TotalSessions)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.NoRoute(handler.NotFound)
	w := serve(t, r, "/api/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found","path":"/api/nope"}`, w.Body.String())
}
