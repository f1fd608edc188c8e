package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeNotFound     = "PROBLEM_NOT_FOUND"
	ErrCodeTimeout      = "SCRAPE_TIMEOUT"
	ErrCodeNavigation   = "NAVIGATION_FAILED"
	ErrCodeBrowserCrash = "BROWSER_CRASH"
	ErrCodeImageFetch   = "IMAGE_FETCH_FAILED"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Path    string `json:"path,omitempty"`
}

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}
