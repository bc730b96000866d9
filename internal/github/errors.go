package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/reporadar/reporadar/internal/errors"
)

// GitHubError carries a non-2xx GitHub API response
type GitHubError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *GitHubError) Error() string {
	return fmt.Sprintf("GitHub API error (status %d) on %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// NewGitHubError wraps a non-2xx response as a GITHUB_ERROR AppError
func NewGitHubError(statusCode int, endpoint, message string) error {
	return apperrors.New(apperrors.ErrGitHub,
		fmt.Sprintf("GitHub API error (%d)", statusCode),
		&GitHubError{StatusCode: statusCode, Endpoint: endpoint, Message: message})
}

// isRateLimited reports whether a non-2xx response was caused by an
// exhausted rate limit.
func isRateLimited(resp *response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.Header.Get("X-RateLimit-Remaining") == "0"
}

func rateLimitError(resp *response) error {
	limit, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Limit"))
	remaining, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	var reset time.Time
	if ts, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		reset = time.Unix(ts, 0)
	}
	return apperrors.NewRateLimitError(reset, limit, remaining)
}

// errorMessage extracts the "message" field GitHub puts in error bodies.
func errorMessage(resp *response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(resp.StatusCode)
}
