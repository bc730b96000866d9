package api

import (
	"time"

	_ "github.com/reporadar/reporadar/docs"
	"github.com/reporadar/reporadar/internal/models"
)

// @title RepoRadar API
// @version 1.0
// @description API for GitHub repository dashboards and originality analysis
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1

// ErrorResponse represents an API error
// @Description Error response from the API
// @swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"Repository not found or API error (404)"`
	// Error kind
	Type string `json:"type" example:"REPO_NOT_FOUND" enums:"INVALID_URL,INVALID_INPUT,REPO_NOT_FOUND,RATE_LIMITED,BACKEND_ERROR,NETWORK_ERROR,SCHEMA_ERROR,GITHUB_ERROR,INTERNAL"`
}

// RepoURLRequest names a repository by URL
// @Description Repository to build a report for
// @swagger:model RepoURLRequest
type RepoURLRequest struct {
	URL string `json:"url" binding:"required" example:"https://github.com/octocat/Hello-World"`
}

// AnalyzeRequest is the body accepted by the analysis endpoints. The field
// name matches the one the analysis backend expects.
// @Description Repository to analyze for originality
// @swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	GitHubLink string `json:"github_link" binding:"required" example:"https://github.com/octocat/Hello-World"`
}

// DashboardResponse combines the repository report with the originality
// analysis. Analysis is null when the backend failed; AnalysisError says why.
// @Description Full dashboard for one repository
// @swagger:model DashboardResponse
type DashboardResponse struct {
	Report        *models.Report         `json:"report"`
	Analysis      *models.AnalysisResult `json:"analysis"`
	Rating        string                 `json:"rating,omitempty" example:"Highly Original"`
	AnalysisError string                 `json:"analysis_error,omitempty" example:"Failed to analyze repository: Please check backend and try again."`
}

// HealthResponse reports service health
// @swagger:model HealthResponse
type HealthResponse struct {
	Status          string           `json:"status" example:"healthy"`
	Backend         string           `json:"backend,omitempty" example:"healthy"`
	GitHubRateLimit *RateLimitStatus `json:"github_rate_limit,omitempty"`
}

// RateLimitStatus is the GitHub rate limit seen on the last API response
type RateLimitStatus struct {
	Limit     int       `json:"limit" example:"5000"`
	Remaining int       `json:"remaining" example:"4987"`
	ResetTime time.Time `json:"reset_time"`
}
