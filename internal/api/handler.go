package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/internal/github"
	"github.com/reporadar/reporadar/internal/models"
)

// ReportService builds repository reports
type ReportService interface {
	Report(ctx context.Context, repoURL string) (*models.Report, error)
}

// AnalysisService submits repositories to the originality backend
type AnalysisService interface {
	Submit(ctx context.Context, repoURL string) (*models.AnalysisResult, error)
	Health(ctx context.Context) error
}

// SearchService finds repositories by name
type SearchService interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchPage, error)
	SearchDetailed(ctx context.Context, q models.SearchQuery) (*models.DetailedSearchPage, error)
}

// RateLimitSource reports the GitHub rate limit seen on the last response
type RateLimitSource interface {
	RateLimit() github.RateLimitInfo
}

type Handler struct {
	reports   ReportService
	analysis  AnalysisService
	search    SearchService
	rateLimit RateLimitSource
	logger    *logrus.Logger
}

// NewHandler wires the services into a Handler. rateLimit may be nil.
func NewHandler(reports ReportService, analysis AnalysisService, search SearchService, rateLimit RateLimitSource, logger *logrus.Logger) *Handler {
	return &Handler{
		reports:   reports,
		analysis:  analysis,
		search:    search,
		rateLimit: rateLimit,
		logger:    logger,
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// Ready godoc
// @Summary Readiness check
// @Description Reports whether the analysis backend answers its health check, and the GitHub rate limit once a response has been seen
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (h *Handler) Ready(c *gin.Context) {
	rateLimit := h.rateLimitStatus()
	if err := h.analysis.Health(c.Request.Context()); err != nil {
		h.logger.WithError(err).Warn("Analysis backend not ready")
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Backend: "unavailable", GitHubRateLimit: rateLimit})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Backend: "healthy", GitHubRateLimit: rateLimit})
}

func (h *Handler) rateLimitStatus() *RateLimitStatus {
	if h.rateLimit == nil {
		return nil
	}
	info := h.rateLimit.RateLimit()
	if info.Limit == 0 {
		return nil
	}
	return &RateLimitStatus{Limit: info.Limit, Remaining: info.Remaining, ResetTime: info.ResetTime}
}

// GetRepositoryReport godoc
// @Summary Get repository report
// @Description Fetch metadata, commits, contributors, languages and issues for a repository and compute the dashboard views
// @Tags repos
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos/{owner}/{repo} [get]
func (h *Handler) GetRepositoryReport(c *gin.Context) {
	repoURL := fmt.Sprintf("https://github.com/%s/%s", c.Param("owner"), c.Param("repo"))
	h.report(c, repoURL)
}

// CreateReport godoc
// @Summary Build a report from a repository URL
// @Tags repos
// @Accept json
// @Produce json
// @Param request body RepoURLRequest true "Repository URL"
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var req RepoURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, apperrors.NewInvalidURLError("Please enter a valid GitHub repository URL", err))
		return
	}
	h.report(c, req.URL)
}

func (h *Handler) report(c *gin.Context, repoURL string) {
	report, err := h.reports.Report(c.Request.Context(), repoURL)
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Analyze godoc
// @Summary Analyze repository originality
// @Description Forward the repository link to the analysis backend and return its verdict
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Repository link"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, apperrors.NewInvalidURLError("Please enter a valid GitHub repository URL", err))
		return
	}

	result, err := h.analysis.Submit(c.Request.Context(), req.GitHubLink)
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Dashboard godoc
// @Summary Full repository dashboard
// @Description Build the repository report and run the originality analysis concurrently. A failed analysis yields a null analysis and an analysis_error instead of failing the request.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Repository link"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard [post]
func (h *Handler) Dashboard(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, apperrors.NewInvalidURLError("Please enter a valid GitHub repository URL", err))
		return
	}

	var resp DashboardResponse
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		report, err := h.reports.Report(ctx, req.GitHubLink)
		if err != nil {
			return err
		}
		resp.Report = report
		return nil
	})

	g.Go(func() error {
		analysis, err := h.analysis.Submit(ctx, req.GitHubLink)
		if err != nil {
			h.logger.WithError(err).WithField("repo_url", req.GitHubLink).Warn("Analysis unavailable for dashboard")
			resp.AnalysisError = apperrors.Message(err)
			return nil
		}
		resp.Analysis = analysis
		resp.Rating = analysis.Rating()
		return nil
	})

	if err := g.Wait(); err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search godoc
// @Summary Search repositories by name
// @Tags search
// @Produce json
// @Param q query string true "Repository name"
// @Param language query string false "Language filter"
// @Param sort query string false "Sort order" Enums(stars, forks, updated) default(stars)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Results per page" default(6)
// @Param details query bool false "Include contributor, commit and language details" default(false)
// @Success 200 {object} models.SearchPage
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	page, err := getIntQueryParam(c, "page", 0)
	if err != nil {
		h.respondWithError(c, apperrors.NewValidationError("Invalid page parameter", err))
		return
	}
	perPage, err := getIntQueryParam(c, "per_page", 0)
	if err != nil {
		h.respondWithError(c, apperrors.NewValidationError("Invalid per_page parameter", err))
		return
	}
	details, err := strconv.ParseBool(c.DefaultQuery("details", "false"))
	if err != nil {
		h.respondWithError(c, apperrors.NewValidationError("Invalid details parameter", err))
		return
	}

	q := models.SearchQuery{
		Name:     c.Query("q"),
		Language: c.Query("language"),
		Sort:     models.SearchSort(c.Query("sort")),
		Page:     page,
		PerPage:  perPage,
	}

	if details {
		result, err := h.search.SearchDetailed(c.Request.Context(), q)
		if err != nil {
			h.respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.search.Search(c.Request.Context(), q)
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// statusFor maps an error kind to its HTTP status
func statusFor(err error) int {
	if apperrors.IsValidationError(err) {
		return http.StatusBadRequest
	}

	switch apperrors.TypeOf(err) {
	case apperrors.ErrRepoNotFound:
		return http.StatusNotFound
	case apperrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrBackend, apperrors.ErrNetwork, apperrors.ErrSchema, apperrors.ErrGitHub:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as an ErrorResponse. A request whose client
// has gone away gets no body.
func (h *Handler) respondWithError(c *gin.Context, err error) {
	if ctxErr := c.Request.Context().Err(); ctxErr != nil {
		h.logger.WithField("path", c.Request.URL.Path).Debug("Request cancelled by client")
		c.Abort()
		return
	}

	status := statusFor(err)
	entry := h.logger.WithError(err).WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}

	message := apperrors.Message(err)
	if apperrors.TypeOf(err) == apperrors.ErrInternal {
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: message,
		Type:  string(apperrors.TypeOf(err)),
	})
}

func getIntQueryParam(c *gin.Context, param string, defaultValue int) (int, error) {
	value := c.Query(param)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
