// Package analysis talks to the originality analysis backend.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reporadar/reporadar/internal/config"
	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/internal/models"
	"github.com/reporadar/reporadar/pkg/utils"
)

const fallbackDetail = "Please check backend and try again."

// Client submits repository links to the analysis backend. Each submission
// is a single attempt.
type Client struct {
	client   *http.Client
	endpoint string
	logger   *logrus.Logger
}

func NewClient(cfg *config.BackendConfig, logger *logrus.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultBackendConfig()
	}
	return &Client{
		client:   &http.Client{Timeout: cfg.Timeout.ToDuration()},
		endpoint: cfg.URL,
		logger:   logger,
	}
}

type analyzeRequest struct {
	GitHubLink string `json:"github_link"`
}

type copiedBlockPayload struct {
	TargetBlock string   `json:"target_block"`
	SimilarTo   string   `json:"similar_to"`
	Distance    *float64 `json:"distance"`
}

type analysisPayload struct {
	OriginalityScore *float64             `json:"originality_score"`
	Verdict          string               `json:"verdict"`
	IdeaSummary      string               `json:"idea_summary"`
	CopiedBlocks     []copiedBlockPayload `json:"copied_blocks"`
	SimilarProjects  []string             `json:"similar_projects"`
	ReportURL        *string              `json:"report_url"`
}

func (p *analysisPayload) toResult() (*models.AnalysisResult, error) {
	if p.OriginalityScore == nil {
		return nil, fmt.Errorf("missing originality_score")
	}
	score := *p.OriginalityScore
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("originality_score %v outside [0, 100]", score)
	}

	result := &models.AnalysisResult{
		OriginalityScore: score,
		Verdict:          p.Verdict,
		IdeaSummary:      p.IdeaSummary,
		CopiedBlocks:     make([]models.CopiedBlock, 0, len(p.CopiedBlocks)),
		SimilarProjects:  p.SimilarProjects,
	}
	for i, b := range p.CopiedBlocks {
		if b.Distance == nil {
			return nil, fmt.Errorf("copied_blocks[%d]: missing distance", i)
		}
		if *b.Distance < 0 || *b.Distance > 1 {
			return nil, fmt.Errorf("copied_blocks[%d]: distance %v outside [0, 1]", i, *b.Distance)
		}
		result.CopiedBlocks = append(result.CopiedBlocks, models.CopiedBlock{
			TargetBlock: b.TargetBlock,
			SimilarTo:   b.SimilarTo,
			Distance:    *b.Distance,
		})
	}
	if result.SimilarProjects == nil {
		result.SimilarProjects = []string{}
	}
	if p.ReportURL != nil && *p.ReportURL != "" {
		u := *p.ReportURL
		result.ReportURL = &u
	}
	return result, nil
}

// Submit asks the backend to analyze repoURL. The link is trimmed and must
// mention github.com; otherwise INVALID_URL is returned without a request.
func (c *Client) Submit(ctx context.Context, repoURL string) (*models.AnalysisResult, error) {
	repoURL = strings.TrimSpace(repoURL)
	if !utils.LooksLikeGitHubLink(repoURL) {
		return nil, apperrors.NewInvalidURLError("Please enter a valid GitHub repository URL", nil)
	}

	body, err := json.Marshal(analyzeRequest{GitHubLink: repoURL})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode analysis request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create analysis request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger := c.logger.WithFields(logrus.Fields{"endpoint": c.endpoint, "repo_url": repoURL})
	logger.Info("Submitting repository for analysis")
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WithError(err).Warn("Analysis backend unreachable")
		return nil, apperrors.NewNetworkError("failed to reach analysis backend", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.NewNetworkError("failed to read analysis response", err)
	}

	logger = logger.WithFields(logrus.Fields{"status": resp.StatusCode, "duration": time.Since(start)})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Analysis backend returned an error")
		return nil, apperrors.NewBackendError(
			"Failed to analyze repository: "+errorDetail(respBody),
			fmt.Errorf("backend status %d", resp.StatusCode))
	}

	var payload analysisPayload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, apperrors.NewSchemaError("unexpected analysis response shape", err)
	}
	result, err := payload.toResult()
	if err != nil {
		return nil, apperrors.NewSchemaError("unexpected analysis response shape", err)
	}

	logger.WithField("originality_score", result.OriginalityScore).Info("Analysis completed")
	return result, nil
}

// errorDetail returns the "detail" string of an error body, or the generic
// fallback when there is none.
func errorDetail(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallbackDetail
	}
	if detail, ok := payload.Detail.(string); ok && detail != "" {
		return detail
	}
	return fallbackDetail
}

// Health checks GET /health on the backend host.
func (c *Client) Health(ctx context.Context) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return apperrors.NewInternalError("invalid backend URL", err)
	}
	healthURL := u.Scheme + "://" + u.Host + "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to create health request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return apperrors.NewNetworkError("failed to reach analysis backend", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewBackendError(fmt.Sprintf("analysis backend unhealthy (%d)", resp.StatusCode), nil)
	}
	return nil
}
