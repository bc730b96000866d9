package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/internal/models"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "reporadar"
)

// RateLimitInfo holds the rate limit headers of the most recent response
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

// GitHubClient is a read-only client for the GitHub REST API. Every call is a
// single attempt: failures are reported, never retried.
type GitHubClient struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger

	mu            sync.Mutex
	rateLimitInfo RateLimitInfo
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*GitHubClient)

// WithBaseURL points the client at another API root, e.g. a GitHub Enterprise
// host or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *GitHubClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *GitHubClient) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// NewGitHubClient creates a client. An empty token yields an unauthenticated
// client; otherwise requests carry "Authorization: Bearer <token>".
func NewGitHubClient(token string, logger *logrus.Logger, opts ...ClientOption) *GitHubClient {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = 30 * time.Second

	client := &GitHubClient{
		client:  httpClient,
		baseURL: defaultBaseURL,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the rate limit state seen on the last response
func (c *GitHubClient) RateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimitInfo
}

func (c *GitHubClient) updateRateLimitInfo(header http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit := header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
	}
	if reset := header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}
}

type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// get performs a single GET against the API. Transport failures become
// NETWORK_ERROR; a cancelled context is returned as is.
func (c *GitHubClient) get(ctx context.Context, path string, query url.Values) (*response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	logger := c.logger.WithField("url", endpoint)
	logger.Debug("Requesting GitHub API")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.NewNetworkError("failed to reach GitHub API", err)
	}
	defer resp.Body.Close()

	c.updateRateLimitInfo(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.NewNetworkError("failed to read GitHub API response", err)
	}

	logger.WithFields(logrus.Fields{
		"status":               resp.StatusCode,
		"rate_limit_remaining": resp.Header.Get("X-RateLimit-Remaining"),
	}).Debug("GitHub API responded")

	return &response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

type validator interface {
	validate() error
}

// decode unmarshals body into v and validates it. Any mismatch with the
// expected shape is a SCHEMA_ERROR.
func decode(endpoint string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.NewSchemaError(fmt.Sprintf("unexpected response shape from %s", endpoint), err)
	}
	if val, ok := v.(validator); ok {
		if err := val.validate(); err != nil {
			return apperrors.NewSchemaError(fmt.Sprintf("unexpected response shape from %s", endpoint), err)
		}
	}
	return nil
}

// decodeList decodes a JSON array and validates each element.
func decodeList[T any, PT interface {
	*T
	validator
}](endpoint string, body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperrors.NewSchemaError(fmt.Sprintf("unexpected response shape from %s", endpoint), err)
	}
	for i := range items {
		if err := PT(&items[i]).validate(); err != nil {
			return nil, apperrors.NewSchemaError(fmt.Sprintf("unexpected response shape from %s", endpoint), err)
		}
	}
	return items, nil
}

// getList fetches a collection endpoint. 204 No Content, which GitHub
// returns for the contributors of an empty repository, is an empty list.
func (c *GitHubClient) getList(ctx context.Context, endpoint, path string, query url.Values) (*response, error) {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		if isRateLimited(resp) {
			return nil, rateLimitError(resp)
		}
		return nil, NewGitHubError(resp.StatusCode, endpoint, errorMessage(resp))
	}
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		resp.Body = []byte("[]")
	}
	return resp, nil
}

func validateNames(owner, name string) error {
	if owner == "" {
		return apperrors.NewInvalidURLError("repository owner cannot be empty", nil)
	}
	if name == "" {
		return apperrors.NewInvalidURLError("repository name cannot be empty", nil)
	}
	return nil
}

func repoPath(owner, name string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name)
}

func perPage(n int) url.Values {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(n))
	return query
}

// GetRepository gets repository metadata. A non-2xx answer is RATE_LIMITED
// when the rate limit is exhausted and REPO_NOT_FOUND otherwise.
func (c *GitHubClient) GetRepository(ctx context.Context, owner, name string) (*models.RepositorySummary, error) {
	if err := validateNames(owner, name); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, repoPath(owner, name), nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		if isRateLimited(resp) {
			return nil, rateLimitError(resp)
		}
		return nil, apperrors.NewRepositoryNotFoundError(owner, name, resp.StatusCode)
	}

	var payload repositoryPayload
	if err := decode("repository", resp.Body, &payload); err != nil {
		return nil, err
	}
	return payload.toSummary(), nil
}

// ListCommits returns the first page of commits on the default branch
func (c *GitHubClient) ListCommits(ctx context.Context, owner, name string, limit int) ([]models.CommitRecord, error) {
	if err := validateNames(owner, name); err != nil {
		return nil, err
	}

	resp, err := c.getList(ctx, "commits", repoPath(owner, name)+"/commits", perPage(limit))
	if err != nil {
		return nil, err
	}
	payloads, err := decodeList[commitPayload]("commits", resp.Body)
	if err != nil {
		return nil, err
	}

	commits := make([]models.CommitRecord, 0, len(payloads))
	for i := range payloads {
		commits = append(commits, payloads[i].toRecord())
	}
	return commits, nil
}

// ListContributors returns the first page of contributors
func (c *GitHubClient) ListContributors(ctx context.Context, owner, name string, limit int) ([]models.ContributorRecord, error) {
	if err := validateNames(owner, name); err != nil {
		return nil, err
	}

	resp, err := c.getList(ctx, "contributors", repoPath(owner, name)+"/contributors", perPage(limit))
	if err != nil {
		return nil, err
	}
	payloads, err := decodeList[contributorPayload]("contributors", resp.Body)
	if err != nil {
		return nil, err
	}

	contributors := make([]models.ContributorRecord, 0, len(payloads))
	for _, p := range payloads {
		contributors = append(contributors, models.ContributorRecord{
			Login:         p.Login,
			Contributions: p.Contributions,
			AvatarURL:     p.AvatarURL,
			HTMLURL:       p.HTMLURL,
		})
	}
	return contributors, nil
}

// GetLanguages returns the language breakdown in bytes
func (c *GitHubClient) GetLanguages(ctx context.Context, owner, name string) (models.LanguageBreakdown, error) {
	if err := validateNames(owner, name); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, repoPath(owner, name)+"/languages", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		if isRateLimited(resp) {
			return nil, rateLimitError(resp)
		}
		return nil, NewGitHubError(resp.StatusCode, "languages", errorMessage(resp))
	}

	var languages map[string]int64
	if err := decode("languages", resp.Body, &languages); err != nil {
		return nil, err
	}
	breakdown := make(models.LanguageBreakdown, len(languages))
	for lang, bytes := range languages {
		if bytes < 0 {
			return nil, apperrors.NewSchemaError("unexpected response shape from languages",
				fmt.Errorf("negative byte count for %s", lang))
		}
		breakdown[lang] = bytes
	}
	return breakdown, nil
}

// ListIssues returns the first page of issues in any state. The endpoint also
// lists pull requests; they are kept and marked.
func (c *GitHubClient) ListIssues(ctx context.Context, owner, name string, limit int) ([]models.IssueRecord, error) {
	if err := validateNames(owner, name); err != nil {
		return nil, err
	}

	query := perPage(limit)
	query.Set("state", "all")
	resp, err := c.getList(ctx, "issues", repoPath(owner, name)+"/issues", query)
	if err != nil {
		return nil, err
	}
	payloads, err := decodeList[issuePayload]("issues", resp.Body)
	if err != nil {
		return nil, err
	}

	issues := make([]models.IssueRecord, 0, len(payloads))
	for _, p := range payloads {
		issues = append(issues, models.IssueRecord{
			Number:        p.Number,
			State:         models.IssueState(p.State),
			IsPullRequest: p.PullRequest != nil,
		})
	}
	return issues, nil
}

// CountCommits returns the number of commits on the default branch using a
// one-item page and the rel="last" link.
func (c *GitHubClient) CountCommits(ctx context.Context, owner, name string) (int, error) {
	return c.count(ctx, "commits", repoPath(owner, name)+"/commits")
}

// CountContributors returns the number of contributors the same way
func (c *GitHubClient) CountContributors(ctx context.Context, owner, name string) (int, error) {
	return c.count(ctx, "contributors", repoPath(owner, name)+"/contributors")
}

func (c *GitHubClient) count(ctx context.Context, endpoint, path string) (int, error) {
	resp, err := c.getList(ctx, endpoint, path, perPage(1))
	if err != nil {
		return 0, err
	}
	if last := lastPage(resp.Header.Get("Link")); last > 0 {
		return last, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return 0, apperrors.NewSchemaError(fmt.Sprintf("unexpected response shape from %s", endpoint), err)
	}
	return len(items), nil
}

// lastPage extracts the page number of the rel="last" entry of a Link header.
func lastPage(link string) int {
	for _, part := range strings.Split(link, ",") {
		segments := strings.Split(strings.TrimSpace(part), ";")
		if len(segments) < 2 {
			continue
		}
		isLast := false
		for _, attr := range segments[1:] {
			if strings.TrimSpace(attr) == `rel="last"` {
				isLast = true
			}
		}
		if !isLast {
			continue
		}
		target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
		u, err := url.Parse(target)
		if err != nil {
			return 0
		}
		page, err := strconv.Atoi(u.Query().Get("page"))
		if err != nil {
			return 0
		}
		return page
	}
	return 0
}

// SearchRepositories runs GET /search/repositories for repositories whose
// name matches q.Name. The query must already be normalized.
func (c *GitHubClient) SearchRepositories(ctx context.Context, q models.SearchQuery) (int, []models.SearchResultItem, error) {
	terms := q.Name + " in:name"
	if q.Language != "" {
		terms += " language:" + q.Language
	}
	query := url.Values{}
	query.Set("q", terms)
	query.Set("sort", string(q.Sort))
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("per_page", strconv.Itoa(q.PerPage))

	resp, err := c.get(ctx, "/search/repositories", query)
	if err != nil {
		return 0, nil, err
	}
	if !resp.ok() {
		if isRateLimited(resp) {
			return 0, nil, rateLimitError(resp)
		}
		return 0, nil, NewGitHubError(resp.StatusCode, "search", errorMessage(resp))
	}

	var payload searchPayload
	if err := decode("search", resp.Body, &payload); err != nil {
		return 0, nil, err
	}

	items := make([]models.SearchResultItem, 0, len(payload.Items))
	for i := range payload.Items {
		items = append(items, payload.Items[i].toSearchItem())
	}
	return payload.TotalCount, items, nil
}
