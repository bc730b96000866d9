package github

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/internal/config"
	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/internal/models"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) GetRepository(ctx context.Context, owner, name string) (*models.RepositorySummary, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepositorySummary), args.Error(1)
}

func (m *mockFetcher) ListCommits(ctx context.Context, owner, name string, limit int) ([]models.CommitRecord, error) {
	args := m.Called(ctx, owner, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommitRecord), args.Error(1)
}

func (m *mockFetcher) ListContributors(ctx context.Context, owner, name string, limit int) ([]models.ContributorRecord, error) {
	args := m.Called(ctx, owner, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContributorRecord), args.Error(1)
}

func (m *mockFetcher) GetLanguages(ctx context.Context, owner, name string) (models.LanguageBreakdown, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.LanguageBreakdown), args.Error(1)
}

func (m *mockFetcher) ListIssues(ctx context.Context, owner, name string, limit int) ([]models.IssueRecord, error) {
	args := m.Called(ctx, owner, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IssueRecord), args.Error(1)
}

func TestAggregator_Fetch(t *testing.T) {
	ctx := context.Background()
	repo := &models.RepositorySummary{OwnerLogin: "octocat", Name: "hello", FullName: "octocat/hello"}

	t.Run("all collections", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("GetRepository", mock.Anything, "octocat", "hello").Return(repo, nil)
		fetcher.On("ListCommits", mock.Anything, "octocat", "hello", 100).
			Return([]models.CommitRecord{{SHA: "a", AuthorName: "alice"}}, nil)
		fetcher.On("ListContributors", mock.Anything, "octocat", "hello", 100).
			Return([]models.ContributorRecord{{Login: "alice", Contributions: 3}}, nil)
		fetcher.On("GetLanguages", mock.Anything, "octocat", "hello").
			Return(models.LanguageBreakdown{"Go": 10}, nil)
		fetcher.On("ListIssues", mock.Anything, "octocat", "hello", 100).
			Return([]models.IssueRecord{{Number: 1, State: models.IssueOpen}}, nil)

		result, err := NewAggregator(fetcher, nil, testLogger()).Fetch(ctx, "octocat", "hello")
		require.NoError(t, err)
		assert.Equal(t, repo, result.Repository)
		assert.Len(t, result.Commits, 1)
		assert.Len(t, result.Contributors, 1)
		assert.Len(t, result.Languages, 1)
		assert.Len(t, result.Issues, 1)
		fetcher.AssertExpectations(t)
	})

	t.Run("metadata failure stops everything", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("GetRepository", mock.Anything, "octocat", "missing").
			Return(nil, apperrors.NewRepositoryNotFoundError("octocat", "missing", http.StatusNotFound))

		result, err := NewAggregator(fetcher, nil, testLogger()).Fetch(ctx, "octocat", "missing")
		assert.Nil(t, result)
		assert.True(t, apperrors.IsRepoNotFound(err))
		fetcher.AssertNotCalled(t, "ListCommits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		fetcher.AssertNotCalled(t, "ListContributors", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		fetcher.AssertNotCalled(t, "GetLanguages", mock.Anything, mock.Anything, mock.Anything)
		fetcher.AssertNotCalled(t, "ListIssues", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("best-effort failures leave empty collections", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("GetRepository", mock.Anything, "octocat", "hello").Return(repo, nil)
		fetcher.On("ListCommits", mock.Anything, "octocat", "hello", 100).
			Return([]models.CommitRecord{{SHA: "a"}}, nil)
		fetcher.On("ListContributors", mock.Anything, "octocat", "hello", 100).
			Return(nil, NewGitHubError(http.StatusInternalServerError, "contributors", "boom"))
		fetcher.On("GetLanguages", mock.Anything, "octocat", "hello").
			Return(nil, errors.New("timeout"))
		fetcher.On("ListIssues", mock.Anything, "octocat", "hello", 100).
			Return(nil, nil)

		result, err := NewAggregator(fetcher, nil, testLogger()).Fetch(ctx, "octocat", "hello")
		require.NoError(t, err)
		assert.Len(t, result.Commits, 1)
		assert.NotNil(t, result.Contributors)
		assert.Empty(t, result.Contributors)
		assert.NotNil(t, result.Languages)
		assert.Empty(t, result.Languages)
		assert.NotNil(t, result.Issues)
	})

	t.Run("uses configured page sizes", func(t *testing.T) {
		cfg := &config.FetchConfig{CommitsPerPage: 30, ContributorsPerPage: 20, IssuesPerPage: 10, TopN: 5}
		fetcher := new(mockFetcher)
		fetcher.On("GetRepository", mock.Anything, "o", "r").Return(repo, nil)
		fetcher.On("ListCommits", mock.Anything, "o", "r", 30).Return([]models.CommitRecord{}, nil)
		fetcher.On("ListContributors", mock.Anything, "o", "r", 20).Return([]models.ContributorRecord{}, nil)
		fetcher.On("GetLanguages", mock.Anything, "o", "r").Return(models.LanguageBreakdown{}, nil)
		fetcher.On("ListIssues", mock.Anything, "o", "r", 10).Return([]models.IssueRecord{}, nil)

		_, err := NewAggregator(fetcher, cfg, testLogger()).Fetch(ctx, "o", "r")
		require.NoError(t, err)
		fetcher.AssertExpectations(t)
	})

	t.Run("cancelled during best-effort fetches", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		fetcher := new(mockFetcher)
		fetcher.On("GetRepository", mock.Anything, "o", "r").Return(repo, nil).Run(func(mock.Arguments) { cancel() })
		fetcher.On("ListCommits", mock.Anything, "o", "r", 100).Return(nil, context.Canceled)
		fetcher.On("ListContributors", mock.Anything, "o", "r", 100).Return(nil, context.Canceled)
		fetcher.On("GetLanguages", mock.Anything, "o", "r").Return(nil, context.Canceled)
		fetcher.On("ListIssues", mock.Anything, "o", "r", 100).Return(nil, context.Canceled)

		result, err := NewAggregator(fetcher, nil, testLogger()).Fetch(cctx, "o", "r")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAggregator_FetchURL_InvalidURL(t *testing.T) {
	fetcher := new(mockFetcher)

	for _, raw := range []string{
		"https://gitlab.com/a/b",
		"https://www.github.com/octocat/hello",
		"http://github.com/octocat/hello",
	} {
		_, err := NewAggregator(fetcher, nil, testLogger()).FetchURL(context.Background(), raw)
		assert.True(t, apperrors.IsInvalidURL(err), raw)
	}
	fetcher.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, mock.Anything)
}

// Against a fake GitHub: a 404 on the metadata call issues exactly one request.
func TestAggregator_NotFoundIssuesSingleRequest(t *testing.T) {
	client, server := setupTestClient(t, "")
	var requests int32
	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := NewAggregator(client, nil, testLogger()).FetchURL(context.Background(), "https://github.com/octocat/missing")
	assert.True(t, apperrors.IsRepoNotFound(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestAggregator_Report(t *testing.T) {
	client, server := setupTestClient(t, "")
	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/test-owner/test-repo":
			w.Write([]byte(repoJSON))
		case strings.HasSuffix(r.URL.Path, "/commits"):
			w.Write([]byte(`[{"sha": "1", "commit": {"author": {"name": "alice"}}},
				{"sha": "2", "commit": {"author": {"name": "alice"}}},
				{"sha": "3", "commit": {"author": {"name": "bob"}}}]`))
		case strings.HasSuffix(r.URL.Path, "/contributors"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.HasSuffix(r.URL.Path, "/languages"):
			w.Write([]byte(`{"Go": 700, "Shell": 300}`))
		case strings.HasSuffix(r.URL.Path, "/issues"):
			w.Write([]byte(`[{"number": 1, "state": "open"}, {"number": 2, "state": "closed"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	report, err := NewAggregator(client, nil, testLogger()).Report(context.Background(), "https://github.com/test-owner/test-repo.git")
	require.NoError(t, err)
	assert.Equal(t, "test-repo", report.Repository.Name)
	assert.Empty(t, report.Contributors)
	assert.Empty(t, report.Stats.TopContributors)
	assert.Equal(t, []models.CommitterRank{{Name: "alice", Commits: 2}, {Name: "bob", Commits: 1}}, report.Stats.TopCommitters)
	require.Len(t, report.Stats.Languages, 2)
	assert.Equal(t, 70.0, report.Stats.Languages[0].Percentage)
	assert.Equal(t, models.IssueTotals{Open: 1, Closed: 1}, report.Stats.Issues)
}
