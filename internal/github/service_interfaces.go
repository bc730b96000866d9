package github

import (
	"context"

	"github.com/reporadar/reporadar/internal/models"
)

// RepoFetcher defines the GitHub reads the aggregator needs
type RepoFetcher interface {
	// GetRepository retrieves repository metadata
	GetRepository(ctx context.Context, owner, name string) (*models.RepositorySummary, error)

	// ListCommits retrieves up to limit recent commits
	ListCommits(ctx context.Context, owner, name string, limit int) ([]models.CommitRecord, error)

	// ListContributors retrieves up to limit contributors
	ListContributors(ctx context.Context, owner, name string, limit int) ([]models.ContributorRecord, error)

	// GetLanguages retrieves the language breakdown in bytes
	GetLanguages(ctx context.Context, owner, name string) (models.LanguageBreakdown, error)

	// ListIssues retrieves up to limit issues in any state
	ListIssues(ctx context.Context, owner, name string, limit int) ([]models.IssueRecord, error)
}

// RepoSearcher defines the GitHub reads behind repository search
type RepoSearcher interface {
	// SearchRepositories runs a repository name search
	SearchRepositories(ctx context.Context, q models.SearchQuery) (int, []models.SearchResultItem, error)

	// CountCommits returns the number of commits on the default branch
	CountCommits(ctx context.Context, owner, name string) (int, error)

	// CountContributors returns the number of contributors
	CountContributors(ctx context.Context, owner, name string) (int, error)

	// GetLanguages retrieves the language breakdown in bytes
	GetLanguages(ctx context.Context, owner, name string) (models.LanguageBreakdown, error)
}

var (
	_ RepoFetcher  = (*GitHubClient)(nil)
	_ RepoSearcher = (*GitHubClient)(nil)
)
