package github

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/reporadar/reporadar/internal/config"
	"github.com/reporadar/reporadar/internal/models"
	"github.com/reporadar/reporadar/internal/stats"
)

// Aggregator collects everything the dashboard shows about one repository.
// The metadata call is mandatory; the four collections are best-effort.
type Aggregator struct {
	client RepoFetcher
	config *config.FetchConfig
	logger *logrus.Logger
}

func NewAggregator(client RepoFetcher, cfg *config.FetchConfig, logger *logrus.Logger) *Aggregator {
	if cfg == nil {
		cfg = config.DefaultFetchConfig()
	}
	return &Aggregator{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// FetchURL parses repoURL and fetches the repository it names.
func (a *Aggregator) FetchURL(ctx context.Context, repoURL string) (*models.AggregateResult, error) {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	return a.Fetch(ctx, owner, name)
}

// Fetch gets repository metadata and, once that succeeds, commits,
// contributors, languages and issues concurrently. A failed collection is
// logged and left empty. If ctx ends first, ctx.Err() is returned and the
// partial result is dropped.
func (a *Aggregator) Fetch(ctx context.Context, owner, name string) (*models.AggregateResult, error) {
	logger := a.logger.WithFields(logrus.Fields{"owner": owner, "repo": name})

	repo, err := a.client.GetRepository(ctx, owner, name)
	if err != nil {
		logger.WithError(err).Info("Repository lookup failed")
		return nil, err
	}

	result := models.NewAggregateResult(repo)

	// Goroutines never return an error: each failure is tolerated and only
	// the goroutine's own field is written.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		commits, err := a.client.ListCommits(gctx, owner, name, a.config.CommitsPerPage)
		if err != nil {
			logger.WithError(err).WithField("endpoint", "commits").Warn("Failed to fetch commits")
			return nil
		}
		result.Commits = commits
		return nil
	})

	g.Go(func() error {
		contributors, err := a.client.ListContributors(gctx, owner, name, a.config.ContributorsPerPage)
		if err != nil {
			logger.WithError(err).WithField("endpoint", "contributors").Warn("Failed to fetch contributors")
			return nil
		}
		result.Contributors = contributors
		return nil
	})

	g.Go(func() error {
		languages, err := a.client.GetLanguages(gctx, owner, name)
		if err != nil {
			logger.WithError(err).WithField("endpoint", "languages").Warn("Failed to fetch languages")
			return nil
		}
		result.Languages = languages
		return nil
	})

	g.Go(func() error {
		issues, err := a.client.ListIssues(gctx, owner, name, a.config.IssuesPerPage)
		if err != nil {
			logger.WithError(err).WithField("endpoint", "issues").Warn("Failed to fetch issues")
			return nil
		}
		result.Issues = issues
		return nil
	})

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalize(result)

	logger.WithFields(logrus.Fields{
		"commits":      len(result.Commits),
		"contributors": len(result.Contributors),
		"languages":    len(result.Languages),
		"issues":       len(result.Issues),
	}).Info("Fetched repository")

	return result, nil
}

// Report fetches the repository at repoURL and computes its derived views.
func (a *Aggregator) Report(ctx context.Context, repoURL string) (*models.Report, error) {
	result, err := a.FetchURL(ctx, repoURL)
	if err != nil {
		return nil, err
	}
	return a.ReportFor(result), nil
}

// ReportFor computes the derived views of an already fetched result.
func (a *Aggregator) ReportFor(result *models.AggregateResult) *models.Report {
	return &models.Report{
		AggregateResult: result,
		Stats:           stats.Compute(result, a.config.TopN),
	}
}

// normalize replaces nil collections returned by a fetcher with empty ones.
func normalize(result *models.AggregateResult) {
	if result.Commits == nil {
		result.Commits = []models.CommitRecord{}
	}
	if result.Contributors == nil {
		result.Contributors = []models.ContributorRecord{}
	}
	if result.Languages == nil {
		result.Languages = models.LanguageBreakdown{}
	}
	if result.Issues == nil {
		result.Issues = []models.IssueRecord{}
	}
}
