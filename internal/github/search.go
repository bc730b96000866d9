package github

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/reporadar/reporadar/internal/batch"
	"github.com/reporadar/reporadar/internal/config"
	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/internal/models"
)

const maxPerPage = 100

// Searcher finds repositories by name and optionally enriches each hit with
// contributor, commit and language details.
type Searcher struct {
	client    RepoSearcher
	config    *config.SearchConfig
	processor *batch.Processor
	logger    *logrus.Logger
}

func NewSearcher(client RepoSearcher, cfg *config.SearchConfig, logger *logrus.Logger) *Searcher {
	if cfg == nil {
		cfg = config.DefaultSearchConfig()
	}
	return &Searcher{
		client:    client,
		config:    cfg,
		processor: batch.NewProcessor(cfg.DetailWorkers),
		logger:    logger,
	}
}

// normalizeQuery validates q and fills in defaults. defaultPerPage applies
// when q.PerPage is unset.
func normalizeQuery(q models.SearchQuery, defaultPerPage int) (models.SearchQuery, error) {
	q.Name = strings.TrimSpace(q.Name)
	q.Language = strings.TrimSpace(q.Language)
	if q.Name == "" {
		return q, apperrors.NewValidationError("Please enter a repository name to search", nil)
	}

	if q.Sort == "" {
		q.Sort = models.SortStars
	}
	if !q.Sort.Valid() {
		return q, apperrors.NewValidationError("sort must be one of stars, forks, updated", nil)
	}

	if q.Page < 0 || q.PerPage < 0 {
		return q, apperrors.NewValidationError("page and per_page must be positive", nil)
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PerPage == 0 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	return q, nil
}

// Search returns one page of repositories whose name matches q.Name
func (s *Searcher) Search(ctx context.Context, q models.SearchQuery) (*models.SearchPage, error) {
	q, err := normalizeQuery(q, s.config.PerPage)
	if err != nil {
		return nil, err
	}

	total, items, err := s.client.SearchRepositories(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("query", q.Name).Warn("Repository search failed")
		return nil, err
	}

	return &models.SearchPage{
		TotalCount: total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		Items:      items,
		Languages:  pageLanguages(items),
	}, nil
}

// SearchDetailed runs Search and then looks up contributor count, commit
// count and language names of every hit, a few repositories at a time. A
// failed lookup leaves that value empty.
func (s *Searcher) SearchDetailed(ctx context.Context, q models.SearchQuery) (*models.DetailedSearchPage, error) {
	if q.PerPage == 0 {
		q.PerPage = s.config.DetailedPerPage
	}
	page, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	details := make([]models.RepoDetail, len(page.Items))
	for i, item := range page.Items {
		details[i] = models.RepoDetail{SearchResultItem: item, LanguageNames: []string{}}
	}

	progress, err := s.processor.Process(ctx, len(details), func(ctx context.Context, i int) error {
		return s.enrich(ctx, &details[i])
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"query":  q.Name,
		"items":  progress.TotalItems,
		"failed": progress.FailedItems,
	}).Debug("Enriched search results")

	return &models.DetailedSearchPage{
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PerPage:    page.PerPage,
		Items:      details,
		Languages:  page.Languages,
	}, nil
}

func (s *Searcher) enrich(ctx context.Context, detail *models.RepoDetail) error {
	owner, name := detail.OwnerLogin, detail.Name
	logger := s.logger.WithFields(logrus.Fields{"owner": owner, "repo": name})
	var firstErr error

	if n, err := s.client.CountContributors(ctx, owner, name); err != nil {
		logger.WithError(err).Warn("Failed to count contributors")
		firstErr = err
	} else {
		detail.ContributorsCount = n
	}

	if n, err := s.client.CountCommits(ctx, owner, name); err != nil {
		logger.WithError(err).Warn("Failed to count commits")
		if firstErr == nil {
			firstErr = err
		}
	} else {
		detail.CommitCount = n
	}

	if languages, err := s.client.GetLanguages(ctx, owner, name); err != nil {
		logger.WithError(err).Warn("Failed to fetch languages")
		if firstErr == nil {
			firstErr = err
		}
	} else {
		detail.LanguageNames = languageNames(languages)
	}

	return firstErr
}

// pageLanguages lists the distinct primary languages on a page, sorted.
func pageLanguages(items []models.SearchResultItem) []string {
	seen := make(map[string]struct{})
	languages := []string{}
	for _, item := range items {
		if item.Language == "" || item.Language == "Not specified" {
			continue
		}
		if _, ok := seen[item.Language]; ok {
			continue
		}
		seen[item.Language] = struct{}{}
		languages = append(languages, item.Language)
	}
	sort.Strings(languages)
	return languages
}

// languageNames returns the languages of a breakdown, largest first.
func languageNames(breakdown models.LanguageBreakdown) []string {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if breakdown[names[i]] != breakdown[names[j]] {
			return breakdown[names[i]] > breakdown[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
