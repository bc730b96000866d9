// Package stats derives the dashboard views from an aggregate fetch. All
// functions are pure and never mutate their input.
package stats

import (
	"sort"

	"github.com/reporadar/reporadar/internal/models"
	"github.com/reporadar/reporadar/pkg/utils"
)

// UnknownAuthor names commits whose author name is empty.
const UnknownAuthor = "Unknown"

// LanguagePercentages converts a byte breakdown into shares rounded to one
// decimal, largest first. Equal byte counts are ordered by name. When the
// total is zero every share is zero.
func LanguagePercentages(breakdown models.LanguageBreakdown) []models.LanguageShare {
	total := breakdown.Total()
	shares := make([]models.LanguageShare, 0, len(breakdown))
	for name, bytes := range breakdown {
		share := models.LanguageShare{Name: name, Bytes: bytes}
		if total > 0 {
			share.Percentage = utils.RoundTo1(float64(bytes) / float64(total) * 100)
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// TopContributors returns at most n contributors ordered by contributions,
// ties broken by login.
func TopContributors(records []models.ContributorRecord, n int) []models.ContributorRank {
	ranked := make([]models.ContributorRank, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, models.ContributorRank{
			Login:         r.Login,
			Contributions: r.Contributions,
			AvatarURL:     r.AvatarURL,
			HTMLURL:       r.HTMLURL,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Contributions != ranked[j].Contributions {
			return ranked[i].Contributions > ranked[j].Contributions
		}
		return ranked[i].Login < ranked[j].Login
	})
	return limit(ranked, n)
}

// TopCommitters counts commits per author name and returns at most n
// authors, most commits first, ties broken by name.
func TopCommitters(commits []models.CommitRecord, n int) []models.CommitterRank {
	counts := make(map[string]int)
	for _, c := range commits {
		name := c.AuthorName
		if name == "" {
			name = UnknownAuthor
		}
		counts[name]++
	}

	ranked := make([]models.CommitterRank, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, models.CommitterRank{Name: name, Commits: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Name < ranked[j].Name
	})
	return limit(ranked, n)
}

// CountIssues tallies issues by state. Pull requests returned by the issues
// endpoint are counted like any other issue.
func CountIssues(issues []models.IssueRecord) models.IssueTotals {
	var totals models.IssueTotals
	for _, issue := range issues {
		switch issue.State {
		case models.IssueOpen:
			totals.Open++
		case models.IssueClosed:
			totals.Closed++
		}
	}
	return totals
}

// Compute builds every derived view of result, keeping the top n
// contributors and committers.
func Compute(result *models.AggregateResult, n int) models.RepoStats {
	if result == nil {
		return models.RepoStats{
			Languages:       []models.LanguageShare{},
			TopContributors: []models.ContributorRank{},
			TopCommitters:   []models.CommitterRank{},
		}
	}
	return models.RepoStats{
		Languages:       LanguagePercentages(result.Languages),
		TopContributors: TopContributors(result.Contributors, n),
		TopCommitters:   TopCommitters(result.Commits, n),
		Issues:          CountIssues(result.Issues),
	}
}

func limit[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
