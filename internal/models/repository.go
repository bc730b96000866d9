package models

import "time"

// RepositorySummary is the snapshot of GET /repos/{owner}/{repo} that the
// dashboard displays.
type RepositorySummary struct {
	OwnerLogin      string    `json:"owner_login"`
	OwnerAvatarURL  string    `json:"owner_avatar_url"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        *string   `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	License         *string   `json:"license"`
	Homepage        *string   `json:"homepage"`
	DefaultBranch   string    `json:"default_branch"`
}

// AggregateResult bundles the mandatory repository summary with the
// best-effort collections. A collection whose fetch failed is empty, never nil.
type AggregateResult struct {
	Repository   *RepositorySummary  `json:"repository"`
	Commits      []CommitRecord      `json:"commits"`
	Contributors []ContributorRecord `json:"contributors"`
	Languages    LanguageBreakdown   `json:"languages"`
	Issues       []IssueRecord       `json:"issues"`
}

// NewAggregateResult returns a result for repo with all collections empty.
func NewAggregateResult(repo *RepositorySummary) *AggregateResult {
	return &AggregateResult{
		Repository:   repo,
		Commits:      []CommitRecord{},
		Contributors: []ContributorRecord{},
		Languages:    LanguageBreakdown{},
		Issues:       []IssueRecord{},
	}
}

// RepoStats holds the derived views of an AggregateResult.
type RepoStats struct {
	Languages       []LanguageShare   `json:"languages"`
	TopContributors []ContributorRank `json:"top_contributors"`
	TopCommitters   []CommitterRank   `json:"top_committers"`
	Issues          IssueTotals       `json:"issues"`
}

// Report is the display model for one analysis submission.
type Report struct {
	*AggregateResult
	Stats RepoStats `json:"stats"`
}
