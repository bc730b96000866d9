package models

import "time"

// SearchSort is the ordering accepted by the GitHub repository search.
type SearchSort string

const (
	SortStars   SearchSort = "stars"
	SortForks   SearchSort = "forks"
	SortUpdated SearchSort = "updated"
)

// Valid reports whether s is one of the supported orderings.
func (s SearchSort) Valid() bool {
	switch s {
	case SortStars, SortForks, SortUpdated:
		return true
	}
	return false
}

// SearchQuery describes a repository-by-name search.
type SearchQuery struct {
	Name     string     `json:"name"`
	Language string     `json:"language,omitempty"`
	Sort     SearchSort `json:"sort"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
}

type SearchResultItem struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	FullName       string    `json:"full_name"`
	Description    string    `json:"description"`
	OwnerLogin     string    `json:"owner_login"`
	OwnerAvatarURL string    `json:"owner_avatar_url"`
	OwnerURL       string    `json:"owner_url"`
	Stars          int       `json:"stars"`
	Forks          int       `json:"forks"`
	OpenIssues     int       `json:"open_issues"`
	Language       string    `json:"language"`
	HTMLURL        string    `json:"html_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Topics         []string  `json:"topics"`
}

// SearchPage is one page of search results. Languages lists the distinct
// languages present on the page, for filtering.
type SearchPage struct {
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	Items      []SearchResultItem `json:"items"`
	Languages  []string           `json:"languages"`
}

// RepoDetail is a search result enriched with per-repository counts.
type RepoDetail struct {
	SearchResultItem
	ContributorsCount int      `json:"contributors_count"`
	CommitCount       int      `json:"commit_count"`
	LanguageNames     []string `json:"language_names"`
}

type DetailedSearchPage struct {
	TotalCount int          `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	Items      []RepoDetail `json:"items"`
	Languages  []string     `json:"languages"`
}
