package config

// FetchConfig controls the aggregate fetch and its derived views
type FetchConfig struct {
	CommitsPerPage      int `toml:"commits_per_page"`
	ContributorsPerPage int `toml:"contributors_per_page"`
	IssuesPerPage       int `toml:"issues_per_page"`
	TopN                int `toml:"top_n"`
}

func DefaultFetchConfig() *FetchConfig {
	return &FetchConfig{
		CommitsPerPage:      100,
		ContributorsPerPage: 100,
		IssuesPerPage:       100,
		TopN:                10,
	}
}

// SearchConfig controls repository search paging and detail enrichment
type SearchConfig struct {
	PerPage         int `toml:"per_page"`
	DetailedPerPage int `toml:"detailed_per_page"`
	DetailWorkers   int `toml:"detail_workers"`
}

func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		PerPage:         6,
		DetailedPerPage: 10,
		DetailWorkers:   3,
	}
}
