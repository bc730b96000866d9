package github

import (
	"fmt"
	"time"

	"github.com/reporadar/reporadar/internal/models"
)

// Wire shapes of the GitHub REST v3 payloads. Each one decodes only the
// fields RepoRadar reads and validates them before conversion.

type ownerPayload struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

type repositoryPayload struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	FullName        string        `json:"full_name"`
	Owner           *ownerPayload `json:"owner"`
	Description     *string       `json:"description"`
	HTMLURL         string        `json:"html_url"`
	Language        *string       `json:"language"`
	StargazersCount int           `json:"stargazers_count"`
	ForksCount      int           `json:"forks_count"`
	WatchersCount   int           `json:"watchers_count"`
	OpenIssuesCount int           `json:"open_issues_count"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	License         *struct {
		Name string `json:"name"`
	} `json:"license"`
	Homepage      *string  `json:"homepage"`
	DefaultBranch string   `json:"default_branch"`
	Topics        []string `json:"topics"`
}

func (p *repositoryPayload) validate() error {
	if p.Owner == nil || p.Owner.Login == "" {
		return fmt.Errorf("missing owner.login")
	}
	if p.Name == "" || p.FullName == "" {
		return fmt.Errorf("missing name or full_name")
	}
	return nil
}

func (p *repositoryPayload) toSummary() *models.RepositorySummary {
	summary := &models.RepositorySummary{
		OwnerLogin:      p.Owner.Login,
		OwnerAvatarURL:  p.Owner.AvatarURL,
		Name:            p.Name,
		FullName:        p.FullName,
		Description:     nonEmpty(p.Description),
		HTMLURL:         p.HTMLURL,
		Language:        nonEmpty(p.Language),
		StargazersCount: p.StargazersCount,
		ForksCount:      p.ForksCount,
		WatchersCount:   p.WatchersCount,
		OpenIssuesCount: p.OpenIssuesCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Homepage:        nonEmpty(p.Homepage),
		DefaultBranch:   p.DefaultBranch,
	}
	if p.License != nil && p.License.Name != "" {
		name := p.License.Name
		summary.License = &name
	}
	return summary
}

func (p *repositoryPayload) toSearchItem() models.SearchResultItem {
	item := models.SearchResultItem{
		ID:             p.ID,
		Name:           p.Name,
		FullName:       p.FullName,
		Description:    "No description provided",
		OwnerLogin:     p.Owner.Login,
		OwnerAvatarURL: p.Owner.AvatarURL,
		OwnerURL:       p.Owner.HTMLURL,
		Stars:          p.StargazersCount,
		Forks:          p.ForksCount,
		OpenIssues:     p.OpenIssuesCount,
		Language:       "Not specified",
		HTMLURL:        p.HTMLURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Topics:         p.Topics,
	}
	if d := nonEmpty(p.Description); d != nil {
		item.Description = *d
	}
	if l := nonEmpty(p.Language); l != nil {
		item.Language = *l
	}
	if item.Topics == nil {
		item.Topics = []string{}
	}
	return item
}

type commitPayload struct {
	SHA    string `json:"sha"`
	Commit *struct {
		Author *struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

func (p *commitPayload) validate() error {
	if p.SHA == "" {
		return fmt.Errorf("commit without sha")
	}
	if p.Commit == nil {
		return fmt.Errorf("commit %s without commit object", p.SHA)
	}
	return nil
}

func (p *commitPayload) toRecord() models.CommitRecord {
	record := models.CommitRecord{SHA: p.SHA}
	if p.Commit.Author != nil {
		record.AuthorName = p.Commit.Author.Name
		record.Date = p.Commit.Author.Date
	}
	return record
}

type contributorPayload struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
}

func (p *contributorPayload) validate() error {
	if p.Login == "" {
		return fmt.Errorf("contributor without login")
	}
	if p.Contributions < 0 {
		return fmt.Errorf("contributor %s with negative contributions", p.Login)
	}
	return nil
}

type issuePayload struct {
	Number      int       `json:"number"`
	State       string    `json:"state"`
	PullRequest *struct{} `json:"pull_request"`
}

func (p *issuePayload) validate() error {
	switch models.IssueState(p.State) {
	case models.IssueOpen, models.IssueClosed:
		return nil
	}
	return fmt.Errorf("issue #%d has unknown state %q", p.Number, p.State)
}

type searchPayload struct {
	TotalCount        int                 `json:"total_count"`
	IncompleteResults bool                `json:"incomplete_results"`
	Items             []repositoryPayload `json:"items"`
}

func (p *searchPayload) validate() error {
	if p.Items == nil {
		return fmt.Errorf("missing items")
	}
	for i := range p.Items {
		if err := p.Items[i].validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
