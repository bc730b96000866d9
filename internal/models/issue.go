package models

type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
)

// IssueRecord is one entry of GET /repos/{owner}/{repo}/issues. The issues
// endpoint also returns pull requests; IsPullRequest marks them.
type IssueRecord struct {
	Number        int        `json:"number"`
	State         IssueState `json:"state"`
	IsPullRequest bool       `json:"is_pull_request"`
}

type IssueTotals struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}
