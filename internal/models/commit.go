package models

import "time"

// CommitRecord is the part of a commit the dashboard uses.
type CommitRecord struct {
	SHA        string    `json:"sha"`
	AuthorName string    `json:"author_name"`
	Date       time.Time `json:"date"`
}

// CommitterRank is a commit author with the number of commits attributed to them.
type CommitterRank struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}
