package models

type ContributorRecord struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
}

type ContributorRank struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
}
