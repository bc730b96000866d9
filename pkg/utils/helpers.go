package utils

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// ParseGitHubURL splits an https://github.com repository URL into owner and repo. A
// trailing ".git", a trailing slash and any path below the repository
// (e.g. /tree/main) are accepted and dropped.
func ParseGitHubURL(repoURL string) (owner, repo string, err error) {
	u, err := url.Parse(strings.TrimSpace(repoURL))
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "https" {
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host != "github.com" {
		return "", "", fmt.Errorf("host %q is not github.com", u.Host)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid GitHub repository URL")
	}

	owner = parts[0]
	repo = strings.TrimSuffix(parts[1], ".git")
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid GitHub repository URL")
	}

	return owner, repo, nil
}

func IsValidGitHubURL(repoURL string) bool {
	_, _, err := ParseGitHubURL(repoURL)
	return err == nil
}

// LooksLikeGitHubLink is the loose check applied before handing a link to
// the analysis backend: non-blank and mentioning github.com.
func LooksLikeGitHubLink(link string) bool {
	link = strings.TrimSpace(link)
	return link != "" && strings.Contains(link, "github.com")
}

// RoundTo1 rounds f to one decimal place.
func RoundTo1(f float64) float64 {
	return math.Round(f*10) / 10
}
