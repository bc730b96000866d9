package github

import (
	apperrors "github.com/reporadar/reporadar/internal/errors"
	"github.com/reporadar/reporadar/pkg/utils"
)

// ParseRepoURL extracts owner and repository name from a github.com URL.
// Anything else fails with INVALID_URL.
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	owner, name, err = utils.ParseGitHubURL(repoURL)
	if err != nil {
		return "", "", apperrors.NewInvalidURLError("Please enter a valid GitHub repository URL", err)
	}
	return owner, name, nil
}
