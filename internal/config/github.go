package config

import "time"

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	Token      string   `toml:"token"`
	APIBaseURL string   `toml:"api_base_url"`
	Timeout    Duration `toml:"timeout"`
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL: "https://api.github.com",
		Timeout:    Duration(30 * time.Second),
	}
}

// BackendConfig holds the analysis backend endpoint
type BackendConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

func DefaultBackendConfig() *BackendConfig {
	return &BackendConfig{
		URL:     "http://localhost:8000/analyze",
		Timeout: Duration(120 * time.Second),
	}
}
