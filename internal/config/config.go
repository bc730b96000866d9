package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the process configuration. Values come from an optional TOML
// file named by RADAR_CONFIG_FILE, then from environment variables, which win.
type Config struct {
	Port           string   `toml:"port"`
	LogLevel       string   `toml:"log_level"`
	AllowedOrigins []string `toml:"allowed_origins"`

	GitHub  GitHubConfig  `toml:"github"`
	Backend BackendConfig `toml:"backend"`
	Fetch   FetchConfig   `toml:"fetch"`
	Search  SearchConfig  `toml:"search"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:           "8080",
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		GitHub:         *DefaultGitHubConfig(),
		Backend:        *DefaultBackendConfig(),
		Fetch:          *DefaultFetchConfig(),
		Search:         *DefaultSearchConfig(),
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("RADAR_CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the TOML file at path over cfg.
func LoadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	cfg.GitHub.Token = getEnv("GITHUB_TOKEN", cfg.GitHub.Token)
	cfg.GitHub.APIBaseURL = strings.TrimSuffix(getEnv("GITHUB_API_URL", cfg.GitHub.APIBaseURL), "/")
	cfg.Backend.URL = getEnv("BACKEND_URL", cfg.Backend.URL)

	var err error
	if cfg.GitHub.Timeout, err = getEnvSeconds("GITHUB_TIMEOUT_SECONDS", cfg.GitHub.Timeout); err != nil {
		return err
	}
	if cfg.Backend.Timeout, err = getEnvSeconds("BACKEND_TIMEOUT_SECONDS", cfg.Backend.Timeout); err != nil {
		return err
	}
	if cfg.Fetch.TopN, err = getEnvInt("TOP_N", cfg.Fetch.TopN); err != nil {
		return err
	}
	if cfg.Search.DetailWorkers, err = getEnvInt("SEARCH_DETAIL_WORKERS", cfg.Search.DetailWorkers); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSeconds(key string, defaultValue Duration) (Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return Duration(time.Duration(n) * time.Second), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Duration is a time.Duration that decodes from TOML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}
