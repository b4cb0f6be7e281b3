package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the CLI reads. Values are passed explicitly to
// the components that need them; nothing reads this from ambient state.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	HTTP   HTTPConfig   `yaml:"http"`
}

// GitHubConfig holds hosting-API settings.
type GitHubConfig struct {
	// Token authenticates API calls. Optional for public repositories.
	Token string `yaml:"token"`
	// PerPageMax caps the page size used when listing pull requests.
	PerPageMax int `yaml:"per_page_max"`
}

// HTTPConfig bounds network calls.
type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GitHub: GitHubConfig{
			PerPageMax: 100,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 10,
		},
	}
}

// DefaultPath returns the standard config file location,
// e.g. ~/.config/prget/config.yml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "prget", "config.yml")
}

// Load reads the config file at path (if it exists), overlays it on the
// defaults, then applies environment overrides (GITHUB_TOKEN,
// PRGET_PER_PAGE_MAX). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
	if v := os.Getenv("PRGET_PER_PAGE_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PRGET_PER_PAGE_MAX %q: %w", v, err)
		}
		cfg.GitHub.PerPageMax = n
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.GitHub.PerPageMax <= 0 {
		return fmt.Errorf("github.per_page_max must be positive, got %d", c.GitHub.PerPageMax)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	return nil
}

// HTTPTimeout returns the configured network timeout.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
