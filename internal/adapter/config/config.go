package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yourusername/ghsearch/internal/adapter/storage"
)

// Config represents the application configuration.
type Config struct {
	GitHubToken     string        `mapstructure:"github_token"`
	APIURL          string        `mapstructure:"api_url"`
	PerPage         int           `mapstructure:"per_page"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PreferencesPath string        `mapstructure:"preferences_path"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFile         string        `mapstructure:"log_file"`
	Theme           string        `mapstructure:"theme"`
	GHAuth          bool          `mapstructure:"gh_auth"`
}

// Loader reads configuration from flags, environment, an optional YAML file
// and defaults, in that order of precedence.
type Loader struct {
	v           *viper.Viper
	configFile  string
	searchPaths []string
}

// NewLoader creates a loader. configFile, when set, must exist; otherwise
// config.yaml is looked up in searchPaths (the user config dir by default).
func NewLoader(configFile string, searchPaths ...string) *Loader {
	v := viper.New()

	v.SetDefault("api_url", "https://api.github.com/")
	v.SetDefault("per_page", 100)
	v.SetDefault("timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("theme", "claude-warm")
	v.SetDefault("preferences_path", "")
	v.SetDefault("github_token", "")
	v.SetDefault("gh_auth", true)

	v.SetEnvPrefix("GHSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// The bare variable is what gh and most tooling export.
	_ = v.BindEnv("github_token", "GHSEARCH_GITHUB_TOKEN", "GITHUB_TOKEN")

	if len(searchPaths) == 0 {
		if dir, err := os.UserConfigDir(); err == nil {
			searchPaths = []string{filepath.Join(dir, "ghsearch")}
		}
	}

	return &Loader{
		v:           v,
		configFile:  configFile,
		searchPaths: searchPaths,
	}
}

// defaultLogFile returns ghsearch.log under the user cache dir, or "" (no
// logging) when there is none.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ghsearch", "ghsearch.log")
}

// Viper exposes the underlying instance so commands can bind their flags.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load resolves, validates and returns the configuration.
func (l *Loader) Load() (*Config, error) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		for _, p := range l.searchPaths {
			l.v.AddConfigPath(p)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PreferencesPath == "" {
		path, err := storage.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.PreferencesPath = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PerPage < 1 || c.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", c.PerPage)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_url must be an absolute http(s) URL, got %q", c.APIURL)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.Theme == "" {
		return errors.New("theme cannot be empty")
	}
	return nil
}

// MaskedToken returns the token with everything after the first four
// characters hidden, or "(not set)".
func (c *Config) MaskedToken() string {
	if c.GitHubToken == "" {
		return "(not set)"
	}
	return c.GitHubToken[:min(4, len(c.GitHubToken))] + "***"
}
