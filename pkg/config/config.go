// Package config loads pkgscore settings.
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults ([Default])
//  2. An optional TOML file passed with --config
//  3. A .env file in the working directory (never overrides the real environment)
//  4. Environment variables: GITHUB_TOKEN, LOG_LEVEL, LOG_FILE
//
// Command-line flags are applied on top by the CLI.
//
// Example TOML file:
//
//	[github]
//	api_url = "https://api.github.com/"
//	rate_limit = 10
//
//	[scoring]
//	jobs = 8
//	url_timeout = "90s"
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

// Environment variable names.
const (
	EnvToken    = "GITHUB_TOKEN"
	EnvLogLevel = "LOG_LEVEL"
	EnvLogFile  = "LOG_FILE"
)

// Config is the complete runtime configuration. It is built once at startup
// and passed explicitly to constructors.
type Config struct {
	GitHub   GitHub   `toml:"github"`
	Registry Registry `toml:"registry"`
	Scoring  Scoring  `toml:"scoring"`
	Log      Log      `toml:"-"`
}

// GitHub configures the repository data gateway.
type GitHub struct {
	Token      string  `toml:"-"`
	APIURL     string  `toml:"api_url"`
	GraphQLURL string  `toml:"graphql_url"`
	RateLimit  float64 `toml:"rate_limit"` // requests per second, 0 disables
	Burst      int     `toml:"burst"`
}

// Registry configures the npm registry lookup.
type Registry struct {
	URL string `toml:"url"`
}

// Scoring configures the engine.
type Scoring struct {
	Jobs       int      `toml:"jobs"`
	URLTimeout Duration `toml:"url_timeout"`
	CloneDepth int      `toml:"clone_depth"`
}

// Log mirrors the LOG_LEVEL and LOG_FILE environment variables.
// Level 2 is debug, 1 is info, anything else disables logging.
type Log struct {
	Level int
	File  string
}

// Duration is a time.Duration that decodes from TOML strings like "90s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GitHub: GitHub{
			APIURL:     "https://api.github.com/",
			GraphQLURL: "https://api.github.com/graphql",
			Burst:      1,
		},
		Registry: Registry{
			URL: "https://registry.npmjs.org",
		},
		Scoring: Scoring{
			Jobs:       4,
			URLTimeout: Duration{2 * time.Minute},
			CloneDepth: 1,
		},
	}
}

// Load builds a Config from defaults, the optional TOML file at path, a .env
// file and the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if os.IsNotExist(err) {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvToken)); v != "" {
		c.GitHub.Token = v
	}
	switch strings.TrimSpace(getenv(EnvLogLevel)) {
	case "2":
		c.Log.Level = 2
	case "1":
		c.Log.Level = 1
	default:
		c.Log.Level = 0
	}
	c.Log.File = getenv(EnvLogFile)
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if c.Scoring.Jobs < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "scoring.jobs must be positive, got %d", c.Scoring.Jobs)
	}
	if c.Scoring.URLTimeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scoring.url_timeout must be positive")
	}
	if c.Scoring.CloneDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scoring.clone_depth must not be negative")
	}
	if c.GitHub.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "github.rate_limit must not be negative")
	}
	for name, raw := range map[string]string{
		"github.api_url":     c.GitHub.APIURL,
		"github.graphql_url": c.GitHub.GraphQLURL,
		"registry.url":       c.Registry.URL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: %q is not an absolute URL", name, raw)
		}
	}
	return nil
}
