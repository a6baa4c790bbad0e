package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Scoring.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Scoring.Jobs)
	}
	if cfg.Scoring.URLTimeout.Duration != 2*time.Minute {
		t.Errorf("URLTimeout = %v, want 2m", cfg.Scoring.URLTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pkgscore.toml")
	data := `
[github]
api_url = "http://localhost:8080/"
rate_limit = 5

[scoring]
jobs = 8
url_timeout = "90s"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvToken, "tok")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GitHub.APIURL != "http://localhost:8080/" {
		t.Errorf("APIURL = %q", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.GraphQLURL != Default().GitHub.GraphQLURL {
		t.Errorf("GraphQLURL = %q, want default", cfg.GitHub.GraphQLURL)
	}
	if cfg.GitHub.RateLimit != 5 {
		t.Errorf("RateLimit = %v, want 5", cfg.GitHub.RateLimit)
	}
	if cfg.Scoring.Jobs != 8 {
		t.Errorf("Jobs = %d, want 8", cfg.Scoring.Jobs)
	}
	if cfg.Scoring.URLTimeout.Duration != 90*time.Second {
		t.Errorf("URLTimeout = %v, want 90s", cfg.Scoring.URLTimeout)
	}
	if cfg.GitHub.Token != "tok" {
		t.Errorf("Token = %q, want tok", cfg.GitHub.Token)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("bad toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		os.WriteFile(path, []byte("[scoring\njobs="), 0o644)
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("zero jobs", func(t *testing.T) {
		path := filepath.Join(dir, "zero.toml")
		os.WriteFile(path, []byte("[scoring]\njobs = 0\n"), 0o644)
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"2", 2},
		{"1", 1},
		{"0", 0},
		{"3", 0},
		{"", 0},
		{"debug", 0},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.level, func(t *testing.T) {
			env := map[string]string{EnvLogLevel: tt.level, EnvLogFile: "out.log", EnvToken: " abc "}
			cfg := Default()
			cfg.applyEnv(func(k string) string { return env[k] })
			if cfg.Log.Level != tt.want {
				t.Errorf("Log.Level = %d, want %d", cfg.Log.Level, tt.want)
			}
			if cfg.Log.File != "out.log" {
				t.Errorf("Log.File = %q", cfg.Log.File)
			}
			if cfg.GitHub.Token != "abc" {
				t.Errorf("Token = %q, want abc", cfg.GitHub.Token)
			}
		})
	}
}
