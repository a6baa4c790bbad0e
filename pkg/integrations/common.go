package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"git+ssh://git@github.com/", "https://github.com/",
	"ssh://git@github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, git://, ssh:// and git+ prefixes, and removes .git suffixes.
// Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = repoURLReplacer.Replace(s)
	s = strings.TrimPrefix(s, "git+")
	return strings.TrimSuffix(s, ".git")
}
