package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// PackageInfo is the part of an npm packument pkgscore reads.
type PackageInfo struct {
	Name       string
	Version    string // dist-tags.latest
	Repository string // normalized, empty when the packument has none
}

// Client reads package metadata from an npm registry. It is safe for
// concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient returns a registry client rooted at baseURL. An empty baseURL
// selects [DefaultRegistry].
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistry
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchPackage reads the packument for pkg. Scoped names ("@scope/name")
// are accepted as-is.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return nil, fmt.Errorf("%w: empty npm package name", integrations.ErrNotFound)
	}

	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+escapeName(pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return nil, err
	}

	latest := data.DistTags.Latest
	v := data.Versions[latest]

	repo := extractField(data.Repository, "url")
	if repo == "" {
		repo = extractField(v.Repository, "url")
	}

	return &PackageInfo{
		Name:       data.Name,
		Version:    latest,
		Repository: integrations.NormalizeRepoURL(repo),
	}, nil
}

// FetchRepository returns the normalized repository URL of pkg.
func (c *Client) FetchRepository(ctx context.Context, pkg string) (string, error) {
	info, err := c.FetchPackage(ctx, pkg)
	if err != nil {
		return "", err
	}
	if info.Repository == "" {
		return "", fmt.Errorf("%w: npm package %s has no repository url", integrations.ErrNotFound, pkg)
	}
	return info.Repository, nil
}

func escapeName(pkg string) string {
	if strings.HasPrefix(pkg, "@") {
		return strings.Replace(pkg, "/", "%2f", 1)
	}
	return pkg
}

func extractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}

type registryResponse struct {
	Name       string                    `json:"name"`
	DistTags   distTags                  `json:"dist-tags"`
	Repository any                       `json:"repository"`
	Versions   map[string]versionDetails `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionDetails struct {
	Repository any `json:"repository"`
}
