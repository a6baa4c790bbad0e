// Package identity turns input URLs into repository identities.
//
// Two kinds of input are understood:
//
//   - hosting URLs (https://github.com/{owner}/{name}/...), which name the
//     repository directly
//   - registry URLs (https://www.npmjs.com/package/{name}), which are looked
//     up in the npm registry and followed to the repository they publish
//     from
//
// Anything else is a resolution miss. Misses are reported as errors with
// code UNSUPPORTED_HOST or UNRESOLVABLE so callers can skip the URL.
package identity

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations/github"
)

// Kind tells how an identity was obtained.
type Kind int

const (
	// KindHosting identities come from a repository URL.
	KindHosting Kind = iota + 1
	// KindRegistry identities come from a package registry page.
	KindRegistry
)

func (k Kind) String() string {
	switch k {
	case KindHosting:
		return "hosting"
	case KindRegistry:
		return "registry"
	}
	return "unknown"
}

// Identity names one GitHub repository. Owner and Name are never empty.
type Identity struct {
	Kind    Kind
	Source  string // input URL, verbatim
	Package string // registry package name, KindRegistry only
	Owner   string
	Name    string
}

// CanonicalURL returns https://github.com/{owner}/{name}.
func (id Identity) CanonicalURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", id.Owner, id.Name)
}

// String returns owner/name.
func (id Identity) String() string {
	return id.Owner + "/" + id.Name
}

// RepositoryLookup maps a registry package to its repository URL.
type RepositoryLookup interface {
	FetchRepository(ctx context.Context, pkg string) (string, error)
}

// Resolver resolves input URLs. It holds no state between calls.
type Resolver struct {
	registry RepositoryLookup
}

// NewResolver returns a Resolver that looks registry packages up through
// registry.
func NewResolver(registry RepositoryLookup) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve classifies raw and returns the repository it names.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Identity, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return Identity{}, errors.New(errors.ErrCodeUnsupportedHost, "%q is not a package URL", raw)
	}

	switch host := strings.ToLower(u.Hostname()); host {
	case "github.com", "www.github.com":
		owner, name, err := hostingPath(u)
		if err != nil {
			return Identity{}, err
		}
		return Identity{Kind: KindHosting, Source: raw, Owner: owner, Name: name}, nil

	case "www.npmjs.com", "npmjs.com":
		return r.resolveRegistry(ctx, raw, u)

	default:
		return Identity{}, errors.New(errors.ErrCodeUnsupportedHost, "host %s is not supported", host)
	}
}

func (r *Resolver) resolveRegistry(ctx context.Context, raw string, u *url.URL) (Identity, error) {
	pkg, ok := packageName(u.Path)
	if !ok {
		return Identity{}, errors.New(errors.ErrCodeUnresolvable, "%s is not an npm package page", raw)
	}

	repo, err := r.registry.FetchRepository(ctx, pkg)
	if err != nil {
		return Identity{}, errors.Wrap(errors.ErrCodeUnresolvable, err, "npm package %s", pkg)
	}

	// Only a direct hosting URL is followed, so resolution never loops.
	target, err := url.Parse(integrations.NormalizeRepoURL(repo))
	if err != nil || !isGitHubHost(target.Hostname()) {
		return Identity{}, errors.New(errors.ErrCodeUnresolvable, "npm package %s: repository %q is not on github.com", pkg, repo)
	}
	owner, name, err := hostingPath(target)
	if err != nil {
		return Identity{}, errors.Wrap(errors.ErrCodeUnresolvable, err, "npm package %s", pkg)
	}
	return Identity{Kind: KindRegistry, Source: raw, Package: pkg, Owner: owner, Name: name}, nil
}

func isGitHubHost(host string) bool {
	host = strings.ToLower(host)
	return host == "github.com" || host == "www.github.com"
}

// hostingPath takes owner and name from the first two path segments.
func hostingPath(u *url.URL) (owner, name string, err error) {
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) < 2 || segs[0] == "" || segs[1] == "" {
		return "", "", errors.New(errors.ErrCodeUnresolvable, "%s does not name a repository", u)
	}
	owner, name = segs[0], strings.TrimSuffix(segs[1], ".git")
	if err := github.ValidateRepoRef(owner, name); err != nil {
		return "", "", errors.Wrap(errors.ErrCodeUnresolvable, err, "%s", u)
	}
	return owner, name, nil
}

// packageName extracts the package from /package/{name} or
// /package/@{scope}/{name}. Trailing segments such as /v/1.2.3 are ignored.
func packageName(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/package/")
	if !ok {
		return "", false
	}
	segs := strings.Split(strings.Trim(rest, "/"), "/")
	if segs[0] == "" {
		return "", false
	}
	if strings.HasPrefix(segs[0], "@") {
		if len(segs) < 2 || segs[1] == "" || segs[0] == "@" {
			return "", false
		}
		return segs[0] + "/" + segs[1], true
	}
	return segs[0], true
}
