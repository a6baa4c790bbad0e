package github

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/config"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations"
)

const requestTimeout = 30 * time.Second

// Gateway is the authenticated read-only view of a GitHub repository.
// A Gateway is immutable after construction and safe for concurrent use.
type Gateway struct {
	rest    *github.Client
	graph   *githubv4.Client
	limiter *rate.Limiter
}

// NewGateway builds a gateway from cfg. The token is required: anonymous
// GitHub access is rate limited far below what a scoring run needs.
func NewGateway(cfg config.GitHub) (*Gateway, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "%s is not set", config.EnvToken)
	}

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil || apiURL.Host == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "github api url %q is invalid", cfg.APIURL)
	}
	if !strings.HasSuffix(apiURL.Path, "/") {
		apiURL.Path += "/"
	}

	base := &http.Client{Transport: hookTransport{base: http.DefaultTransport}}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	hc.Timeout = requestTimeout

	rest := github.NewClient(hc)
	rest.BaseURL = apiURL

	g := &Gateway{
		rest:  rest,
		graph: githubv4.NewEnterpriseClient(cfg.GraphQLURL, hc),
	}
	if cfg.RateLimit > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}
	return g, nil
}

// RestGet fetches repos/{owner}/{name}/{path} and decodes the JSON body into
// v. path may carry a query string. The response headers are returned so
// callers can inspect pagination.
func (g *Gateway) RestGet(ctx context.Context, owner, name, path string, v any) (http.Header, error) {
	if err := ValidateRepoRef(owner, name); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "repository %s/%s", owner, name)
	}
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("repos/%s/%s", owner, name)
	if path != "" {
		u += "/" + strings.TrimPrefix(path, "/")
	}
	req, err := g.rest.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request %s", u)
	}

	resp, err := g.rest.Do(ctx, req, v)
	if err != nil {
		return nil, classify(err, "GET "+u)
	}
	return resp.Header, nil
}

// GraphQuery runs a GraphQL query. q is a githubv4 struct query and vars its
// variables. Any GraphQL error in the response fails the whole call.
func (g *Gateway) GraphQuery(ctx context.Context, q any, vars map[string]any) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	if err := g.graph.Query(ctx, q, vars); err != nil {
		return classify(err, "graphql query")
	}
	return nil
}

// PageCount returns the number of pages a list endpoint has at one item per
// page, which equals its total item count. It reads the rel="last" link when
// present and otherwise inspects the single page it received.
func (g *Gateway) PageCount(ctx context.Context, owner, name, path string) (int, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	var page []json.RawMessage
	header, err := g.RestGet(ctx, owner, name, path+sep+"per_page=1", &page)
	if err != nil {
		return 0, err
	}

	if last, ok, err := ParseLastPage(header.Get("Link")); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidResponse, err, "link header for %s/%s/%s", owner, name, path)
	} else if ok {
		return last, nil
	}
	if len(page) > 0 {
		return 1, nil
	}
	return 0, nil
}

// License returns the SPDX identifier GitHub detected for the repository.
// A repository without a detected license yields "".
func (g *Gateway) License(ctx context.Context, owner, name string) (string, error) {
	var lic github.RepositoryLicense
	if _, err := g.RestGet(ctx, owner, name, "license", &lic); err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return "", nil
		}
		return "", err
	}
	return lic.GetLicense().GetSPDXID(), nil
}

// MentionableUsers returns how many users can be @-mentioned in the
// repository.
func (g *Gateway) MentionableUsers(ctx context.Context, owner, name string) (int, error) {
	var q struct {
		Repository struct {
			MentionableUsers struct {
				TotalCount int
			}
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]any{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	if err := g.GraphQuery(ctx, &q, vars); err != nil {
		return 0, err
	}
	return q.Repository.MentionableUsers.TotalCount, nil
}

// PullsUpdatedSince counts pull requests updated on or after since.
func (g *Gateway) PullsUpdatedSince(ctx context.Context, owner, name string, since time.Time) (int, error) {
	if err := ValidateRepoRef(owner, name); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "repository %s/%s", owner, name)
	}
	if err := g.wait(ctx); err != nil {
		return 0, err
	}

	query := fmt.Sprintf("repo:%s/%s is:pr updated:>=%s", owner, name, since.UTC().Format("2006-01-02"))
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}
	result, _, err := g.rest.Search.Issues(ctx, query, opts)
	if err != nil {
		return 0, classify(err, "search "+query)
	}
	return result.GetTotal(), nil
}

func (g *Gateway) wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

// classify maps go-github and transport errors onto error codes.
func classify(err error, what string) error {
	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		respErr  *github.ErrorResponse
	)
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeNetwork, err, "%s", what)
	case stderrors.As(err, &rateErr), stderrors.As(err, &abuseErr):
		return errors.Wrap(errors.ErrCodeRateLimited, err, "%s", what)
	case stderrors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Wrap(errors.ErrCodeNotFound, fmt.Errorf("%w: %v", integrations.ErrNotFound, err), "%s", what)
		case http.StatusUnauthorized:
			return errors.Wrap(errors.ErrCodeUnauthorized, err, "%s", what)
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(errors.ErrCodeInvalidResponse, err, "%s", what)
	}
	return errors.Wrap(errors.ErrCodeNetwork, fmt.Errorf("%w: %v", integrations.ErrNetwork, err), "%s", what)
}
