// Package github is the repository data gateway: authenticated access to the
// GitHub REST and GraphQL APIs for a single owner/name pair at a time.
//
// # Usage
//
//	gw, err := github.NewGateway(cfg.GitHub)
//	if err != nil {
//	    return err // missing token or bad URL
//	}
//
//	issues, err := gw.PageCount(ctx, "expressjs", "express", "issues?state=all")
//	users, err := gw.MentionableUsers(ctx, "expressjs", "express")
//
// # Primitives
//
//   - [Gateway.RestGet]: GET repos/{owner}/{name}/{path}, JSON-decoded
//   - [Gateway.GraphQuery]: a githubv4 struct query
//   - [Gateway.PageCount]: item count of a list endpoint via per_page=1 and
//     the rel="last" Link entry
//
// The REST side uses go-github, the GraphQL side githubv4. Both share one
// oauth2 bearer-token client whose transport reports to the registered
// observability hooks.
//
// # Errors
//
// Failures carry codes from pkg/errors: NOT_FOUND for 404, UNAUTHORIZED
// for 401, RATE_LIMITED for primary and secondary rate limits,
// INVALID_RESPONSE for undecodable bodies and NETWORK_ERROR otherwise. Each
// call is attempted once.
//
// # Rate Limiting
//
// When github.rate_limit is configured, every call first waits on a
// token-bucket limiter shared by all goroutines using the gateway.
package github
