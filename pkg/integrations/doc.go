// Package integrations provides the shared HTTP plumbing for the remote
// services pkgscore talks to.
//
// Subpackages:
//
//   - [npm]: npm registry, used to map a package to its source repository
//   - [github]: the repository data gateway (REST, GraphQL, pagination)
//   - [git]: shallow clones for file-level metrics
//
// # Client Pattern
//
// Plain JSON endpoints go through [Client], which applies default headers,
// reports requests to the registered [observability.HTTPHooks] and maps
// status codes onto [ErrNotFound] and [ErrNetwork]. Each call is a single
// attempt: there is no response cache and no retry.
//
//	c := integrations.NewClient(map[string]string{"Accept": "application/json"})
//	var v registryDoc
//	err := c.Get(ctx, "https://registry.npmjs.org/express", &v)
//
// [observability.HTTPHooks]: github.com/starliteSeeker/ECE461-Team19-CLI/pkg/observability.HTTPHooks
package integrations
