// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// pkgscore only needs one thing from npm: the source repository a package
// was published from. The client fetches the packument
// (https://registry.npmjs.org/<name>) and reads its "repository" field.
//
// # Usage
//
//	client := npm.NewClient("")
//	repo, err := client.FetchRepository(ctx, "express")
//	// repo == "https://github.com/expressjs/express"
//
// # Repository Field
//
// The field may be a bare string or an object with a "url" key. The
// top-level value is preferred; when absent, the value recorded on the
// version tagged "latest" is used. URLs are normalized with
// [integrations.NormalizeRepoURL], which strips "git+" prefixes and ".git"
// suffixes.
//
// # Scoped Packages
//
// Scoped names such as "@babel/core" are requested with the slash escaped,
// as the registry expects.
package npm
