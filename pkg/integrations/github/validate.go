package github

import (
	"fmt"
	"regexp"
)

var (
	// 1-39 alphanumerics or hyphens, no leading hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// 1-100 alphanumerics, hyphens, underscores or dots
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateRepoRef reports whether owner and name can address a GitHub
// repository. Both end up in request paths, so anything that could escape
// the repos/{owner}/{name} prefix is rejected.
func ValidateRepoRef(owner, name string) error {
	switch {
	case owner == "":
		return fmt.Errorf("repository owner is empty")
	case !validOwner.MatchString(owner):
		return fmt.Errorf("repository owner %q is not a valid GitHub account name", owner)
	case name == "":
		return fmt.Errorf("repository name is empty")
	case name == "." || name == ".." || !validRepo.MatchString(name):
		return fmt.Errorf("repository name %q is not a valid GitHub repository name", name)
	}
	return nil
}
