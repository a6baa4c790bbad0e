// Package git shallow-clones repositories into scratch directories.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

// runCommand executes git. Replaced in tests.
var runCommand = func(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Cloner checks out repositories into temporary directories.
type Cloner struct {
	depth int
}

// NewCloner returns a Cloner that fetches depth commits of history. A depth
// of 0 clones the full history.
func NewCloner(depth int) *Cloner {
	return &Cloner{depth: depth}
}

// Checkout clones url into a fresh temporary directory, calls fn with its
// path and removes the directory afterwards, whether or not the clone or fn
// failed.
func (c *Cloner) Checkout(ctx context.Context, url string, fn func(dir string) error) error {
	scratch, err := os.MkdirTemp("", "pkgscore-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create scratch dir")
	}
	defer os.RemoveAll(scratch)

	dir := filepath.Join(scratch, "repo")
	args := []string{"clone", "--quiet", "--single-branch"}
	if c.depth > 0 {
		args = append(args, "--depth", strconv.Itoa(c.depth))
	}
	args = append(args, "--", url, dir)

	if err := runCommand(ctx, args...); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "clone %s", url)
	}
	return fn(dir)
}
