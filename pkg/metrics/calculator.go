package metrics

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/identity"
)

// Name identifies one metric.
type Name string

const (
	NameRampUp         Name = "ramp_up"
	NameCorrectness    Name = "correctness"
	NameBusFactor      Name = "bus_factor"
	NameResponsiveness Name = "responsiveness"
	NameLicense        Name = "license"
)

// Names lists every metric in report order.
var Names = []Name{NameRampUp, NameCorrectness, NameBusFactor, NameResponsiveness, NameLicense}

// responsivenessWindow is how far back pull request activity counts.
const responsivenessWindow = 365 * 24 * time.Hour

// Source is the repository data the metrics read. *github.Gateway
// satisfies it.
type Source interface {
	PageCount(ctx context.Context, owner, name, path string) (int, error)
	MentionableUsers(ctx context.Context, owner, name string) (int, error)
	PullsUpdatedSince(ctx context.Context, owner, name string, since time.Time) (int, error)
	License(ctx context.Context, owner, name string) (string, error)
}

// Cloner provides a scratch checkout of a repository for the duration of fn.
type Cloner interface {
	Checkout(ctx context.Context, url string, fn func(dir string) error) error
}

// Scores holds the five sub-scores of one repository, each in [0,1].
type Scores struct {
	RampUp         float64
	Correctness    float64
	BusFactor      float64
	Responsiveness float64
	License        float64
}

// Result is the outcome of [Calculator.Compute]. Errors holds the cause of
// every metric that fell back to 0.
type Result struct {
	Scores
	Errors map[Name]error
}

// Calculator computes metrics for repositories. It is safe for concurrent
// use.
type Calculator struct {
	src    Source
	cloner Cloner
	now    func() time.Time
}

// NewCalculator returns a Calculator reading from src and cloning with
// cloner.
func NewCalculator(src Source, cloner Cloner) *Calculator {
	return &Calculator{src: src, cloner: cloner, now: time.Now}
}

// Compute runs every metric for id concurrently. A failing metric scores 0
// and never affects the others.
func (c *Calculator) Compute(ctx context.Context, id identity.Identity) Result {
	type outcome struct {
		score float64
		err   error
	}
	out := make([]outcome, len(Names))

	// A plain group: one metric failing must not cancel its siblings.
	var g errgroup.Group
	for i, name := range Names {
		i, name := i, name
		g.Go(func() error {
			v, err := c.Metric(ctx, name, id)
			if err != nil {
				v = 0
			}
			out[i] = outcome{Clamp(v), err}
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Errors: make(map[Name]error)}
	fields := []*float64{&res.RampUp, &res.Correctness, &res.BusFactor, &res.Responsiveness, &res.License}
	for i, o := range out {
		*fields[i] = o.score
		if o.err != nil {
			res.Errors[Names[i]] = o.err
		}
	}
	return res
}

// Metric computes a single metric by name.
func (c *Calculator) Metric(ctx context.Context, name Name, id identity.Identity) (float64, error) {
	switch name {
	case NameRampUp:
		return c.RampUp(ctx, id)
	case NameCorrectness:
		return c.Correctness(ctx, id)
	case NameBusFactor:
		return c.BusFactor(ctx, id)
	case NameResponsiveness:
		return c.Responsiveness(ctx, id)
	case NameLicense:
		return c.License(ctx, id)
	}
	return 0, nil
}

// RampUp clones the repository and scores its README length.
func (c *Calculator) RampUp(ctx context.Context, id identity.Identity) (float64, error) {
	var lines int
	err := c.cloner.Checkout(ctx, id.CanonicalURL(), func(dir string) error {
		var err error
		lines, err = CountReadmeLines(dir)
		return err
	})
	if err != nil {
		return 0, err
	}
	return RampUp(lines), nil
}

// Correctness compares closed and total issue counts. GitHub lists pull
// requests as issues, so they are subtracted from both.
func (c *Calculator) Correctness(ctx context.Context, id identity.Identity) (float64, error) {
	paths := []string{"issues?state=all", "pulls?state=all", "issues?state=closed", "pulls?state=closed"}
	counts := make([]int, len(paths))
	for i, p := range paths {
		n, err := c.src.PageCount(ctx, id.Owner, id.Name, p)
		if err != nil {
			return 0, err
		}
		counts[i] = n
	}
	return Correctness(counts[0]-counts[1], counts[2]-counts[3]), nil
}

// BusFactor scores the number of mentionable users.
func (c *Calculator) BusFactor(ctx context.Context, id identity.Identity) (float64, error) {
	n, err := c.src.MentionableUsers(ctx, id.Owner, id.Name)
	if err != nil {
		return 0, err
	}
	return BusFactor(n), nil
}

// Responsiveness scores pull request activity over the last year.
func (c *Calculator) Responsiveness(ctx context.Context, id identity.Identity) (float64, error) {
	n, err := c.src.PullsUpdatedSince(ctx, id.Owner, id.Name, c.now().Add(-responsivenessWindow))
	if err != nil {
		return 0, err
	}
	return Responsiveness(n), nil
}

// License scores the detected SPDX license.
func (c *Calculator) License(ctx context.Context, id identity.Identity) (float64, error) {
	spdx, err := c.src.License(ctx, id.Owner, id.Name)
	if err != nil {
		return 0, err
	}
	return Compatibility(spdx), nil
}

// CountReadmeLines counts the lines of the first top-level file in dir whose
// name starts with "readme", ignoring case. A missing README counts as 0.
// A final line without a trailing newline still counts.
func CountReadmeLines(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(strings.ToLower(e.Name()), "readme") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return 0, err
		}
		n := bytes.Count(data, []byte{'\n'})
		if len(data) > 0 && data[len(data)-1] != '\n' {
			n++
		}
		return n, nil
	}
	return 0, nil
}
