package score

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/identity"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/metrics"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/observability"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultJobs       = 4
	DefaultURLTimeout = 2 * time.Minute
)

// Resolver maps an input URL to a repository. *identity.Resolver
// satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (identity.Identity, error)
}

// Computer computes the sub-scores of a repository. *metrics.Calculator
// satisfies it.
type Computer interface {
	Compute(ctx context.Context, id identity.Identity) metrics.Result
}

// Options configures an Engine.
type Options struct {
	Jobs       int           // URLs scored at once
	URLTimeout time.Duration // budget for one URL, all metrics included
	Logger     *log.Logger
}

// Engine scores lists of URLs.
type Engine struct {
	resolver Resolver
	computer Computer
	jobs     int
	timeout  time.Duration
	logger   *log.Logger
}

// NewEngine returns an Engine. Zero option fields take their defaults.
func NewEngine(resolver Resolver, computer Computer, opts Options) *Engine {
	if opts.Jobs <= 0 {
		opts.Jobs = DefaultJobs
	}
	if opts.URLTimeout <= 0 {
		opts.URLTimeout = DefaultURLTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Engine{
		resolver: resolver,
		computer: computer,
		jobs:     opts.Jobs,
		timeout:  opts.URLTimeout,
		logger:   opts.Logger,
	}
}

// Score resolves and scores every URL. The returned records follow input
// order with unresolvable URLs left out; call [Rank] to sort them. The only
// error is cancellation of ctx.
func (e *Engine) Score(ctx context.Context, urls []string) ([]Record, error) {
	results := make([]*Record, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, raw := range urls {
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.scoreOne(gctx, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(urls))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

// scoreOne returns nil when raw does not resolve to a repository.
func (e *Engine) scoreOne(ctx context.Context, raw string) *Record {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	hooks := observability.Score()
	hooks.OnURLStart(ctx, raw)
	start := time.Now()

	id, err := e.resolver.Resolve(ctx, raw)
	if err != nil {
		hooks.OnURLSkipped(ctx, raw, err)
		if errors.IsMiss(err) {
			e.logger.Debug("skipping url", "url", raw, "reason", errors.UserMessage(err))
		} else {
			e.logger.Warn("skipping url", "url", raw, "err", err)
		}
		return nil
	}
	e.logger.Debug("resolved", "url", raw, "repo", id.String(), "kind", id.Kind)

	res := e.computer.Compute(ctx, id)
	for _, name := range metrics.Names {
		if err, ok := res.Errors[name]; ok {
			hooks.OnMetricError(ctx, raw, string(name), err)
			e.logger.Debug("metric failed", "url", raw, "metric", name, "err", err)
		}
	}

	rec := NewRecord(raw, res.Scores)
	hooks.OnURLComplete(ctx, raw, rec.NetScore, time.Since(start))
	return &rec
}
