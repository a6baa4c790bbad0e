// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks without depending on a
// particular backend. The CLI registers logger-backed implementations at
// startup; everything else sees no-op defaults.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetHTTPHooks(&myHTTPHooks{})
//	observability.SetScoreHooks(&myScoreHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Score().OnURLStart(ctx, url)
//	// ... resolve and compute ...
//	observability.Score().OnURLComplete(ctx, url, netScore, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Score Hooks
// =============================================================================

// ScoreHooks receives events from the scoring engine.
type ScoreHooks interface {
	// OnURLStart records that work on an input URL began.
	OnURLStart(ctx context.Context, url string)

	// OnURLSkipped records a URL that could not be resolved to a repository.
	OnURLSkipped(ctx context.Context, url string, err error)

	// OnMetricError records a metric that fell back to 0.
	OnMetricError(ctx context.Context, url, metric string, err error)

	// OnURLComplete records a scored URL.
	OnURLComplete(ctx context.Context, url string, netScore float64, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScoreHooks is a no-op implementation of ScoreHooks.
type NoopScoreHooks struct{}

func (NoopScoreHooks) OnURLStart(context.Context, string)                             {}
func (NoopScoreHooks) OnURLSkipped(context.Context, string, error)                    {}
func (NoopScoreHooks) OnMetricError(context.Context, string, string, error)           {}
func (NoopScoreHooks) OnURLComplete(context.Context, string, float64, time.Duration) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scoreHooks ScoreHooks = NoopScoreHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetScoreHooks registers custom scoring hooks.
// This should be called once at application startup before scoring starts.
func SetScoreHooks(h ScoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scoreHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Score returns the registered scoring hooks.
func Score() ScoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scoreHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scoreHooks = NoopScoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
