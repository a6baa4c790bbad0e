package cli

import (
	"context"
	"time"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

// httpLogHooks logs every outgoing request at debug level through the
// logger attached to the request context.
type httpLogHooks struct{}

func (httpLogHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("http request", "method", method, "host", host, "path", path)
}

func (httpLogHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("http response",
		"method", method, "host", host, "path", path,
		"status", status, "took", d.Round(time.Millisecond))
}

func (httpLogHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

// scoreLogHooks reports per-URL progress. Skips and metric failures are
// expected and stay at debug level.
type scoreLogHooks struct{}

func (scoreLogHooks) OnURLStart(ctx context.Context, url string) {
	loggerFromContext(ctx).Debug("scoring", "url", url)
}

func (scoreLogHooks) OnURLSkipped(ctx context.Context, url string, err error) {
	loggerFromContext(ctx).Debug("skipped", "url", url, "code", errors.GetCode(err))
}

func (scoreLogHooks) OnMetricError(ctx context.Context, url, metric string, err error) {
	loggerFromContext(ctx).Debug("metric fell back to 0", "url", url, "metric", metric, "code", errors.GetCode(err))
}

func (scoreLogHooks) OnURLComplete(ctx context.Context, url string, netScore float64, d time.Duration) {
	loggerFromContext(ctx).Info("scored", "url", url, "net", netScore, "took", d.Round(time.Millisecond))
}
