package github

import (
	"net/http"
	"time"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/observability"
)

// hookTransport reports every round trip to the registered HTTP hooks.
type hookTransport struct {
	base http.RoundTripper
}

func (t hookTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return resp, nil
}
