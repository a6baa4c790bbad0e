package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopScoreHooks{}
	s.OnURLStart(ctx, "https://github.com/o/n")
	s.OnURLSkipped(ctx, "https://gitlab.com/o/n", errors.New("unsupported"))
	s.OnMetricError(ctx, "https://github.com/o/n", "bus_factor", errors.New("boom"))
	s.OnURLComplete(ctx, "https://github.com/o/n", 0.75, time.Second)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/repos/o/n/issues")
	h.OnResponse(ctx, "GET", "api.github.com", "/repos/o/n/issues", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/repos/o/n/issues", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Score().(NoopScoreHooks); !ok {
		t.Error("Score() should return NoopScoreHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customScore := &testScoreHooks{}
	SetScoreHooks(customScore)
	if Score() != customScore {
		t.Error("SetScoreHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Score().(NoopScoreHooks); !ok {
		t.Error("Reset() should restore NoopScoreHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testScoreHooks{}
	SetScoreHooks(custom)
	SetScoreHooks(nil)
	SetHTTPHooks(nil)

	if Score() != custom {
		t.Error("SetScoreHooks(nil) should be ignored")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}
}

type testScoreHooks struct{ NoopScoreHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
