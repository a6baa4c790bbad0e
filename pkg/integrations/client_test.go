package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient(map[string]string{"Accept": "application/json"})

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.Timeout != httpTimeout {
		t.Errorf("timeout = %v, want %v", client.http.Timeout, httpTimeout)
	}
	if client.headers["Accept"] != "application/json" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil)
	client.http = server.Client()

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var gotOverride, gotDefault string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOverride = r.Header.Get("X-Override")
		gotDefault = r.Header.Get("X-Default")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(map[string]string{"X-Override": "default", "X-Default": "kept"})
	client.http = server.Client()

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotOverride != "overridden" {
		t.Errorf("X-Override = %q, want %q", gotOverride, "overridden")
	}
	if gotDefault != "kept" {
		t.Errorf("X-Default = %q, want %q", gotDefault, "kept")
	}
}

func TestClientGetErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    ErrNotFound,
		},
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			want:    ErrNetwork,
		},
		{
			name:    "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
			want:    ErrNetwork,
		},
		{
			name:    "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("{not json")) },
			want:    ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(nil)
			client.http = server.Client()

			var resp map[string]any
			err := client.Get(context.Background(), server.URL, &resp)
			if !errors.Is(err, tt.want) {
				t.Errorf("Get() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClientGetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	var resp map[string]any
	err := NewClient(nil).Get(context.Background(), url, &resp)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"git+https://github.com/owner/name.git", "https://github.com/owner/name"},
		{"https://github.com/owner/name", "https://github.com/owner/name"},
		{"git@github.com:owner/name.git", "https://github.com/owner/name"},
		{"git://github.com/owner/name.git", "https://github.com/owner/name"},
		{"git+ssh://git@github.com/owner/name.git", "https://github.com/owner/name"},
		{"https://gitlab.com/owner/name.git", "https://gitlab.com/owner/name"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.in); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
