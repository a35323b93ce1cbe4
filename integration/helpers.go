//go:build integration

package integration

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// fakeJules serves canned pages for /sources and /sessions and records
// every request it sees.
type fakeJules struct {
	mu       sync.Mutex
	requests []string
	apiKeys  []string
	slack    []string
	server   *httptest.Server
}

func newFakeJules(t *testing.T) *fakeJules {
	t.Helper()
	f := &fakeJules{}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeJules) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/slack" {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.slack = append(f.slack, string(body))
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
	f.apiKeys = append(f.apiKeys, r.Header.Get("x-goog-api-key"))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := strings.TrimPrefix(r.URL.Path, "/v1alpha")
	switch {
	case path == "/sources":
		fmt.Fprint(w, `{"sources":[
			{"name":"sources/github/acme/web","githubRepo":{"fullName":"acme/web"}},
			{"name":"sources/1","githubRepo":{"fullName":"github.com/OWNER/REPO"}}
		]}`)
	case path == "/sessions" && r.URL.Query().Get("pageToken") == "":
		fmt.Fprint(w, `{"sessions":[
			{"id":"a","title":"Nightly","prompt":"Run tests","createTime":"2024-01-01T00:00:00Z","sourceContext":{"source":"sources/1"}},
			{"id":"b","title":"","prompt":"Fix bug","createTime":"2024-01-01T00:00:00Z","sourceContext":{"source":"sources/1"}}
		],"nextPageToken":"page2"}`)
	case path == "/sessions":
		fmt.Fprint(w, `{"sessions":[
			{"id":"c","title":"Nightly","prompt":"Run tests","createTime":"2024-01-02T00:00:00Z","sourceContext":{"source":"sources/1"}},
			{"id":"d","title":"Other repo","prompt":"x","createTime":"2024-01-02T00:00:00Z","sourceContext":{"source":"sources/github/acme/web"}}
		]}`)
	case path == "/sessions/a" && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusOK)
	case path == "/sessions/a":
		fmt.Fprint(w, `{"id":"a","title":"Nightly","prompt":"Run <tests>"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"not found"}}`)
	}
}

// SlackPosts returns the bodies posted to the webhook path.
func (f *fakeJules) SlackPosts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.slack...)
}

func (f *fakeJules) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// writeConfig points the CLI at the fake server
func writeConfig(t *testing.T, baseURL, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `[general]
env_file = "` + filepath.Join(dir, ".env") + `"

[api]
base_url = "` + baseURL + `/v1alpha"
timeout_seconds = 5
` + extra

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// cliEnv returns an environment without any inherited Jules variables
func cliEnv(vars ...string) []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "JULES_") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, vars...)
}
