package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/config"
	"github.com/matzehuels/doghouse/pkg/datadog"
	"github.com/matzehuels/doghouse/pkg/httputil"
)

// newTestCLI builds a CLI whose client talks to the given handler, with the
// list cache in a per-test temp directory.
func newTestCLI(t *testing.T, handler http.Handler) *CLI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cache, err := httputil.NewCache(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	client, err := datadog.NewClient("test-api-key", "test-app-key", "datadoghq.com",
		datadog.WithBaseURL(srv.URL),
		datadog.WithRetry(1, time.Millisecond),
		datadog.WithCache(cache),
	)
	if err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.InfoLevel)
	c.client = client
	c.cfg = &config.Config{Site: "datadoghq.com"}
	return c
}

// requestRecorder collects method+path pairs across handler invocations.
type requestRecorder struct {
	mu   sync.Mutex
	seen []string
}

func (r *requestRecorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, req.Method+" "+req.URL.Path)
}

func (r *requestRecorder) contains(entry string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.seen {
		if s == entry {
			return true
		}
	}
	return false
}

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(os.Stderr, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"push", "fetch", "delete", "list", "compile", "view", "open", "validate", "cache", "completion"}
	got := map[string]bool{}
	for _, cmd := range root.Commands() {
		got[cmd.Name()] = true
	}

	for _, name := range want {
		if !got[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommand_Use(t *testing.T) {
	c := New(os.Stderr, log.InfoLevel)
	root := c.RootCommand()
	if root.Use != "doghouse" {
		t.Errorf("Use = %q, want doghouse", root.Use)
	}
}

func TestRenderDashboardTable(t *testing.T) {
	out := renderDashboardTable([]datadog.Summary{
		{ID: "abc-def-ghi", Title: "Service Overview", LayoutType: "ordered", URL: "/dashboard/abc-def-ghi/ovw"},
		{ID: "jkl-mno-pqr", Title: "SLO Board", LayoutType: "free"},
	})

	for _, want := range []string{"abc-def-ghi", "Service Overview", "SLO Board", "ordered", "/dashboard/abc-def-ghi/ovw", "URL"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"minutes", now.Add(-30 * time.Minute).Format(time.RFC3339), "m ago"},
		{"hours", now.Add(-5 * time.Hour).Format(time.RFC3339), "h ago"},
		{"days", now.Add(-3 * 24 * time.Hour).Format(time.RFC3339), "d ago"},
		{"unparseable", "last tuesday", "last tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatRelativeTime(tt.in)
			if !strings.Contains(got, tt.want) {
				t.Errorf("formatRelativeTime(%q) = %q, want suffix %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"title":"T","layout_type":"ordered","widgets":[{"definition":{"type":"note"}}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"layout_type":"diagonal"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, log.InfoLevel)

	if err := c.runValidate(context.Background(), []string{good}, nil, nil); err != nil {
		t.Errorf("valid template rejected: %v", err)
	}

	err := c.runValidate(context.Background(), []string{good, bad}, nil, nil)
	if err == nil {
		t.Fatal("expected error with one invalid template")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %v, want failure count", err)
	}
}

func TestRunCompile_ToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dash.jsonnet")
	if err := os.WriteFile(src, []byte(`{title: "Compiled", layout_type: "ordered", widgets: []}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "dash.json")

	c := New(os.Stderr, log.InfoLevel)
	ctx := withLogger(context.Background(), c.Logger)

	if err := c.runCompile(ctx, src, out, nil, nil); err != nil {
		t.Fatalf("runCompile() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Compiled"`) {
		t.Errorf("output missing compiled title: %s", data)
	}
}

func TestRunPush_DryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dash.json")
	if err := os.WriteFile(src, []byte(`{"title":"T","layout_type":"ordered","widgets":[{"definition":{"type":"note","content":"x"}}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, log.InfoLevel)
	ctx := withLogger(context.Background(), c.Logger)

	// Dry run needs no credentials and must not fail.
	if err := c.runPush(ctx, src, "", true, nil, nil); err != nil {
		t.Errorf("runPush(dry-run) failed: %v", err)
	}
}

// pushTemplate writes a pushable template carrying the given dashboard id.
func pushTemplate(t *testing.T, id string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "dash.json")
	body := fmt.Sprintf(`{"id":%q,"title":"T","layout_type":"ordered","widgets":[{"definition":{"type":"note","content":"x"}}]}`, id)
	if err := os.WriteFile(src, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return src
}

func TestRunPush_CreatesWhenIDStale(t *testing.T) {
	rec := &requestRecorder{}
	c := newTestCLI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/dashboard/abc-def-ghi":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"errors":["Dashboard not found"]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/dashboard":
			fmt.Fprint(w, `{"id":"new-abc-def","title":"T","url":"/dashboard/new-abc-def/t","layout_type":"ordered","widgets":[]}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	ctx := withLogger(context.Background(), c.Logger)

	src := pushTemplate(t, "abc-def-ghi")
	if err := c.runPush(ctx, src, "", false, nil, nil); err != nil {
		t.Fatalf("runPush() failed: %v", err)
	}

	if !rec.contains("POST /dashboard") {
		t.Errorf("stale id did not fall back to create; requests: %v", rec.seen)
	}
	if rec.contains("PUT /dashboard/abc-def-ghi") {
		t.Errorf("stale id was updated instead of recreated; requests: %v", rec.seen)
	}
}

func TestRunPush_UpdatesWhenIDExists(t *testing.T) {
	rec := &requestRecorder{}
	c := newTestCLI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/dashboard/abc-def-ghi":
			fmt.Fprint(w, `{"id":"abc-def-ghi","title":"T","layout_type":"ordered","widgets":[]}`)
		case r.Method == http.MethodPut && r.URL.Path == "/dashboard/abc-def-ghi":
			fmt.Fprint(w, `{"id":"abc-def-ghi","title":"T","url":"/dashboard/abc-def-ghi/t","layout_type":"ordered","widgets":[]}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	ctx := withLogger(context.Background(), c.Logger)

	src := pushTemplate(t, "abc-def-ghi")
	if err := c.runPush(ctx, src, "", false, nil, nil); err != nil {
		t.Fatalf("runPush() failed: %v", err)
	}

	if !rec.contains("PUT /dashboard/abc-def-ghi") {
		t.Errorf("existing id was not updated; requests: %v", rec.seen)
	}
	if rec.contains("POST /dashboard") {
		t.Errorf("existing id was recreated; requests: %v", rec.seen)
	}
}

func TestRunPush_DryRunProbesExistence(t *testing.T) {
	rec := &requestRecorder{}
	c := newTestCLI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		if r.Method != http.MethodGet {
			t.Errorf("dry run issued a write: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"errors":["Dashboard not found"]}`)
	}))
	ctx := withLogger(context.Background(), c.Logger)

	src := pushTemplate(t, "abc-def-ghi")
	if err := c.runPush(ctx, src, "", true, nil, nil); err != nil {
		t.Fatalf("runPush(dry-run) failed: %v", err)
	}

	if !rec.contains("GET /dashboard/abc-def-ghi") {
		t.Errorf("dry run never probed for the id; requests: %v", rec.seen)
	}
}

func TestRunPush_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dash.json")
	if err := os.WriteFile(src, []byte(`{"widgets":"nope"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, log.InfoLevel)
	ctx := withLogger(context.Background(), c.Logger)

	if err := c.runPush(ctx, src, "", true, nil, nil); err == nil {
		t.Error("expected validation failure before any upload")
	}
}

func TestIDArgumentOptional(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)

	for _, cmd := range []*cobra.Command{c.fetchCommand(), c.deleteCommand(), c.openCommand()} {
		if err := cmd.Args(cmd, nil); err != nil {
			t.Errorf("%s rejects zero arguments: %v", cmd.Name(), err)
		}
		if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
			t.Errorf("%s accepts two arguments", cmd.Name())
		}
	}
}

func TestRenderTemplatePreview(t *testing.T) {
	out := renderTemplatePreview(map[string]any{
		"title":       "Service Overview",
		"description": "On-call landing page",
		"layout_type": "ordered",
		"widgets": []any{
			map[string]any{"definition": map[string]any{"type": "timeseries", "title": "CPU"}},
			map[string]any{"definition": map[string]any{"type": "note"}},
		},
	})

	for _, want := range []string{
		"Service Overview",
		"On-call landing page",
		"ordered layout · 2 widgets",
		"[timeseries]",
		"CPU",
		"[note]",
		"(untitled)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestRunView_LocalPreview(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dash.json")
	if err := os.WriteFile(src, []byte(`{"title":"T","layout_type":"ordered","widgets":[{"definition":{"type":"note","content":"x"}}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.InfoLevel)
	ctx := withLogger(context.Background(), c.Logger)

	// Preview needs no credentials and must not fail.
	if err := c.runView(ctx, src, nil, nil); err != nil {
		t.Errorf("runView() failed: %v", err)
	}

	if err := c.runView(ctx, filepath.Join(dir, "missing.json"), nil, nil); err == nil {
		t.Error("expected error for a missing template")
	}
}
