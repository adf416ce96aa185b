package batch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

func newTestClient(t *testing.T) *vacefron.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/grave"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"grave is gone"}`))
		default:
			_, _ = w.Write([]byte("image:" + r.URL.RawQuery))
		}
	}))
	t.Cleanup(ts.Close)

	client := vacefron.New(vacefron.WithBaseURL(ts.URL+"/api"), vacefron.WithHTTPClient(ts.Client()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRunnerRun(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	runner := &Runner{Renderer: newTestClient(t), OutputDir: outputDir}

	jobs := []Job{
		{ID: "mind", Endpoint: "changemymind", Args: map[string]string{"text": "a b"}},
		{ID: "grave", Endpoint: "grave", Args: map[string]string{"user": "x"}},
		{ID: "card", Endpoint: "rankcard", Args: map[string]string{"username": "u", "avatar": "a", "xp-color": "zz0000",
			"level": "1", "rank": "1", "current-xp": "1", "next-level-xp": "2", "previous-level-xp": "0"}},
		{ID: "stonks", Endpoint: "stonks", Args: map[string]string{"user": "y"}, Output: "up.png"},
	}

	results, err := runner.Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	expected := []struct {
		status string
		kind   string
	}{
		{StatusOK, ""},
		{StatusFailed, "not_found"},
		{StatusFailed, "validation"},
		{StatusOK, ""},
	}
	for i, e := range expected {
		if results[i].Status != e.status || results[i].ErrorKind != e.kind {
			t.Errorf("Job %s: expected %s/%q, got %s/%q", results[i].ID, e.status, e.kind, results[i].Status, results[i].ErrorKind)
		}
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "mind.png"))
	if err != nil {
		t.Fatalf("Expected saved image: %v", err)
	}
	if string(data) != "image:text=a%20b" {
		t.Errorf("Unexpected image content %q", data)
	}
	if results[3].Path != filepath.Join(outputDir, "up.png") {
		t.Errorf("Expected explicit output path, got %s", results[3].Path)
	}
	if !strings.HasSuffix(results[0].URL, "/api/changemymind?text=a%20b") {
		t.Errorf("Expected validated URL, got %s", results[0].URL)
	}
}

func TestRunnerURLOnly(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "never")
	runner := &Runner{Renderer: newTestClient(t), OutputDir: outputDir, URLOnly: true}

	results, err := runner.Run(context.Background(), []Job{{ID: "a", Endpoint: "heaven", Args: map[string]string{"user": "x"}}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if results[0].Status != StatusOK || results[0].Path != "" {
		t.Errorf("Expected URL only result, got %+v", results[0])
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("Expected no output directory, got %v", err)
	}
}

func TestRunnerOutputStaysInDirectory(t *testing.T) {
	root := t.TempDir()
	outputDir := filepath.Join(root, "out")
	runner := &Runner{Renderer: newTestClient(t), OutputDir: outputDir}

	results, err := runner.Run(context.Background(), []Job{
		{ID: "escape", Endpoint: "heaven", Output: "../x.png", Args: map[string]string{"user": "x"}},
		{ID: "nested", Endpoint: "heaven", Output: "sub/n.png", Args: map[string]string{"user": "x"}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if results[0].Status != StatusFailed || results[0].ErrorKind != "validation" {
		t.Errorf("Expected validation failure, got %+v", results[0])
	}
	if _, err := os.Stat(filepath.Join(root, "x.png")); !os.IsNotExist(err) {
		t.Errorf("Expected nothing written outside the output directory, got %v", err)
	}
	if results[1].Status != StatusOK || results[1].Path != filepath.Join(outputDir, "sub", "n.png") {
		t.Errorf("Expected nested output saved, got %+v", results[1])
	}
}

func TestRunnerCanceled(t *testing.T) {
	runner := &Runner{Renderer: newTestClient(t), URLOnly: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runner.Run(ctx, []Job{{ID: "a", Endpoint: "heaven", Args: map[string]string{"user": "x"}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{&vacefron.Error{Kind: vacefron.KindBadRequest}, "bad_request"},
		{&vacefron.Error{Kind: vacefron.KindInternalServerError}, "internal_server_error"},
		{fmt.Errorf("wrapped: %w", &vacefron.Error{Kind: vacefron.KindHTTPError}), "http_error"},
		{&vacefron.ValidationError{Field: "xpcolor"}, "validation"},
		{&vacefron.DecodeError{Err: errors.New("bad")}, "decode"},
		{vacefron.ErrSessionClosed, "session_closed"},
		{context.DeadlineExceeded, "canceled"},
		{errors.New("connection refused"), "transport"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.expected {
			t.Errorf("ErrorKind(%v): expected %q, got %q", tt.err, tt.expected, got)
		}
	}
}
