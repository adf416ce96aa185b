package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vacefron/vacefron-go/internal/providers"
)

func TestCaption(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Go is fun"}}]}`))
	}))
	defer ts.Close()

	caption, err := New(ts.URL, "test-key").Caption(context.Background(), providers.Config{Model: "gpt-4o", Prompt: "p"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if caption != "Go is fun" {
		t.Errorf("Expected caption, got %q", caption)
	}
}

func TestCaptionNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	if _, err := New(ts.URL, "test-key").Caption(context.Background(), providers.Config{}); err == nil {
		t.Error("Expected error when no choices are returned")
	}
}

func TestCaptionMissingKey(t *testing.T) {
	if _, err := New("http://127.0.0.1:0", "").Caption(context.Background(), providers.Config{}); err == nil {
		t.Error("Expected error when API key is missing")
	}
}
