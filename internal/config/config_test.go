package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VACEFRON_API_URL", "VACEFRON_TIMEOUT", "VACEFRON_USER_AGENT", "OLLAMA_MODEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.APIURL != vacefron.DefaultBaseURL {
		t.Errorf("Expected APIURL=%s, got %s", vacefron.DefaultBaseURL, cfg.APIURL)
	}
	if cfg.Timeout != vacefron.DefaultTimeout {
		t.Errorf("Expected Timeout=%s, got %s", vacefron.DefaultTimeout, cfg.Timeout)
	}
	if cfg.OllamaModel != "mistral-small3.2:24b" {
		t.Errorf("Expected default Ollama model, got %s", cfg.OllamaModel)
	}
}

func TestLoadTimeout(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration", value: "45s", expected: 45 * time.Second},
		{name: "seconds", value: "10", expected: 10 * time.Second},
		{name: "invalid", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VACEFRON_TIMEOUT", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.Timeout != tt.expected {
				t.Errorf("Expected Timeout=%s, got %s", tt.expected, cfg.Timeout)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("VACEFRON_API_URL", "")
	os.Unsetenv("VACEFRON_API_URL")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("VACEFRON_API_URL=http://localhost:9999/api\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	LoadDotEnv(path)
	t.Cleanup(func() { os.Unsetenv("VACEFRON_API_URL") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.APIURL != "http://localhost:9999/api" {
		t.Errorf("Expected APIURL from .env, got %s", cfg.APIURL)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}
