package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// Config holds settings read from the environment. Command flags override
// individual fields after Load.
type Config struct {
	APIURL    string
	Timeout   time.Duration
	UserAgent string

	OllamaURL   string
	OllamaModel string
	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// LoadDotEnv loads .env files into the environment. A missing file is not
// an error.
func LoadDotEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:      getEnv("VACEFRON_API_URL", vacefron.DefaultBaseURL),
		Timeout:     vacefron.DefaultTimeout,
		UserAgent:   getEnv("VACEFRON_USER_AGENT", "vacefron-go"),
		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "mistral-small3.2:24b"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIURL:   getEnv("OPENAI_URL", "https://api.openai.com"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	if v := os.Getenv("VACEFRON_TIMEOUT"); v != "" {
		timeout, err := parseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VACEFRON_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// parseTimeout accepts a Go duration ("45s") or a number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a duration nor a number of seconds", v)
	}
	return time.Duration(secs) * time.Second, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
