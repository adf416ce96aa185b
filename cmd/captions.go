package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vacefron/vacefron-go/internal/config"
	"github.com/vacefron/vacefron-go/internal/gemini"
	"github.com/vacefron/vacefron-go/internal/ollama"
	"github.com/vacefron/vacefron-go/internal/openai"
	"github.com/vacefron/vacefron-go/internal/providers"
)

// captionFlags lets text endpoints ask an LLM for their caption
type captionFlags struct {
	prompt      string
	provider    string
	model       string
	temperature float64
}

func (c *captionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.prompt, "caption-prompt", "", "Ask an LLM to write the text about this idea (used when --text is empty)")
	cmd.Flags().StringVar(&c.provider, "provider", "ollama", "Caption provider (ollama, openai, or gemini)")
	cmd.Flags().StringVar(&c.model, "model", "", "Model name (defaults to provider's default)")
	cmd.Flags().Float64Var(&c.temperature, "temperature", 0.9, "Sampling temperature for the caption")
}

func (c *captionFlags) caption(ctx context.Context, cfg *config.Config, endpoint string) (string, error) {
	provider, model, err := newProvider(cfg, c.provider)
	if err != nil {
		return "", err
	}
	if c.model != "" {
		model = c.model
	}

	text, err := provider.Caption(ctx, providers.Config{
		Model:       model,
		Temperature: c.temperature,
		Prompt:      providers.BuildPrompt(endpoint, c.prompt),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate caption with %s: %w", c.provider, err)
	}
	return text, nil
}

// newProvider returns the named provider and its default model
func newProvider(cfg *config.Config, name string) (providers.Provider, string, error) {
	switch name {
	case "ollama":
		return ollama.New(cfg.OllamaURL), cfg.OllamaModel, nil
	case "openai":
		return openai.New(cfg.OpenAIURL, cfg.OpenAIKey), cfg.OpenAIModel, nil
	case "gemini":
		return gemini.New(cfg.GeminiKey), cfg.GeminiModel, nil
	default:
		return nil, "", fmt.Errorf("unsupported provider: %s", name)
	}
}
