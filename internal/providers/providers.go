package providers

import (
	"context"
	"fmt"
	"strings"
)

// Config represents a single caption request to an LLM provider
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
}

// Provider writes meme captions from a prompt
type Provider interface {
	Caption(ctx context.Context, config Config) (string, error)
}

const (
	// SystemPrompt is sent as the system message where the provider supports one
	SystemPrompt = "You write short, punchy captions for meme images. You never explain the joke."

	// MaxOutputTokens caps the provider reply
	MaxOutputTokens = 64

	// maxCaptionLength keeps captions short enough to fit on the rendered image
	maxCaptionLength = 120
)

// BuildPrompt turns the user's idea into an instruction for the given
// endpoint's caption.
func BuildPrompt(endpoint, idea string) string {
	return fmt.Sprintf(`Write the caption for a %q meme image about: %s

Rules:
- Reply with the caption only, no quotes and no explanation.
- One line, at most %d characters.`, endpoint, strings.TrimSpace(idea), maxCaptionLength)
}

// CleanCaption normalizes a provider reply into a single caption line.
func CleanCaption(reply string) (string, error) {
	caption := strings.TrimSpace(reply)
	if i := strings.IndexByte(caption, '\n'); i >= 0 {
		caption = strings.TrimSpace(caption[:i])
	}
	caption = strings.Trim(caption, "\"'`")
	caption = strings.TrimSpace(caption)

	if caption == "" {
		return "", fmt.Errorf("provider returned an empty caption")
	}
	if runes := []rune(caption); len(runes) > maxCaptionLength {
		caption = string(runes[:maxCaptionLength])
	}
	return caption, nil
}
