package providers

import (
	"strings"
	"testing"
)

func TestCleanCaption(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected string
		wantErr  bool
	}{
		{name: "plain", reply: "Tabs are better", expected: "Tabs are better"},
		{name: "quoted", reply: "  \"Tabs are better\"\n", expected: "Tabs are better"},
		{name: "first line only", reply: "Tabs are better\nHere is why...", expected: "Tabs are better"},
		{name: "empty", reply: "  \n ", wantErr: true},
		{name: "only quotes", reply: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CleanCaption(tt.reply)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %q", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestCleanCaptionTruncates(t *testing.T) {
	result, err := CleanCaption(strings.Repeat("é", maxCaptionLength+20))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := len([]rune(result)); got != maxCaptionLength {
		t.Errorf("Expected %d runes, got %d", maxCaptionLength, got)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("changemymind", "  pineapple on pizza ")
	if !strings.Contains(prompt, `"changemymind"`) {
		t.Errorf("Expected endpoint in prompt, got %s", prompt)
	}
	if !strings.Contains(prompt, "about: pineapple on pizza\n") {
		t.Errorf("Expected trimmed idea in prompt, got %s", prompt)
	}
}
