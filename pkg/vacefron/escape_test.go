package vacefron

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "space", input: "a b", expected: "a%20b"},
		{name: "percent", input: "100%", expected: "100%25"},
		{name: "caret uses modifier letter", input: "^", expected: "%CB%86"},
		{name: "copyright sign", input: "©", expected: "%C2%A9"},
		{name: "underscore and punctuation", input: "a_b-c.d", expected: "a%5Fb%2Dc%2Ed"},
		{name: "url characters", input: "https://x.y/?a=b&c", expected: "https%3A%2F%2Fx%2Ey%2F?a%3Db%26c"},
		{name: "quotes", input: `"it's"`, expected: "%22it%27s%22"},
		{name: "unmapped runes unchanged", input: "héllo wörld ~", expected: "héllo%20wörld%20~"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Escape(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestEscapeEveryMappedRune(t *testing.T) {
	for r, rep := range replacements {
		if got := Escape(string(r)); got != rep {
			t.Errorf("Expected %q for %q, got %q", rep, r, got)
		}
	}
}

func TestEscapeLeavesUnmappedTextAlone(t *testing.T) {
	input := "ABCxyz0123456789?~[]{}<>|\\`éü日本"
	for _, r := range input {
		if _, ok := replacements[r]; ok {
			t.Fatalf("test input contains mapped rune %q", r)
		}
	}
	if got := Escape(input); got != input {
		t.Errorf("Expected input unchanged, got %q", got)
	}
}

func TestEscapeRemovesMappedRunes(t *testing.T) {
	input := "Hello, world! (100% sure) ^_^ © 2024 a+b=c; x:y @me #tag $5 *star* 'q' \"dq\" /path & more."
	result := Escape(input)

	for r := range replacements {
		if r == '%' {
			// every replacement starts with '%'
			continue
		}
		if strings.ContainsRune(result, r) {
			t.Errorf("Expected %q to be escaped in %q", r, result)
		}
	}
	if strings.Count(result, "%25") != 1 {
		t.Errorf("Expected exactly one escaped percent sign, got %q", result)
	}
}

func TestRequote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "space", input: "/npc?text1=a b&text2=c", expected: "/npc?text1=a%20b&text2=c"},
		{name: "existing escapes kept", input: "/water?text=a%20b%CB%86", expected: "/water?text=a%20b%CB%86"},
		{name: "lowercase escapes kept", input: "/x?a=%c3%a9", expected: "/x?a=%c3%a9"},
		{name: "non-ascii", input: "/x?t=é", expected: "/x?t=%C3%A9"},
		{name: "lone percent", input: "/x?t=100%", expected: "/x?t=100%25"},
		{name: "percent without hex", input: "/x?t=%zz", expected: "/x?t=%25zz"},
		{name: "control and quote", input: "/x?t=\"a\tb\"", expected: "/x?t=%22a%09b%22"},
		{name: "delimiters kept", input: "https://h.example/a?u=https://c.example/p.png&x=1", expected: "https://h.example/a?u=https://c.example/p.png&x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requote(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
