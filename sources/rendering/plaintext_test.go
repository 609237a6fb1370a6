package rendering

import (
	"strings"
	"testing"
)

func TestDegrade(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Fenced code framed",
			input:    "```go\nfmt.Println(1)\n```",
			expected: "[ CODE ]\nfmt.Println(1)\n[ CODE ]",
		},
		{
			name:     "Inline code quoted",
			input:    "use `go vet` before pushing",
			expected: "use 「go vet」 before pushing",
		},
		{
			name:     "Link keeps label",
			input:    "see [the docs](https://example.com) please",
			expected: "see 🔗 the docs please",
		},
		{
			name:     "Header marked",
			input:    "## Setup\nfirst step",
			expected: "➤ Setup\nfirst step",
		},
		{
			name:     "Quote marked",
			input:    "> so it goes",
			expected: "💬 so it goes",
		},
		{
			name:     "Bullets normalized",
			input:    "- one\n* two\n+ three",
			expected: "• one\n• two\n• three",
		},
		{
			name:     "Ordered list normalized",
			input:    "1. first\n2) second",
			expected: "○ first\n○ second",
		},
		{
			name:     "Bold bracketed",
			input:    "this is **critical** now",
			expected: "this is 【critical】 now",
		},
		{
			name:     "Italic stars stripped",
			input:    "a *gentle* nudge",
			expected: "a gentle nudge",
		},
		{
			name:     "Emphasis underscores dropped, snake_case kept",
			input:    "_run_ the build_script here",
			expected: "run the build_script here",
		},
		{
			name:     "Excess gaps collapsed",
			input:    "first\n\n\n\nsecond",
			expected: "first\n\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Degrade(tt.input); result != tt.expected {
				t.Errorf("Degrade(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDegradeStripsAllStars(t *testing.T) {
	inputs := []string{
		"",
		"***[((`",
		"*_ mangled _* soup **",
		"* leading star without a list",
	}

	for _, input := range inputs {
		result := Degrade(input)
		if strings.ContainsRune(result, '*') {
			t.Errorf("Degrade(%q) = %q, stars must never survive", input, result)
		}
	}
}
