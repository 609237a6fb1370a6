package rendering

import "testing"

func TestValidMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Plain text",
			input:    "just a plain reply",
			expected: true,
		},
		{
			name:     "Balanced emphasis",
			input:    "*italic* and **bold** together",
			expected: true,
		},
		{
			name:     "Dangling italic star",
			input:    "this is *oops unclosed",
			expected: false,
		},
		{
			name:     "Asymmetric bold span",
			input:    "a **warning* for you",
			expected: false,
		},
		{
			name:     "Snake case underscores ignored",
			input:    "call do_the_thing twice",
			expected: true,
		},
		{
			name:     "Balanced underscore emphasis",
			input:    "_gently_ noted",
			expected: true,
		},
		{
			name:     "Dangling underscore",
			input:    "_never finished",
			expected: false,
		},
		{
			name:     "Open paren outside link",
			input:    "see [docs](https://example.com) and (note here",
			expected: false,
		},
		{
			name:     "Well formed link",
			input:    "see [docs](https://example.com) here",
			expected: true,
		},
		{
			name:     "Stray closing paren",
			input:    "as shown) above",
			expected: false,
		},
		{
			name:     "Unmatched bracket",
			input:    "list [one, two",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ValidMarkup(tt.input); result != tt.expected {
				t.Errorf("ValidMarkup(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Asymmetric bold closed",
			input:    "a **warning* for you",
			expected: "a **warning** for you",
		},
		{
			name:     "Asymmetric italic promoted",
			input:    "a *warning** for you",
			expected: "a **warning** for you",
		},
		{
			name:     "Star run collapsed",
			input:    "***very*** strong",
			expected: "**very** strong",
		},
		{
			name:     "Dangling italic dropped",
			input:    "see *bold and more text",
			expected: "see bold and more text",
		},
		{
			name:     "Dangling bold dropped",
			input:    "**open only here",
			expected: "open only here",
		},
		{
			name:     "Dangling underscore dropped",
			input:    "trailing_ emphasis",
			expected: "trailing emphasis",
		},
		{
			name:     "Snake case survives",
			input:    "keep do_the_thing intact",
			expected: "keep do_the_thing intact",
		},
		{
			name:     "Stray closing paren dropped",
			input:    "as shown) above",
			expected: "as shown above",
		},
		{
			name:     "Stray opening paren dropped",
			input:    "look (here we stop",
			expected: "look here we stop",
		},
		{
			name:     "Unmatched bracket dropped",
			input:    "list [one, two",
			expected: "list one, two",
		},
		{
			name:     "Valid link untouched",
			input:    "see [docs](https://example.com) here",
			expected: "see [docs](https://example.com) here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeMarkup(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeMarkup(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
			if !ValidMarkup(result) {
				t.Errorf("sanitized %q still fails validation", result)
			}
		})
	}
}

func TestSanitizeOutsideSpans(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Inline code content untouched",
			input:    "result of `f(x` is *unknown",
			expected: "result of `f(x` is unknown",
		},
		{
			name:     "Fence content untouched",
			input:    "look:\n\n```\na * b ( c\n```\n\nand *done",
			expected: "look:\n\n```\na * b ( c\n```\n\nand done",
		},
		{
			name:     "Clean chunk passes through",
			input:    "nothing to repair in `code` here",
			expected: "nothing to repair in `code` here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeOutsideSpans(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeOutsideSpans(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
