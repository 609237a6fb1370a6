package rendering

import (
	"strings"
	"testing"
)

func TestExtractSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		spans []string
	}{
		{
			name:  "Fenced block",
			input: "before\n```go\nfmt.Println(\"hi\")\n```\nafter",
			spans: []string{"```go\nfmt.Println(\"hi\")\n```"},
		},
		{
			name:  "Inline code",
			input: "run `go build` now",
			spans: []string{"`go build`"},
		},
		{
			name:  "Fence with inner backticks is one span",
			input: "```\nuse `x` here\n```",
			spans: []string{"```\nuse `x` here\n```"},
		},
		{
			name:  "Two fences",
			input: "```\na\n```\ntext\n```\nb\n```",
			spans: []string{"```\na\n```", "```\nb\n```"},
		},
		{
			name:  "No spans",
			input: "plain text only",
			spans: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked, table := ExtractSpans(tt.input)

			if len(table) != len(tt.spans) {
				t.Fatalf("got %d spans, expected %d", len(table), len(tt.spans))
			}
			for _, span := range tt.spans {
				found := false
				for _, original := range table {
					if original == span {
						found = true
					}
				}
				if !found {
					t.Errorf("span %q not extracted", span)
				}
			}
			if strings.Contains(masked, "```") {
				t.Errorf("masked text still contains fence delimiters: %q", masked)
			}
			if restored := RestoreSpans(masked, table); restored != tt.input {
				t.Errorf("RestoreSpans() = %q, expected %q", restored, tt.input)
			}
		})
	}
}

func TestSplitAroundTokens(t *testing.T) {
	masked, table := ExtractSpans("intro\n\n```\ncode\n```\n\noutro")
	if len(table) != 1 {
		t.Fatalf("got %d spans, expected 1", len(table))
	}

	parts := splitAroundTokens(masked)
	if len(parts) != 3 {
		t.Fatalf("got %d parts, expected 3: %q", len(parts), parts)
	}
	if parts[0] != "intro" || parts[2] != "outro" {
		t.Errorf("prose parts = %q, %q", parts[0], parts[2])
	}
	if _, ok := table[parts[1]]; !ok {
		t.Errorf("middle part %q is not a placeholder token", parts[1])
	}
}
