package rendering

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// SpanTable maps placeholder tokens back to the protected substrings they
// stand in for, delimiters included.
type SpanTable map[string]string

var (
	fenceSpan    = regexp.MustCompile("(?s)```.*?```")
	inlineSpan   = regexp.MustCompile("`[^`\n]+`")
	tokenPattern = regexp.MustCompile("⟦[0-9a-f-]{36}⟧")
)

// ExtractSpans replaces every fenced code block and inline code span with a
// unique placeholder token so that segmentation and sanitization never see
// code content. Fences are taken out first, otherwise their inner backticks
// would be misread as inline delimiters.
func ExtractSpans(text string) (string, SpanTable) {
	table := SpanTable{}

	text = fenceSpan.ReplaceAllStringFunc(text, func(span string) string {
		token := newToken(text, table)
		table[token] = span
		return token
	})

	text = inlineSpan.ReplaceAllStringFunc(text, func(span string) string {
		token := newToken(text, table)
		table[token] = span
		return token
	})

	return text, table
}

// RestoreSpans substitutes every placeholder back. Tokens are unique, so a
// plain replace removes each exactly once per chunk that contains it.
func RestoreSpans(text string, table SpanTable) string {
	for token, span := range table {
		text = strings.ReplaceAll(text, token, span)
	}
	return text
}

// splitAroundTokens cuts text into an alternating sequence of prose runs and
// placeholder tokens, dropping whitespace-only prose.
func splitAroundTokens(text string) []string {
	var parts []string
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		if prose := strings.TrimSpace(text[last:loc[0]]); prose != "" {
			parts = append(parts, prose)
		}
		parts = append(parts, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if prose := strings.TrimSpace(text[last:]); prose != "" {
		parts = append(parts, prose)
	}
	return parts
}

func newToken(text string, table SpanTable) string {
	for {
		token := "⟦" + uuid.NewString() + "⟧"
		if _, taken := table[token]; taken || strings.Contains(text, token) {
			continue
		}
		return token
	}
}
