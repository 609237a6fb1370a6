package rendering

import (
	"regexp"
	"strings"
)

var (
	fenceBlock  = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\n?(.*?)\n?```")
	inlineCode  = regexp.MustCompile("`([^`\n]+)`")
	boldSpan    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkSpan    = regexp.MustCompile(`\[([^\]\n]*)\]\(([^()\n]*)\)`)
	headerMark  = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	quoteMark   = regexp.MustCompile(`(?m)^>[ \t]?`)
	bulletMark  = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedMark = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+`)
	excessGap   = regexp.MustCompile(`\n{3,}`)
)

// Degrade converts any input into a rendition with no active markup syntax,
// using fixed glyph substitutions. It is total: whatever the input, it
// returns deliverable plain text, which makes it the last rung of the
// delivery ladder.
func Degrade(text string) string {
	text = fenceBlock.ReplaceAllString(text, "[ CODE ]\n$1\n[ CODE ]")
	text = inlineCode.ReplaceAllString(text, "「$1」")
	text = linkSpan.ReplaceAllString(text, "🔗 $1")
	text = headerMark.ReplaceAllString(text, "➤ ")
	text = quoteMark.ReplaceAllString(text, "💬 ")
	text = bulletMark.ReplaceAllString(text, "• ")
	text = orderedMark.ReplaceAllString(text, "○ ")
	text = boldSpan.ReplaceAllString(text, "【$1】")
	text = strings.ReplaceAll(text, "*", "")
	text = dropBoundaryUnderscores(text)
	text = excessGap.ReplaceAllString(text, "\n\n")
	return text
}

// dropBoundaryUnderscores removes emphasis underscores while keeping
// word-internal ones (snake_case identifiers stay readable).
func dropBoundaryUnderscores(text string) string {
	runes := []rune(text)
	kept := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == '_' {
			prevWord := i > 0 && isWordRune(runes[i-1])
			nextWord := i+1 < len(runes) && isWordRune(runes[i+1])
			if !(prevWord && nextWord) {
				continue
			}
		}
		kept = append(kept, r)
	}
	return string(kept)
}
