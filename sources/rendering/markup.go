package rendering

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	linkConstruct = regexp.MustCompile(`\[[^\]\n]*\]\([^()\n]*\)`)
	emphasisSpan  = regexp.MustCompile(`\*{1,2}[^*\n]+\*{1,2}`)
	starRun       = regexp.MustCompile(`\*{3,}`)
)

// ValidMarkup reports whether a chunk's lightweight markup is balanced
// enough for a strict renderer. It expects protected spans to be already
// masked, so backticks never reach it. It never fails; invalid just means
// the sanitizer gets a turn.
func ValidMarkup(text string) bool {
	runes := []rune(text)

	bold, italic := emphasisCounts(runes)
	if bold%2 != 0 || italic%2 != 0 {
		return false
	}
	if boundaryUnderscores(runes)%2 != 0 {
		return false
	}
	if strings.Count(text, "[") != strings.Count(text, "]") {
		return false
	}

	outside := linkConstruct.ReplaceAllString(text, "")
	return strings.Count(outside, "(") == strings.Count(outside, ")")
}

// emphasisCounts tallies double-star bold delimiters and lone-star italic
// delimiters separately.
func emphasisCounts(runes []rune) (bold, italic int) {
	for i := 0; i < len(runes); i++ {
		if runes[i] != '*' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '*' {
			bold++
			i++
		} else {
			italic++
		}
	}
	return bold, italic
}

// boundaryUnderscores counts underscores that can open or close emphasis;
// word-internal underscores (snake_case) do not participate in markup.
func boundaryUnderscores(runes []rune) int {
	count := 0
	for i, r := range runes {
		if r != '_' {
			continue
		}
		prevWord := i > 0 && isWordRune(runes[i-1])
		nextWord := i+1 < len(runes) && isWordRune(runes[i+1])
		if prevWord && nextWord {
			continue
		}
		count++
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SanitizeMarkup makes a best-effort repair of a chunk the checker rejected,
// operating on masked text so protected spans stay untouched. The result is
// not guaranteed to pass ValidMarkup; callers re-validate.
func SanitizeMarkup(text string) string {
	text = starRun.ReplaceAllString(text, "**")
	text = balanceEmphasisSpans(text)

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = stripDanglingEmphasis(lines[i])
	}
	text = strings.Join(lines, "\n")

	text = balanceDelims(text, '[', ']')
	outside := linkConstruct.ReplaceAllString(text, "")
	if strings.Count(outside, "(") != strings.Count(outside, ")") {
		text = balanceDelims(text, '(', ')')
	}

	return text
}

// SanitizeOutsideSpans repairs a chunk whose protected spans are already
// restored: the spans are masked again first, so code content never reaches
// the sanitizer.
func SanitizeOutsideSpans(text string) string {
	masked, spans := ExtractSpans(text)
	return RestoreSpans(SanitizeMarkup(masked), spans)
}

// balanceEmphasisSpans rewrites asymmetric emphasis like **text* or *text**
// into balanced bold.
func balanceEmphasisSpans(text string) string {
	return emphasisSpan.ReplaceAllStringFunc(text, func(span string) string {
		lead := len(span) - len(strings.TrimLeft(span, "*"))
		trail := len(span) - len(strings.TrimRight(span, "*"))
		if lead == trail {
			return span
		}
		return "**" + strings.Trim(span, "*") + "**"
	})
}

func stripDanglingEmphasis(line string) string {
	runes := []rune(line)

	if bold, _ := emphasisCounts(runes); bold%2 != 0 {
		if idx := strings.LastIndex(string(runes), "**"); idx >= 0 {
			runes = []rune(string(runes)[:idx] + string(runes)[idx+2:])
		}
	}

	if _, italic := emphasisCounts(runes); italic%2 != 0 {
		runes = removeLastLoneStar(runes)
	}

	if boundaryUnderscores(runes)%2 != 0 {
		runes = removeLastBoundaryUnderscore(runes)
	}

	return string(runes)
}

func removeLastLoneStar(runes []rune) []rune {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != '*' {
			continue
		}
		prevStar := i > 0 && runes[i-1] == '*'
		nextStar := i+1 < len(runes) && runes[i+1] == '*'
		if prevStar || nextStar {
			continue
		}
		return append(runes[:i], runes[i+1:]...)
	}
	return runes
}

func removeLastBoundaryUnderscore(runes []rune) []rune {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != '_' {
			continue
		}
		prevWord := i > 0 && isWordRune(runes[i-1])
		nextWord := i+1 < len(runes) && isWordRune(runes[i+1])
		if prevWord && nextWord {
			continue
		}
		return append(runes[:i], runes[i+1:]...)
	}
	return runes
}

// balanceDelims drops closers with no opener, then openers with no closer.
func balanceDelims(text string, open, close rune) string {
	var kept []rune
	depth := 0
	for _, r := range text {
		if r == open {
			depth++
		}
		if r == close {
			if depth == 0 {
				continue
			}
			depth--
		}
		kept = append(kept, r)
	}
	if depth == 0 {
		return string(kept)
	}

	var reversed []rune
	closers := 0
	for i := len(kept) - 1; i >= 0; i-- {
		r := kept[i]
		if r == close {
			closers++
		}
		if r == open {
			if closers == 0 {
				continue
			}
			closers--
		}
		reversed = append(reversed, r)
	}
	for left, right := 0, len(reversed)-1; left < right; left, right = left+1, right-1 {
		reversed[left], reversed[right] = reversed[right], reversed[left]
	}
	return string(reversed)
}
