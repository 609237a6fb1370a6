package rendering

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Headroom factors leave room for the continuation annotations that multi-
// chunk replies receive before delivery.
const (
	paragraphHeadroom = 0.8
	sentenceHeadroom  = 0.7
	wordHeadroom      = 0.6

	oversizeParagraph = 0.6
	oversizeSentence  = 0.5
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n+`)

// segment breaks text into pieces that fit the rune budget, preferring
// paragraph boundaries, then sentence boundaries, then word boundaries. A
// piece no tier can break (no blank lines, no sentence stops, no spaces) is
// returned whole; the caller hard-splits whatever still exceeds the budget.
func segment(text string, budget int) []string {
	if utf8.RuneCountInString(text) <= budget {
		return []string{text}
	}

	var pieces []string
	running := ""

	flush := func() {
		if piece := strings.TrimSpace(running); piece != "" {
			pieces = append(pieces, piece)
		}
		running = ""
	}

	for _, paragraph := range blankLine.Split(text, -1) {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		if utf8.RuneCountInString(paragraph) > int(oversizeParagraph*float64(budget)) {
			flush()
			pieces = append(pieces, segmentSentences(paragraph, budget)...)
			continue
		}
		if running != "" && utf8.RuneCountInString(running)+utf8.RuneCountInString(paragraph)+2 > int(paragraphHeadroom*float64(budget)) {
			flush()
		}
		if running == "" {
			running = paragraph
		} else {
			running += "\n\n" + paragraph
		}
	}
	flush()

	return pieces
}

func segmentSentences(paragraph string, budget int) []string {
	var pieces []string
	running := ""

	flush := func() {
		if piece := strings.TrimSpace(running); piece != "" {
			pieces = append(pieces, piece)
		}
		running = ""
	}

	for _, sentence := range splitSentences(paragraph) {
		if utf8.RuneCountInString(sentence) > int(oversizeSentence*float64(budget)) {
			flush()
			pieces = append(pieces, segmentWords(sentence, budget)...)
			continue
		}
		if running != "" && utf8.RuneCountInString(running)+utf8.RuneCountInString(sentence)+1 > int(sentenceHeadroom*float64(budget)) {
			flush()
		}
		if running == "" {
			running = sentence
		} else {
			running += " " + sentence
		}
	}
	flush()

	return pieces
}

func segmentWords(sentence string, budget int) []string {
	words := strings.Split(sentence, " ")
	if len(words) == 1 {
		// One unbroken token; leave it for the line splitter.
		return []string{sentence}
	}

	slice := int(wordHeadroom * float64(budget))
	var pieces []string
	running := ""

	flush := func() {
		if piece := strings.TrimSpace(running); piece != "" {
			pieces = append(pieces, piece)
		}
		running = ""
	}

	for _, word := range words {
		if utf8.RuneCountInString(word) > slice {
			flush()
			pieces = append(pieces, hardCut(word, slice)...)
			continue
		}
		if running != "" && utf8.RuneCountInString(running)+utf8.RuneCountInString(word)+1 > slice {
			flush()
		}
		if running == "" {
			running = word
		} else {
			running += " " + word
		}
	}
	flush()

	return pieces
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' && r != '…' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		next := i + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		start = next
		i = next - 1
	}

	if start < len(runes) {
		if sentence := strings.TrimSpace(string(runes[start:])); sentence != "" {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}

// hardCut slices a string into fixed-length rune chunks.
func hardCut(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// hardSplitLines is the last-resort splitter: it packs whole lines under the
// exact budget and cuts overlong lines at a space when one is close enough,
// otherwise at exactly budget runes.
func hardSplitLines(text string, budget int) []string {
	runes := []rune(text)
	if len(runes) <= budget {
		return []string{text}
	}

	var pieces []string
	for len(runes) > budget {
		cut := budget
		boundary := -1
		for i := budget - 1; i >= budget/2; i-- {
			if runes[i] == '\n' {
				boundary = i + 1
				break
			}
		}
		if boundary < 0 {
			for i := budget - 1; i >= budget/2; i-- {
				if runes[i] == ' ' {
					boundary = i + 1
					break
				}
			}
		}
		if boundary > 0 {
			cut = boundary
		}

		piece := strings.TrimRight(string(runes[:cut]), " \n")
		if piece != "" {
			pieces = append(pieces, piece)
		}
		runes = runes[cut:]
	}

	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}

	return pieces
}
