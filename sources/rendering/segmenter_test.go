package rendering

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSegmentKeepsShortTextWhole(t *testing.T) {
	text := "a short reply with *markup* untouched"
	pieces := segment(text, 2000)
	if len(pieces) != 1 || pieces[0] != text {
		t.Errorf("segment() = %q, expected the input verbatim", pieces)
	}
}

func TestSegmentParagraphs(t *testing.T) {
	first := strings.Repeat("a", 1200)
	second := strings.Repeat("b", 1200)
	pieces := segment(first+"\n\n"+second, 2000)

	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, expected 2", len(pieces))
	}
	if pieces[0] != first {
		t.Errorf("first piece = %d runes of %q, expected the first paragraph", utf8.RuneCountInString(pieces[0]), pieces[0][:1])
	}
	if pieces[1] != second {
		t.Errorf("second piece = %d runes of %q, expected the second paragraph", utf8.RuneCountInString(pieces[1]), pieces[1][:1])
	}
}

func TestSegmentAccumulatesSmallParagraphs(t *testing.T) {
	paragraphs := []string{
		strings.Repeat("a", 300),
		strings.Repeat("b", 300),
		strings.Repeat("c", 300),
	}
	pieces := segment(strings.Join(paragraphs, "\n\n")+"\n\n"+strings.Repeat("d", 1500), 2000)

	if len(pieces) < 2 {
		t.Fatalf("got %d pieces, expected at least 2", len(pieces))
	}
	if pieces[0] != strings.Join(paragraphs, "\n\n") {
		t.Errorf("small paragraphs were not accumulated together: %q", pieces[0])
	}
}

func TestSegmentStructurelessTextLeftWhole(t *testing.T) {
	// No blank lines, no sentence stops, no spaces: every tier defers and
	// the caller's hard splitter takes over.
	text := strings.Repeat("x", 10000)
	pieces := segment(text, 2000)
	if len(pieces) != 1 || pieces[0] != text {
		t.Errorf("got %d pieces, expected the unbreakable input whole", len(pieces))
	}
}

func TestSegmentWordsHardCutsLongToken(t *testing.T) {
	long := strings.Repeat("u", 900)
	pieces := segmentWords("see "+long+" end", 1000)

	for _, piece := range pieces {
		if utf8.RuneCountInString(piece) > 600 {
			t.Errorf("piece of %d runes exceeds the word-tier slice", utf8.RuneCountInString(piece))
		}
	}
	if joined := strings.Join(pieces, ""); !strings.Contains(joined, "see") || !strings.Contains(joined, "end") {
		t.Errorf("surrounding words lost: %q", pieces)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Three sentences",
			input:    "One two. Three four! Five?",
			expected: []string{"One two.", "Three four!", "Five?"},
		},
		{
			name:     "Decimal point is not a boundary",
			input:    "Pi is 3.14 roughly. Yes.",
			expected: []string{"Pi is 3.14 roughly.", "Yes."},
		},
		{
			name:     "No terminal punctuation",
			input:    "no stops here at all",
			expected: []string{"no stops here at all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitSentences(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitSentences() = %q, expected %q", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("sentence %d = %q, expected %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestHardSplitLines(t *testing.T) {
	t.Run("Exact cuts without boundaries", func(t *testing.T) {
		pieces := hardSplitLines(strings.Repeat("z", 10000), 2000)
		if len(pieces) != 5 {
			t.Fatalf("got %d pieces, expected 5", len(pieces))
		}
		for i, piece := range pieces {
			if utf8.RuneCountInString(piece) != 2000 {
				t.Errorf("piece %d has %d runes, expected exactly 2000", i, utf8.RuneCountInString(piece))
			}
		}
	})

	t.Run("Prefers newline boundary", func(t *testing.T) {
		text := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 1500)
		pieces := hardSplitLines(text, 2000)
		if len(pieces) != 2 {
			t.Fatalf("got %d pieces, expected 2", len(pieces))
		}
		if strings.Contains(pieces[0], "b") {
			t.Errorf("first piece crossed the line boundary: %q", pieces[0][len(pieces[0])-20:])
		}
	})

	t.Run("Prefers space boundary over mid-word cut", func(t *testing.T) {
		text := strings.Repeat("a", 1500) + " " + strings.Repeat("b", 1500)
		pieces := hardSplitLines(text, 2000)
		if len(pieces) != 2 {
			t.Fatalf("got %d pieces, expected 2", len(pieces))
		}
		if strings.Contains(pieces[0], "b") {
			t.Errorf("first piece crossed the word boundary")
		}
	})
}
