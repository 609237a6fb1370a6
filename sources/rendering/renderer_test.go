package rendering

import (
	"strings"
	"testing"
	"unicode/utf8"

	"parley/sources/tracing"
)

func testRenderer(budget int) *Renderer {
	return &Renderer{config: &RendererConfig{ChunkSize: budget}}
}

func TestRenderShortReplyVerbatim(t *testing.T) {
	log := tracing.NewConsoleLogger()
	text := "a short reply with **bold** and `inline code` kept as is"

	chunks := testRenderer(2000).Render(log, text, false)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, expected 1", len(chunks))
	}
	if chunks[0].Content != text {
		t.Errorf("content = %q, expected the input verbatim", chunks[0].Content)
	}
	if chunks[0].Position != PositionOnly {
		t.Errorf("position = %q, expected %q", chunks[0].Position, PositionOnly)
	}
	if chunks[0].MarkupMode != MarkupRich {
		t.Errorf("mode = %q, expected rich", chunks[0].MarkupMode)
	}
	if chunks[0].CarriesAttachment {
		t.Error("attachment flag set without a requested attachment")
	}
}

func TestRenderTwoParagraphsAnnotated(t *testing.T) {
	log := tracing.NewConsoleLogger()
	first := strings.Repeat("a", 1200)
	second := strings.Repeat("b", 1200)

	chunks := testRenderer(2000).Render(log, first+"\n\n"+second, true)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, expected 2", len(chunks))
	}
	if !strings.HasPrefix(chunks[0].Content, first) || !strings.HasSuffix(chunks[0].Content, "_continued…_") {
		t.Errorf("first chunk must carry its paragraph and a trailing continuation mark")
	}
	if !strings.HasPrefix(chunks[1].Content, "_…continued_") || !strings.HasSuffix(chunks[1].Content, second) {
		t.Errorf("second chunk must carry a leading continuation mark and its paragraph")
	}
	if chunks[0].Position != PositionFirst || chunks[1].Position != PositionLast {
		t.Errorf("positions = %q, %q", chunks[0].Position, chunks[1].Position)
	}
	if chunks[0].CarriesAttachment {
		t.Error("attachment must not ride a non-final chunk")
	}
	if !chunks[1].CarriesAttachment {
		t.Error("attachment must ride the final chunk")
	}
	for i, chunk := range chunks {
		if utf8.RuneCountInString(chunk.Content) > 2000 {
			t.Errorf("chunk %d exceeds the budget after annotation", i)
		}
	}
}

func TestRenderStructurelessLineExactCuts(t *testing.T) {
	log := tracing.NewConsoleLogger()
	text := strings.Repeat("x", 10000)

	chunks := testRenderer(2000).Render(log, text, false)

	if len(chunks) != 5 {
		t.Fatalf("got %d chunks, expected 5", len(chunks))
	}
	var rebuilt strings.Builder
	for i, chunk := range chunks {
		if utf8.RuneCountInString(chunk.Content) != 2000 {
			t.Errorf("chunk %d has %d runes, expected exactly 2000", i, utf8.RuneCountInString(chunk.Content))
		}
		if strings.Contains(chunk.Content, "continued") {
			t.Errorf("chunk %d carries an annotation it has no headroom for", i)
		}
		rebuilt.WriteString(chunk.Content)
	}
	if rebuilt.String() != text {
		t.Error("concatenated chunks must reproduce the input exactly")
	}
	if chunks[0].Position != PositionFirst || chunks[4].Position != PositionLast {
		t.Errorf("edge positions = %q, %q", chunks[0].Position, chunks[4].Position)
	}
	for _, chunk := range chunks[1:4] {
		if chunk.Position != PositionMiddle {
			t.Errorf("inner position = %q, expected middle", chunk.Position)
		}
	}
}

func TestRenderDanglingEmphasisSanitized(t *testing.T) {
	log := tracing.NewConsoleLogger()

	chunks := testRenderer(2000).Render(log, "here is *bold without a close", false)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, expected 1", len(chunks))
	}
	if chunks[0].MarkupMode != MarkupRich {
		t.Errorf("mode = %q, a repairable chunk stays rich", chunks[0].MarkupMode)
	}
	if chunks[0].Content != "here is bold without a close" {
		t.Errorf("content = %q, expected the dangling star removed", chunks[0].Content)
	}
	if !ValidMarkup(chunks[0].Content) {
		t.Error("sanitized chunk still fails validation")
	}
}

func TestRenderOversizedFenceShipsWhole(t *testing.T) {
	log := tracing.NewConsoleLogger()
	fence := "```\n" + strings.Repeat("c", 2990) + "\n```"

	chunks := testRenderer(2000).Render(log, fence, false)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, expected the fence delivered whole", len(chunks))
	}
	if chunks[0].Content != fence {
		t.Error("fence content was altered")
	}
	if utf8.RuneCountInString(chunks[0].Content) <= 2000 {
		t.Error("expected the chunk to ship oversized")
	}
}

func TestRenderFenceIsolatedFromProse(t *testing.T) {
	log := tracing.NewConsoleLogger()
	fence := "```\n" + strings.Repeat("c", 2990) + "\n```"
	text := "short intro before the snippet\n\n" + fence + "\n\nshort outro after it"

	chunks := testRenderer(2000).Render(log, text, false)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, expected prose, fence, prose", len(chunks))
	}
	if !strings.Contains(chunks[0].Content, "short intro") {
		t.Errorf("first chunk = %q, expected the intro prose", chunks[0].Content)
	}
	if chunks[1].Content != fence {
		t.Error("fence must stay intact in its own chunk")
	}
	if !strings.Contains(chunks[2].Content, "short outro") {
		t.Errorf("last chunk = %q, expected the outro prose", chunks[2].Content)
	}
	if strings.Contains(chunks[1].Content, "continued") {
		t.Error("an oversized fence chunk must not be annotated")
	}
}

func TestRenderNearBudgetSpanShipsUnannotated(t *testing.T) {
	log := tracing.NewConsoleLogger()
	span := "`" + strings.Repeat("x", 98) + "`"

	chunks := testRenderer(100).Render(log, "intro.\n\n"+span+"\n\nclosing.", false)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, expected 3", len(chunks))
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk.Content); n > 100 {
			t.Errorf("chunk %d has %d runes, over the budget", i, n)
		}
	}
	if chunks[1].Content != span {
		t.Errorf("middle chunk = %q, expected the bare code span", chunks[1].Content)
	}
	if !strings.HasSuffix(chunks[0].Content, "_continued…_") {
		t.Error("intro chunk has headroom and must keep its continuation mark")
	}
	if !strings.HasPrefix(chunks[2].Content, "_…continued_") {
		t.Error("closing chunk has headroom and must keep its continuation mark")
	}
}

func TestRenderBudgetHonoredAcrossShapes(t *testing.T) {
	log := tracing.NewConsoleLogger()
	inputs := []string{
		strings.Repeat("word and another. ", 600),
		strings.Repeat("paragraph body here\n\n", 300),
		strings.Repeat("y", 4100),
		"mixed *styles* with `code` and\n\n" + strings.Repeat("filler text goes on ", 400),
	}

	for _, text := range inputs {
		for _, chunk := range testRenderer(2000).Render(log, text, false) {
			if utf8.RuneCountInString(chunk.Content) > 2000 {
				t.Errorf("chunk of %d runes exceeds the budget for input of %d runes",
					utf8.RuneCountInString(chunk.Content), utf8.RuneCountInString(text))
			}
		}
	}
}
