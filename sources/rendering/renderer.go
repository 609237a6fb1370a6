package rendering

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"parley/sources/metrics"
	"parley/sources/tracing"
)

type MarkupMode string

const (
	MarkupRich  MarkupMode = "rich"
	MarkupPlain MarkupMode = "plain"
)

type Position string

const (
	PositionOnly   Position = "only"
	PositionFirst  Position = "first"
	PositionMiddle Position = "middle"
	PositionLast   Position = "last"
)

// Chunk is one unit of the rendered output, deliverable as a single chat
// message. CarriesAttachment is set on the final chunk only, so reply
// keyboards and similar payloads ride the end of a multi-part reply.
type Chunk struct {
	Content           string
	Position          Position
	MarkupMode        MarkupMode
	CarriesAttachment bool
}

const (
	continuedSuffix = "continued…"
	continuedPrefix = "…continued"
)

// annotationAllowance is the rune cost of both continuation markers with
// their separators. A piece restored into the last stretch under the budget
// has no room left for them, so it ships bare instead of overflowing.
var annotationAllowance = 2 * utf8.RuneCountInString(annotation(MarkupRich, continuedPrefix)+"\n\n")

type Renderer struct {
	config  *RendererConfig
	metrics *metrics.MetricsService
}

func NewRenderer(config *RendererConfig, metrics *metrics.MetricsService) *Renderer {
	return &Renderer{config: config, metrics: metrics}
}

// piece carries a chunk candidate through the pipeline before positions and
// continuation annotations are assigned. Pieces produced by the exact-budget
// hard splitter have no headroom left, so they are not annotatable.
type piece struct {
	content     string
	mode        MarkupMode
	annotatable bool
}

// Render turns a reply into an ordered sequence of delivery-ready chunks.
// It never returns an error: any internal failure degrades to a single
// plain-text chunk of the whole input.
func (x *Renderer) Render(log *tracing.Logger, text string, withAttachment bool) (chunks []Chunk) {
	defer tracing.ProfilePoint(log, "Render completed", "rendering.render")()
	defer func() {
		if r := recover(); r != nil {
			log.E("Renderer panicked, degrading whole reply", tracing.InnerError, fmt.Errorf("%v", r))
			x.anomaly("panic")
			chunks = []Chunk{{
				Content:           Degrade(text),
				Position:          PositionOnly,
				MarkupMode:        MarkupPlain,
				CarriesAttachment: withAttachment,
			}}
		}
	}()

	budget := x.config.ChunkSize
	masked, spans := ExtractSpans(text)
	log.D("Protected spans extracted", tracing.SpanCount, len(spans), tracing.RenderBudget, budget)

	var pieces []piece
	for _, segmented := range segment(masked, budget) {
		pieces = append(pieces, x.finalize(log, segmented, spans, budget)...)
	}

	chunks = assemble(pieces, withAttachment)
	if x.metrics != nil {
		x.metrics.RecordRenderChunks(len(chunks))
	}
	log.I("Reply rendered", tracing.ChunkCount, len(chunks))
	return chunks
}

// finalize runs one segmented piece through markup validation, span
// restoration and the post-restoration budget check.
func (x *Renderer) finalize(log *tracing.Logger, masked string, spans SpanTable, budget int) []piece {
	_, atomicSpan := spans[strings.TrimSpace(masked)]

	// A piece can outgrow the budget once its spans are restored. When it
	// mixes prose and spans, isolating the spans into their own pieces keeps
	// the fences whole and lets the prose re-segment normally.
	if !atomicSpan && utf8.RuneCountInString(RestoreSpans(masked, spans)) > budget && tokenPattern.MatchString(masked) {
		var pieces []piece
		for _, sub := range splitAroundTokens(masked) {
			if _, isToken := spans[sub]; isToken {
				pieces = append(pieces, x.finalize(log, sub, spans, budget)...)
				continue
			}
			for _, segmented := range segment(sub, budget) {
				pieces = append(pieces, x.finalize(log, segmented, spans, budget)...)
			}
		}
		return pieces
	}

	mode := MarkupRich
	content := masked
	if !ValidMarkup(content) {
		sanitized := SanitizeMarkup(content)
		if ValidMarkup(sanitized) {
			content = sanitized
		} else {
			mode = MarkupPlain
		}
	}

	content = RestoreSpans(content, spans)
	if mode == MarkupPlain {
		content = Degrade(content)
	}

	if length := utf8.RuneCountInString(content); length <= budget {
		return []piece{{content: content, mode: mode, annotatable: length+annotationAllowance <= budget}}
	}

	if atomicSpan {
		// The chunk is one protected span and nothing else: re-splitting it
		// breaks the fence without making either half fit, so it ships
		// oversized instead.
		log.W("Restored span exceeds chunk budget, delivering oversized",
			tracing.ChunkLength, utf8.RuneCountInString(content), tracing.RenderBudget, budget)
		x.anomaly("span_over_budget")
		return []piece{{content: content, mode: mode, annotatable: false}}
	}

	log.W("Chunk exceeds budget after span restoration, re-splitting",
		tracing.ChunkLength, utf8.RuneCountInString(content), tracing.RenderBudget, budget)
	x.anomaly("budget_after_restore")

	var pieces []piece
	for _, part := range hardSplitLines(content, budget) {
		partMode := mode
		if partMode == MarkupRich && !ValidMarkup(part) {
			partMode = MarkupPlain
			part = Degrade(part)
		}
		pieces = append(pieces, piece{content: part, mode: partMode, annotatable: false})
	}
	return pieces
}

func assemble(pieces []piece, withAttachment bool) []Chunk {
	chunks := make([]Chunk, 0, len(pieces))
	last := len(pieces) - 1

	for i, p := range pieces {
		content := p.content
		if len(pieces) > 1 && p.annotatable {
			if i > 0 {
				content = annotation(p.mode, continuedPrefix) + "\n\n" + content
			}
			if i < last {
				content = content + "\n\n" + annotation(p.mode, continuedSuffix)
			}
		}

		position := PositionMiddle
		switch {
		case len(pieces) == 1:
			position = PositionOnly
		case i == 0:
			position = PositionFirst
		case i == last:
			position = PositionLast
		}

		chunks = append(chunks, Chunk{
			Content:           content,
			Position:          position,
			MarkupMode:        p.mode,
			CarriesAttachment: withAttachment && i == last,
		})
	}

	return chunks
}

func annotation(mode MarkupMode, text string) string {
	if mode == MarkupRich {
		return "_" + text + "_"
	}
	return text
}

func (x *Renderer) anomaly(kind string) {
	if x.metrics != nil {
		x.metrics.RecordRenderAnomaly(kind)
	}
}
