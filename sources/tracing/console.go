package tracing

import (
	"context"
	"log/slog"
	"os"
	"time"
)

const (
	ExecutionTime = "exe_time"
	OutsiderKind  = "outsider_kind"
	ProxyUrl      = "proxy_url"
	ProxyRes      = "proxy_res"
	AiKind        = "ai_kind"
	AiModel       = "ai_model"
	AiTokens      = "ai_tokens"
	AiCost        = "ai_cost"
	InnerError    = "inner_error"
	UserId        = "user_id"
	UserName      = "user_name"
	ChatType      = "chat_type"
	ChatId        = "chat_id"
	MessageId     = "message_id"
	MessageDate   = "message_date"
	CommandIssued = "command_issued"
	RenderBudget  = "render_budget"
	ChunkCount    = "chunk_count"
	ChunkIndex    = "chunk_index"
	ChunkLength   = "chunk_length"
	MarkupMode    = "markup_mode"
	SpanCount     = "span_count"
)

type Logger struct {
	log *slog.Logger
	ctx context.Context
}

func NewConsoleLogger() *Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	logger.InfoContext(ctx, "Initializing logger")
	return &Logger{log: logger, ctx: ctx}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...), ctx: l.ctx}
}

func (l *Logger) D(msg string, args ...any) {
	l.log.DebugContext(l.ctx, msg, args...)
}

func (l *Logger) I(msg string, args ...any) {
	l.log.InfoContext(l.ctx, msg, args...)
}

func (l *Logger) W(msg string, args ...any) {
	l.log.WarnContext(l.ctx, msg, args...)
}

func (l *Logger) E(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
}

func (l *Logger) F(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
	panic(msg)
}
