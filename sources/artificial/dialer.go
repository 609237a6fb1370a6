package artificial

import (
	"context"
	"time"

	"parley/sources/metrics"
	"parley/sources/persistence/entities"
	"parley/sources/platform"
	"parley/sources/repository"
	"parley/sources/tracing"

	openrouter "github.com/revrost/go-openrouter"
	"github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
)

// Dialer turns a user message into a model reply, carrying the conversation
// window along. OpenRouter is the primary route with its own model fallback
// chain; when the route itself fails, a direct OpenAI call is the backstop.
type Dialer struct {
	router   *openrouter.Client
	backstop *openai.Client
	config   *AIConfig
	messages *repository.MessagesRepository
	metrics  *metrics.MetricsService
}

func NewDialer(config *AIConfig, router *openrouter.Client, backstop *openai.Client, messages *repository.MessagesRepository, metrics *metrics.MetricsService) *Dialer {
	return &Dialer{router: router, backstop: backstop, config: config, messages: messages, metrics: metrics}
}

func (x *Dialer) Dial(log *tracing.Logger, user *entities.User, chatID int64, req string) (string, error) {
	defer tracing.ProfilePoint(log, "Dial completed", "artificial.dial", tracing.ChatId, chatID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 5*time.Minute)
	defer cancel()

	window, err := x.messages.Window(log, user, chatID)
	if err != nil {
		log.W("Proceeding without conversation window", tracing.InnerError, err)
		window = nil
	}

	reply, model, cost, tokens, err := x.dialPrimary(ctx, log, window, req)
	if err != nil {
		log.E("Primary route failed, switching to backstop", tracing.InnerError, err, tracing.AiKind, "openrouter")
		reply, model, cost, tokens, err = x.dialBackstop(ctx, log, window, req)
		if err != nil {
			return "", err
		}
	}

	x.metrics.RecordTokenUsage(model, tokens)
	x.metrics.RecordCostUsage(model, cost)

	if err := x.messages.SaveMessage(log, user, chatID, req, false, nil, decimal.Zero, 0); err != nil {
		log.E("Error saving user message", tracing.InnerError, err)
	}
	if err := x.messages.SaveMessage(log, user, chatID, reply, true, &model, cost, tokens); err != nil {
		log.E("Error saving reply", tracing.InnerError, err)
	}

	return reply, nil
}

func (x *Dialer) dialPrimary(ctx context.Context, log *tracing.Logger, window []repository.WindowEntry, req string) (string, string, decimal.Decimal, int, error) {
	messages := []openrouter.ChatCompletionMessage{
		{
			Role:    openrouter.ChatMessageRoleSystem,
			Content: openrouter.Content{Text: x.config.SystemPrompt},
		},
	}
	messages = append(messages, WindowToOpenRouter(window)...)
	messages = append(messages, openrouter.ChatCompletionMessage{
		Role:    openrouter.ChatMessageRoleUser,
		Content: openrouter.Content{Text: req},
	})

	request := openrouter.ChatCompletionRequest{
		Model:     x.config.DialerPrimaryModel,
		Models:    x.config.DialerFallbackModels,
		Messages:  messages,
		Reasoning: &openrouter.ChatCompletionReasoning{Effort: openrouter.String(x.config.DialerReasoningEffort)},
		Usage:     &openrouter.IncludeUsage{Include: true},
	}

	started := time.Now()
	response, err := x.router.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", "", decimal.Zero, 0, err
	}
	x.metrics.ObserveDialDuration("openrouter", response.Model, time.Since(started))

	tokens := response.Usage.TotalTokens
	cost := decimal.NewFromFloat(response.Usage.Cost)
	log.I("ai completed", tracing.AiKind, "openrouter", tracing.AiModel, response.Model, tracing.AiCost, cost.String(), tracing.AiTokens, tokens)

	return response.Choices[0].Message.Content.Text, response.Model, cost, tokens, nil
}

func (x *Dialer) dialBackstop(ctx context.Context, log *tracing.Logger, window []repository.WindowEntry, req string) (string, string, decimal.Decimal, int, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: x.config.SystemPrompt,
		},
	}
	messages = append(messages, WindowToOpenAI(window)...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req,
	})

	request := openai.ChatCompletionRequest{
		Model:    x.config.FallbackProviderModel,
		Messages: messages,
	}

	started := time.Now()
	response, err := x.backstop.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", "", decimal.Zero, 0, err
	}
	x.metrics.ObserveDialDuration("openai", request.Model, time.Since(started))

	tokens := response.Usage.TotalTokens
	log.I("ai completed", tracing.AiKind, "openai", tracing.AiModel, request.Model, tracing.AiTokens, tokens)

	// Direct OpenAI usage reports no dollar figure; cost stays zero.
	return response.Choices[0].Message.Content, request.Model, decimal.Zero, tokens, nil
}
