package artificial

import (
	"parley/sources/platform"
)

type AIConfig struct {
	OpenRouterToken string
	OpenAIToken     string

	DialerPrimaryModel    string
	DialerFallbackModels  []string
	DialerReasoningEffort string

	FallbackProviderModel string

	SystemPrompt string
}

func NewAIConfig() *AIConfig {
	return &AIConfig{
		OpenRouterToken: platform.Get("OPENROUTER_API_KEY", ""),
		OpenAIToken:     platform.Get("OPENAI_API_KEY", ""),

		DialerPrimaryModel:    platform.Get("DIALER_PRIMARY_MODEL", "anthropic/claude-sonnet-4"),
		DialerFallbackModels:  platform.GetAsSlice("DIALER_FALLBACK_MODELS", []string{"google/gemini-2.5-pro", "openai/gpt-4o"}),
		DialerReasoningEffort: platform.Get("DIALER_REASONING_EFFORT", "low"),

		FallbackProviderModel: platform.Get("FALLBACK_PROVIDER_MODEL", "gpt-4o-mini"),

		SystemPrompt: platform.Get("DIALER_SYSTEM_PROMPT", defaultSystemPrompt),
	}
}
