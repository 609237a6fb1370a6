package artificial

import (
	"parley/sources/repository"

	openrouter "github.com/revrost/go-openrouter"
	"github.com/sashabaranov/go-openai"
)

func WindowToOpenRouter(window []repository.WindowEntry) []openrouter.ChatCompletionMessage {
	var messages []openrouter.ChatCompletionMessage

	for _, entry := range window {
		if entry.Text == "" {
			continue
		}

		role := openrouter.ChatMessageRoleUser
		if entry.Role == "assistant" {
			role = openrouter.ChatMessageRoleAssistant
		}

		messages = append(messages, openrouter.ChatCompletionMessage{
			Role:    role,
			Content: openrouter.Content{Text: entry.Text},
		})
	}

	return messages
}

func WindowToOpenAI(window []repository.WindowEntry) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	for _, entry := range window {
		if entry.Text == "" {
			continue
		}

		role := openai.ChatMessageRoleUser
		if entry.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}

		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: entry.Text,
		})
	}

	return messages
}
