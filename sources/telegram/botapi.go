package telegram

import (
	"parley/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func NewBotAPI(log *tracing.Logger, config *BotConfig) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		log.F("Failed to initialize telegram bot", tracing.InnerError, err)
	}

	if config.APIEndpoint != "" {
		bot.SetAPIEndpoint(config.APIEndpoint)
		log.I("Telegram bot initialized with custom API endpoint", "api_endpoint", config.APIEndpoint)
	} else {
		log.I("Telegram bot initialized with default API endpoint")
	}

	return bot
}
