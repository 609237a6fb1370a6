package telegram

import (
	"time"

	"parley/sources/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotConfig struct {
	Token       string
	APIEndpoint string
}

type DiplomatConfig struct {
	InterChunkDelay time.Duration
	FeedbackURL     string
}

type PollerConfig struct {
	Timeout        int
	AllowedUpdates []string
}

func NewBotConfig() *BotConfig {
	return &BotConfig{
		Token:       platform.Get("TELEGRAM_BOT_TOKEN", ""),
		APIEndpoint: platform.Get("TELEGRAM_API_ENDPOINT", ""),
	}
}

func NewDiplomatConfig() *DiplomatConfig {
	return &DiplomatConfig{
		InterChunkDelay: platform.GetAsDuration("RENDER_INTER_CHUNK_DELAY", "500ms"),
		FeedbackURL:     platform.Get("FEEDBACK_URL", "https://github.com/parley-bot/parley/issues"),
	}
}

func NewPollerConfig() *PollerConfig {
	return &PollerConfig{
		Timeout:        platform.GetAsInt("TELEGRAM_POLLER_TIMEOUT", 120),
		AllowedUpdates: platform.GetAsSlice("TELEGRAM_POLLER_ALLOWED_UPDATES", []string{tgbotapi.UpdateTypeMessage}),
	}
}
