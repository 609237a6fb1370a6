package repository

import (
	"time"

	"parley/sources/platform"
)

type MessagesConfig struct {
	WindowMaxEntries int
	WindowTokenLimit int64
	WindowTTL        time.Duration
}

func NewMessagesConfig() *MessagesConfig {
	return &MessagesConfig{
		WindowMaxEntries: platform.GetAsInt("WINDOW_MAX_ENTRIES", 40),
		WindowTokenLimit: platform.GetAsInt64("WINDOW_TOKEN_LIMIT", 8000),
		WindowTTL:        platform.GetAsDuration("WINDOW_TTL", "24h"),
	}
}
