package repository

import (
	"context"
	"time"

	"parley/sources/persistence/entities"
	"parley/sources/platform"
	"parley/sources/tracing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChatUsage aggregates what a chat has consumed since its first message.
type ChatUsage struct {
	Messages int64
	Replies  int64
	Tokens   int64
	Cost     decimal.Decimal
}

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (x *UsageRepository) GetChatUsage(logger *tracing.Logger, chatID int64) (*ChatUsage, error) {
	defer tracing.ProfilePoint(logger, "Usage aggregated", "repository.usage.chat", tracing.ChatId, chatID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	usage := &ChatUsage{Cost: decimal.Zero}
	base := x.db.WithContext(ctx).Model(&entities.Message{}).Where("chat_id = ?", chatID)

	if err := base.Session(&gorm.Session{}).Count(&usage.Messages).Error; err != nil {
		logger.E("Failed to count messages", tracing.InnerError, err)
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_bot_reply = ?", true).Count(&usage.Replies).Error; err != nil {
		logger.E("Failed to count replies", tracing.InnerError, err)
		return nil, err
	}

	var totals struct {
		Tokens int64
		Cost   decimal.Decimal
	}
	err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(tokens), 0) AS tokens, COALESCE(SUM(cost), 0) AS cost").
		Scan(&totals).Error
	if err != nil {
		logger.E("Failed to sum usage", tracing.InnerError, err)
		return nil, err
	}

	usage.Tokens = totals.Tokens
	usage.Cost = totals.Cost
	return usage, nil
}
