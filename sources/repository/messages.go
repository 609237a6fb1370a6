package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parley/sources/persistence/entities"
	"parley/sources/platform"
	"parley/sources/texting"
	"parley/sources/tracing"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WindowEntry is one remembered exchange line, oldest first when returned
// from Window.
type WindowEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type MessagesRepository struct {
	db     *gorm.DB
	redis  *redis.Client
	config *MessagesConfig
}

func NewMessagesRepository(db *gorm.DB, redis *redis.Client, config *MessagesConfig) *MessagesRepository {
	return &MessagesRepository{db: db, redis: redis, config: config}
}

// Conversation memory is scoped per user per chat, so group members never
// share a window and one member's forget leaves the others intact.
func windowKey(userID, chatID int64) string {
	return fmt.Sprintf("window:%d:%d", userID, chatID)
}

// SaveMessage persists an exchange line durably and pushes it onto the hot
// conversation window in Redis.
func (x *MessagesRepository) SaveMessage(logger *tracing.Logger, user *entities.User, chatID int64, text string, isBotReply bool, model *string, cost decimal.Decimal, tokens int) error {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	message := &entities.Message{
		ChatID:      chatID,
		MessageText: text,
		IsBotReply:  isBotReply,
		Model:       model,
		Tokens:      int64(tokens),
		Cost:        cost,
	}
	if user != nil {
		message.UserID = &user.ID
	}

	if err := x.db.WithContext(ctx).Create(message).Error; err != nil {
		logger.E("Failed to save message", tracing.InnerError, err)
		return err
	}

	if user != nil {
		role := "user"
		if isBotReply {
			role = "assistant"
		}
		if err := x.pushWindow(ctx, user.UserID, chatID, WindowEntry{Role: role, Text: text}); err != nil {
			logger.W("Failed to extend conversation window", tracing.InnerError, err, tracing.ChatId, chatID)
		}
	}

	logger.I("Message saved", tracing.ChatId, chatID)
	return nil
}

func (x *MessagesRepository) pushWindow(ctx context.Context, userID, chatID int64, entry WindowEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := windowKey(userID, chatID)
	pipe := x.redis.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, int64(x.config.WindowMaxEntries-1))
	pipe.Expire(ctx, key, x.config.WindowTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Window returns a user's recent conversation in a chat, oldest first,
// trimmed so the total token count stays inside the context budget.
func (x *MessagesRepository) Window(logger *tracing.Logger, user *entities.User, chatID int64) ([]WindowEntry, error) {
	defer tracing.ProfilePoint(logger, "Messages window fetched", "repository.messages.window", tracing.ChatId, chatID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	raw, err := tracing.ReportExecutionForRE(logger, func() ([]string, error) {
		return x.redis.LRange(ctx, windowKey(user.UserID, chatID), 0, int64(x.config.WindowMaxEntries-1)).Result()
	}, func(l *tracing.Logger) {
		l.D("Window entries fetched", tracing.ChatId, chatID)
	})
	if err != nil {
		logger.E("Failed to read conversation window", tracing.InnerError, err)
		return nil, err
	}

	// Entries arrive newest first; keep taking until the token budget runs
	// out, then restore chronological order.
	var taken []WindowEntry
	var total int64
	for _, item := range raw {
		var entry WindowEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.W("Skipping malformed window entry", tracing.InnerError, err)
			continue
		}

		tokens := int64(texting.Tokens(logger, entry.Text))
		if total+tokens > x.config.WindowTokenLimit {
			break
		}
		total += tokens
		taken = append(taken, entry)
	}

	window := make([]WindowEntry, 0, len(taken))
	for i := len(taken) - 1; i >= 0; i-- {
		window = append(window, taken[i])
	}

	logger.D("Conversation window assembled", tracing.ChatId, chatID, tracing.AiTokens, total)
	return window, nil
}

// Forget drops a user's hot conversation window in a chat; with wipe set,
// their durable history there goes too.
func (x *MessagesRepository) Forget(logger *tracing.Logger, user *entities.User, chatID int64, wipe bool) error {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	if err := x.redis.Del(ctx, windowKey(user.UserID, chatID)).Err(); err != nil {
		logger.E("Failed to drop conversation window", tracing.InnerError, err)
		return err
	}

	if wipe {
		if err := x.db.WithContext(ctx).Where("chat_id = ? AND user_id = ?", chatID, user.ID).Delete(&entities.Message{}).Error; err != nil {
			logger.E("Failed to wipe chat history", tracing.InnerError, err)
			return err
		}
	}

	logger.I("Chat history forgotten", tracing.ChatId, chatID)
	return nil
}
