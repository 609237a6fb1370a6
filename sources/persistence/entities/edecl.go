package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	User struct {
		ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
		UserID    int64     `gorm:"uniqueIndex;not null" json:"user_id"`
		Username  *string   `gorm:"size:255" json:"username"`
		Fullname  *string   `gorm:"size:255" json:"fullname"`
		IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
		CreatedAt time.Time `gorm:"not null" json:"created_at"`

		Messages []Message `gorm:"foreignKey:UserID;references:ID" json:"messages"`
	}

	Message struct {
		ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
		ChatID      int64           `gorm:"index;not null" json:"chat_id"`
		MessageTime time.Time       `gorm:"index" json:"message_time"`
		MessageText string          `gorm:"type:text;not null" json:"message_text"`
		IsBotReply  bool            `gorm:"not null" json:"is_bot_reply"`
		Model       *string         `gorm:"size:255" json:"model"`
		Tokens      int64           `gorm:"not null;default:0" json:"tokens"`
		Cost        decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"cost"`
		UserID      *uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`

		User *User `gorm:"foreignKey:UserID;references:ID" json:"user"`
	}
)

func (User) TableName() string    { return "parley_users" }
func (Message) TableName() string { return "parley_messages" }
