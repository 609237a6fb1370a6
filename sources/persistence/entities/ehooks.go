package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLite has no server-side uuid generator, so identifiers are minted in the
// application before insert.

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MessageTime.IsZero() {
		m.MessageTime = time.Now().UTC()
	}
	return nil
}
