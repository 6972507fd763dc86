package models

import (
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
)

// MessageModel is the GORM database model for chat messages (infrastructure
// concern). Seq preserves append order within a chat; listings reverse it.
type MessageModel struct {
	Seq         uint64 `gorm:"primaryKey;autoIncrement"`
	ID          string `gorm:"uniqueIndex;type:uuid"`
	ChatID      string `gorm:"not null;index;type:char(64)"`
	Author      string `gorm:"not null;type:varchar(64)"`
	Content     string `gorm:"not null;type:text"`
	CreatedAtMs int64  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *messages.Message {
	return &messages.Message{
		ID:          m.ID,
		ChatID:      m.ChatID,
		Author:      m.Author,
		Content:     m.Content,
		CreatedAtMs: m.CreatedAtMs,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *messages.Message) {
	m.ID = msg.ID
	m.ChatID = msg.ChatID
	m.Author = msg.Author
	m.Content = msg.Content
	m.CreatedAtMs = msg.CreatedAtMs
}
