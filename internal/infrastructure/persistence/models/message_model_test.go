//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMessageModel_ToDomain(t *testing.T) {
	// Setup a test MessageModel instance
	messageModel := &MessageModel{
		Seq:         1,
		ID:          uuid.NewString(),
		ChatID:      messages.ChatID("alice.testnet", "bob.testnet"),
		Author:      "alice.testnet",
		Content:     "Hello World!",
		CreatedAtMs: time.Now().UnixMilli(),
	}

	// Convert to domain
	message := messageModel.ToDomain()

	// Assertions to ensure the conversion is correct
	assert.Equal(t, messageModel.ID, message.ID)
	assert.Equal(t, messageModel.ChatID, message.ChatID)
	assert.Equal(t, messageModel.Author, message.Author)
	assert.Equal(t, messageModel.Content, message.Content)
	assert.Equal(t, messageModel.CreatedAtMs, message.CreatedAtMs)
}

func TestMessageModel_FromDomain(t *testing.T) {
	// Setup a test Message instance (domain entity)
	message := &messages.Message{
		ID:          uuid.NewString(),
		ChatID:      messages.ChatID("alice.testnet", "bob.testnet"),
		Author:      "alice.testnet",
		Content:     "Hello World!",
		CreatedAtMs: time.Now().UnixMilli(),
	}

	// Convert to MessageModel
	messageModel := &MessageModel{}
	messageModel.FromDomain(message)

	// Assertions to ensure the conversion is correct
	assert.Equal(t, message.ID, messageModel.ID)
	assert.Equal(t, message.ChatID, messageModel.ChatID)
	assert.Equal(t, message.Author, messageModel.Author)
	assert.Equal(t, message.Content, messageModel.Content)
	assert.Equal(t, message.CreatedAtMs, messageModel.CreatedAtMs)
}
