//go:build unit
// +build unit

package messages

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{
		ID:          uuid.NewString(),
		ChatID:      ChatID("alice.testnet", "bob.testnet"),
		Author:      "alice.testnet",
		Content:     "Hello World!",
		CreatedAtMs: time.Now().UnixMilli(),
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Message)
		shouldErr bool
	}{
		{"valid message", func(*Message) {}, false},
		{"missing id", func(m *Message) { m.ID = "" }, true},
		{"non-uuid id", func(m *Message) { m.ID = "not-a-uuid" }, true},
		{"missing chat id", func(m *Message) { m.ChatID = "" }, true},
		{"short chat id", func(m *Message) { m.ChatID = "abcdef" }, true},
		{"missing author", func(m *Message) { m.Author = "" }, true},
		{"empty content", func(m *Message) { m.Content = "" }, true},
		{"missing timestamp", func(m *Message) { m.CreatedAtMs = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := validMessage()
			tt.mutate(&message)

			err := message.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewMessageQuery_Defaults(t *testing.T) {
	query := NewMessageQuery()

	require.Equal(t, 10, query.Limit)
	require.Equal(t, 0, query.Offset)
	require.NoError(t, query.Validate())
}

func TestMessageQuery_Validate_LimitTooLarge(t *testing.T) {
	query := NewMessageQuery()
	query.Limit = 1000

	require.Error(t, query.Validate())
}
