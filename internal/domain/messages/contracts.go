package messages

import (
	"context"
)

// MessagingService defines methods for sending and reading chat messages.
type MessagingService interface {
	// SendMessage stores a message from senderID to receiverID.
	// It returns the stored Message and any error encountered during the
	// process. Both accounts must be registered and friends, and content
	// must be non-empty.
	SendMessage(ctx context.Context, senderID, receiverID, content string) (*Message, error)

	// ListMessages retrieves the messages of the chat between userID and
	// receiverID, newest-first, considering pagination options.
	// It returns a slice of Message and any error encountered during the
	// retrieval process. A chat with no messages is an error.
	ListMessages(ctx context.Context, userID, receiverID string, query *MessageQuery) ([]*Message, error)
}

// MessageRepository defines the interface for Message-related operations
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByChatID(ctx context.Context, chatID string, query *MessageQuery) ([]*Message, error)
	CountByChatID(ctx context.Context, chatID string) (int64, error)
}
