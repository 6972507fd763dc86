package messages

import "errors"

var (
	// ErrEmptyContent indicates an attempt to send a message without content.
	ErrEmptyContent = errors.New("message content must not be empty")

	// ErrNoMessages indicates that a chat has no messages.
	ErrNoMessages = errors.New("chat has no messages")
)
