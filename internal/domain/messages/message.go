package messages

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Message entity
type Message struct {
	ID          string `validate:"required,uuid4"`
	ChatID      string `validate:"required,len=64,hexadecimal"`
	Author      string `validate:"required,min=2,max=64,lowercase"`
	Content     string `validate:"required,min=1"`
	CreatedAtMs int64  `validate:"required,gt=0"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// MessageQuery represents pagination options for listing chat messages
type MessageQuery struct {
	Limit  int `validate:"required,gte=1,lte=100"`
	Offset int `validate:"gte=0"`
}

// NewMessageQuery creates a MessageQuery with default pagination values
func NewMessageQuery() *MessageQuery {
	return &MessageQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate for validating MessageQuery struct
func (q *MessageQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
