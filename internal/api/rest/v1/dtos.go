package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterAccountRequest is the payload for registering a chat account
type RegisterAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,min=2,max=64,lowercase"`
}

// Validate for validating RegisterAccountRequest struct
func (r *RegisterAccountRequest) Validate() error {
	return validateStruct(r)
}

// AddFriendRequest is the payload for adding a friend
type AddFriendRequest struct {
	AccountID string `json:"account_id" validate:"required,min=2,max=64,lowercase"`
	FriendID  string `json:"friend_id" validate:"required,min=2,max=64,lowercase"`
}

// Validate for validating AddFriendRequest struct
func (r *AddFriendRequest) Validate() error {
	return validateStruct(r)
}

// SendMessageRequest is the payload for sending a chat message
type SendMessageRequest struct {
	SenderID   string `json:"sender_id" validate:"required,min=2,max=64,lowercase"`
	ReceiverID string `json:"receiver_id" validate:"required,min=2,max=64,lowercase"`
	Content    string `json:"content" validate:"required,min=1"`
}

// Validate for validating SendMessageRequest struct
func (r *SendMessageRequest) Validate() error {
	return validateStruct(r)
}

// RegisterAccountResponse reports the outcome of an account registration
type RegisterAccountResponse struct {
	AccountID       string    `json:"account_id"`
	Created         bool      `json:"created"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// AccountResponse describes a registered account
type AccountResponse struct {
	AccountID       string    `json:"account_id"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// CountResponse carries the total number of registered accounts
type CountResponse struct {
	Count int64 `json:"count"`
}

// MessageResponse describes a stored chat message
type MessageResponse struct {
	ID          string `json:"id"`
	ChatID      string `json:"chat_id"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	CreatedAtMs int64  `json:"created_at_ms"`
}

// ChatIDResponse carries a derived chat id
type ChatIDResponse struct {
	ChatID string `json:"chat_id"`
}

// InfoResponse carries an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
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
