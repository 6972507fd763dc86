package friendships

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Friendship entity. Friendships are stored in both directions, so a mutual
// friendship occupies two rows.
type Friendship struct {
	AccountID       string    `validate:"required,min=2,max=64,lowercase"`
	FriendID        string    `validate:"required,min=2,max=64,lowercase"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Friendship struct
func (f *Friendship) Validate() error {
	validate := validator.New()

	err := validate.Struct(f)
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

	if f.AccountID == f.FriendID {
		return fmt.Errorf("account %s: %w", f.AccountID, ErrSelfFriendship)
	}

	return nil
}
