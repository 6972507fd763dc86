package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Account entity
type Account struct {
	ID              string    `validate:"required,min=2,max=64,lowercase"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

// AccountQuery represents pagination options for listing accounts
type AccountQuery struct {
	Limit  int `validate:"required,gte=1,lte=100"`
	Offset int `validate:"gte=0"`
}

// NewAccountQuery creates an AccountQuery with default pagination values
func NewAccountQuery() *AccountQuery {
	return &AccountQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate for validating AccountQuery struct
func (q *AccountQuery) Validate() error {
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
