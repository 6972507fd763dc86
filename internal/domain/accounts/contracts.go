package accounts

import (
	"context"
)

// AccountService defines methods for registering and listing chat accounts.
type AccountService interface {
	// Register registers the given account id.
	// It returns the account, whether it was newly created, and any error
	// encountered during the registration process. Registering an already
	// known id is not an error and reports created=false.
	Register(ctx context.Context, accountID string) (*Account, bool, error)

	// List retrieves registered accounts newest-first considering pagination options.
	// It returns a slice of Account and any error encountered during the retrieval process.
	List(ctx context.Context, query *AccountQuery) ([]*Account, error)

	// Count returns the total number of registered accounts.
	Count(ctx context.Context) (int64, error)
}

// AccountRepository defines the interface for Account-related operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, accountID string) (*Account, error)
	Exists(ctx context.Context, accountID string) (bool, error)
	List(ctx context.Context, query *AccountQuery) ([]*Account, error)
	Count(ctx context.Context) (int64, error)
}
