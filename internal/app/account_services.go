package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"
)

// accountService implements the AccountService interface for registering and listing accounts
type accountService struct {
	accountRepo accounts.AccountRepository
	logger      logger.Logger
}

// NewAccountService creates a new accountService instance
func NewAccountService(accountRepo accounts.AccountRepository, logger logger.Logger) (accounts.AccountService, error) {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

// Register registers the given account id. Re-registering an existing id is
// not an error; it returns the stored account and false.
func (s *accountService) Register(ctx context.Context, accountID string) (*accounts.Account, bool, error) {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return nil, false, fmt.Errorf("%w", err)
	}

	if exists {
		account, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, false, fmt.Errorf("%w", err)
		}
		return account, false, nil
	}

	account := &accounts.Account{
		ID:              accountID,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, false, fmt.Errorf("%w", err)
	}

	s.logger.Info("Registered account ", accountID)
	return account, true, nil
}

// List retrieves registered accounts newest-first based on a query.
func (s *accountService) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	accountList, err := s.accountRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return accountList, nil
}

// Count returns the total number of registered accounts.
func (s *accountService) Count(ctx context.Context) (int64, error) {
	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return count, nil
}
