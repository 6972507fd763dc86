package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"
)

// friendshipService implements the FriendshipService interface for managing the friend graph
type friendshipService struct {
	accountRepo    accounts.AccountRepository
	friendshipRepo friendships.FriendshipRepository
	logger         logger.Logger
}

// NewFriendshipService creates a new friendshipService instance
func NewFriendshipService(
	accountRepo accounts.AccountRepository,
	friendshipRepo friendships.FriendshipRepository,
	logger logger.Logger,
) (friendships.FriendshipService, error) {
	return &friendshipService{
		accountRepo:    accountRepo,
		friendshipRepo: friendshipRepo,
		logger:         logger,
	}, nil
}

// AddFriend records a mutual friendship between the two account ids.
// Both accounts must be registered and distinct.
func (s *friendshipService) AddFriend(ctx context.Context, accountID, friendID string) error {
	if err := s.requireRegistered(ctx, accountID); err != nil {
		return err
	}
	if err := s.requireRegistered(ctx, friendID); err != nil {
		return err
	}

	if accountID == friendID {
		return fmt.Errorf("account %s: %w", accountID, friendships.ErrSelfFriendship)
	}

	now := time.Now().UTC()

	// Friendship is stored in both directions.
	if err := s.friendshipRepo.Upsert(ctx, &friendships.Friendship{
		AccountID:       accountID,
		FriendID:        friendID,
		DateTimeCreated: now,
	}); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.friendshipRepo.Upsert(ctx, &friendships.Friendship{
		AccountID:       friendID,
		FriendID:        accountID,
		DateTimeCreated: now,
	}); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Added friendship between ", accountID, " and ", friendID)
	return nil
}

// AreFriends reports whether the two account ids are friends.
func (s *friendshipService) AreFriends(ctx context.Context, accountID, friendID string) (bool, error) {
	areFriends, err := s.friendshipRepo.Exists(ctx, accountID, friendID)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	return areFriends, nil
}

func (s *friendshipService) requireRegistered(ctx context.Context, accountID string) error {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if !exists {
		return fmt.Errorf("account %s: %w", accountID, accounts.ErrNotRegistered)
	}
	return nil
}
