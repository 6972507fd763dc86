package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"github.com/google/uuid"
)

// messagingService implements the MessagingService interface for sending and reading chat messages
type messagingService struct {
	accountRepo       accounts.AccountRepository
	friendshipService friendships.FriendshipService
	messageRepo       messages.MessageRepository
	logger            logger.Logger
}

// NewMessagingService creates a new messagingService instance
func NewMessagingService(
	accountRepo accounts.AccountRepository,
	friendshipService friendships.FriendshipService,
	messageRepo messages.MessageRepository,
	logger logger.Logger,
) (messages.MessagingService, error) {
	return &messagingService{
		accountRepo:       accountRepo,
		friendshipService: friendshipService,
		messageRepo:       messageRepo,
		logger:            logger,
	}, nil
}

// SendMessage stores a message from senderID to receiverID. Both accounts
// must be registered and friends, and content must be non-empty.
func (s *messagingService) SendMessage(ctx context.Context, senderID, receiverID, content string) (*messages.Message, error) {
	if err := s.requireRegistered(ctx, senderID); err != nil {
		return nil, err
	}
	if err := s.requireRegistered(ctx, receiverID); err != nil {
		return nil, err
	}

	areFriends, err := s.friendshipService.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !areFriends {
		return nil, fmt.Errorf("%s and %s: %w", senderID, receiverID, friendships.ErrNotFriends)
	}

	if content == "" {
		return nil, fmt.Errorf("%w", messages.ErrEmptyContent)
	}

	message := &messages.Message{
		ID:          uuid.New().String(),
		ChatID:      messages.ChatID(senderID, receiverID),
		Author:      senderID,
		Content:     content,
		CreatedAtMs: time.Now().UnixMilli(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return message, nil
}

// ListMessages retrieves messages of the chat between userID and receiverID,
// newest-first. The chat is looked up under ChatID(userID, receiverID) first
// and under the reversed pair second, so either participant can read the
// shared history.
func (s *messagingService) ListMessages(ctx context.Context, userID, receiverID string, query *messages.MessageQuery) ([]*messages.Message, error) {
	chatID := messages.ChatID(userID, receiverID)

	count, err := s.messageRepo.CountByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if count == 0 {
		chatID = messages.ChatID(receiverID, userID)
		count, err = s.messageRepo.CountByChatID(ctx, chatID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if count == 0 {
			return nil, fmt.Errorf("chat between %s and %s: %w", userID, receiverID, messages.ErrNoMessages)
		}
	}

	messageList, err := s.messageRepo.ListByChatID(ctx, chatID, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return messageList, nil
}

func (s *messagingService) requireRegistered(ctx context.Context, accountID string) error {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if !exists {
		return fmt.Errorf("account %s: %w", accountID, accounts.ErrNotRegistered)
	}
	return nil
}
