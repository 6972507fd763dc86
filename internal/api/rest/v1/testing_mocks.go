//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"

	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, accountID string) (*accounts.Account, bool, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*accounts.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountService) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Account), args.Error(1)
}

func (m *MockAccountService) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFriendshipService is a mock implementation of FriendshipService
type MockFriendshipService struct {
	mock.Mock
}

func (m *MockFriendshipService) AddFriend(ctx context.Context, accountID, friendID string) error {
	args := m.Called(ctx, accountID, friendID)
	return args.Error(0)
}

func (m *MockFriendshipService) AreFriends(ctx context.Context, accountID, friendID string) (bool, error) {
	args := m.Called(ctx, accountID, friendID)
	return args.Bool(0), args.Error(1)
}

// MockMessagingService is a mock implementation of MessagingService
type MockMessagingService struct {
	mock.Mock
}

func (m *MockMessagingService) SendMessage(ctx context.Context, senderID, receiverID, content string) (*messages.Message, error) {
	args := m.Called(ctx, senderID, receiverID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessagingService) ListMessages(ctx context.Context, userID, receiverID string, query *messages.MessageQuery) ([]*messages.Message, error) {
	args := m.Called(ctx, userID, receiverID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messages.Message), args.Error(1)
}
