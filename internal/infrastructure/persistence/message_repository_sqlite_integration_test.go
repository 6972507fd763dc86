//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGormMessageRepository_Create_And_List(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	chatID := messages.ChatID("alice.testnet", "bob.testnet")
	for i := 0; i < 3; i++ {
		message := CreateTestMessage(t, "alice.testnet", "bob.testnet", fmt.Sprintf("message %d", i))
		require.NoError(t, ctxDB.MessageRepo.Create(ctx, message))
	}

	listed, err := ctxDB.MessageRepo.ListByChatID(ctx, chatID, messages.NewMessageQuery())
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Append order reversed.
	require.Equal(t, "message 2", listed[0].Content)
	require.Equal(t, "message 0", listed[2].Content)
}

func TestGormMessageRepository_Create_Fail_InvalidEntity(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)

	message := &messages.Message{
		ID:          uuid.NewString(),
		ChatID:      "not-a-chat-id",
		Author:      "alice.testnet",
		Content:     "hi",
		CreatedAtMs: time.Now().UnixMilli(),
	}

	err := ctxDB.MessageRepo.Create(context.Background(), message)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation")
}

func TestGormMessageRepository_ListByChatID_Pagination(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	chatID := messages.ChatID("alice.testnet", "bob.testnet")
	for i := 0; i < 5; i++ {
		message := CreateTestMessage(t, "alice.testnet", "bob.testnet", fmt.Sprintf("message %d", i))
		require.NoError(t, ctxDB.MessageRepo.Create(ctx, message))
	}

	query := messages.NewMessageQuery()
	query.Limit = 2
	query.Offset = 2

	listed, err := ctxDB.MessageRepo.ListByChatID(ctx, chatID, query)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "message 2", listed[0].Content)
	require.Equal(t, "message 1", listed[1].Content)
}

func TestGormMessageRepository_CountByChatID(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	chatID := messages.ChatID("alice.testnet", "bob.testnet")

	count, err := ctxDB.MessageRepo.CountByChatID(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	require.NoError(t, ctxDB.MessageRepo.Create(ctx, CreateTestMessage(t, "alice.testnet", "bob.testnet", "hi")))

	count, err = ctxDB.MessageRepo.CountByChatID(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestGormFriendshipRepository_Upsert_And_Exists(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	friendship := &friendships.Friendship{
		AccountID:       "alice.testnet",
		FriendID:        "bob.testnet",
		DateTimeCreated: time.Now(),
	}

	require.NoError(t, ctxDB.FriendshipRepo.Upsert(ctx, friendship))
	// Upsert is idempotent.
	require.NoError(t, ctxDB.FriendshipRepo.Upsert(ctx, friendship))

	exists, err := ctxDB.FriendshipRepo.Exists(ctx, "alice.testnet", "bob.testnet")
	require.NoError(t, err)
	require.True(t, exists)

	// Direction matters at the repository level.
	exists, err = ctxDB.FriendshipRepo.Exists(ctx, "bob.testnet", "alice.testnet")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestGormFriendshipRepository_Upsert_Fail_SelfFriendship(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)

	friendship := &friendships.Friendship{
		AccountID:       "alice.testnet",
		FriendID:        "alice.testnet",
		DateTimeCreated: time.Now(),
	}

	err := ctxDB.FriendshipRepo.Upsert(context.Background(), friendship)
	require.Error(t, err)
	require.ErrorIs(t, err, friendships.ErrSelfFriendship)
}
