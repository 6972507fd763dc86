//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestGormAccountRepository_Create_Success(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	account := CreateTestAccount(t, "alice.testnet")
	err := ctxDB.AccountRepo.Create(ctx, account)
	require.NoError(t, err)

	fetched, err := ctxDB.AccountRepo.GetByID(ctx, "alice.testnet")
	require.NoError(t, err)
	require.Equal(t, account.ID, fetched.ID)
}

func TestGormAccountRepository_Create_Fail_InvalidEntity(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)

	account := CreateTestAccount(t, "A") // too short, not lowercase
	err := ctxDB.AccountRepo.Create(context.Background(), account)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation")
}

func TestGormAccountRepository_GetByID_NotFound(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)

	_, err := ctxDB.AccountRepo.GetByID(context.Background(), "ghost.testnet")
	require.Error(t, err)
	require.ErrorIs(t, err, accounts.ErrNotRegistered)
}

func TestGormAccountRepository_Exists(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	exists, err := ctxDB.AccountRepo.Exists(ctx, "alice.testnet")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, ctxDB.AccountRepo.Create(ctx, CreateTestAccount(t, "alice.testnet")))

	exists, err = ctxDB.AccountRepo.Exists(ctx, "alice.testnet")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGormAccountRepository_List_And_Count(t *testing.T) {
	ctxDB := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, id := range []string{"alice.testnet", "bob.testnet"} {
		require.NoError(t, ctxDB.AccountRepo.Create(ctx, CreateTestAccount(t, id)))
	}

	listed, err := ctxDB.AccountRepo.List(ctx, accounts.NewAccountQuery())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	count, err := ctxDB.AccountRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
