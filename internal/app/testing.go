//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService    accounts.AccountService
	FriendshipService friendships.FriendshipService
	MessagingService  messages.MessagingService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	accountService, err := NewAccountService(dbContext.AccountRepo, log)
	require.NoError(t, err, "Failed to create AccountService")

	friendshipService, err := NewFriendshipService(dbContext.AccountRepo, dbContext.FriendshipRepo, log)
	require.NoError(t, err, "Failed to create FriendshipService")

	messagingService, err := NewMessagingService(dbContext.AccountRepo, friendshipService, dbContext.MessageRepo, log)
	require.NoError(t, err, "Failed to create MessagingService")

	return &TestServices{
		AccountService:    accountService,
		FriendshipService: friendshipService,
		MessagingService:  messagingService,
		DBContext:         dbContext,
	}
}
