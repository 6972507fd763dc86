//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	AccountRepo    accounts.AccountRepository
	FriendshipRepo friendships.FriendshipRepository
	MessageRepo    messages.MessageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.AccountModel{}, &models.FriendshipModel{}, &models.MessageModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	accountRepo, err := NewGormAccountRepository(db, log)
	require.NoError(t, err, "Failed to create account repository")

	friendshipRepo, err := NewGormFriendshipRepository(db, log)
	require.NoError(t, err, "Failed to create friendship repository")

	messageRepo, err := NewGormMessageRepository(db, log)
	require.NoError(t, err, "Failed to create message repository")

	return &TestContext{
		DB:             db,
		AccountRepo:    accountRepo,
		FriendshipRepo: friendshipRepo,
		MessageRepo:    messageRepo,
	}
}

// CreateTestAccount creates a test account with default values
func CreateTestAccount(t *testing.T, accountID string) *accounts.Account {
	t.Helper()

	return &accounts.Account{
		ID:              accountID,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestMessage creates a test message between the two account ids
func CreateTestMessage(t *testing.T, author, receiver, content string) *messages.Message {
	t.Helper()

	return &messages.Message{
		ID:          uuid.NewString(),
		ChatID:      messages.ChatID(author, receiver),
		Author:      author,
		Content:     content,
		CreatedAtMs: time.Now().UnixMilli(),
	}
}
