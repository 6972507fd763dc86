package commands

import (
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/app"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// chatServices bundles the application services the CLI commands operate on.
type chatServices struct {
	account    accounts.AccountService
	friendship friendships.FriendshipService
	messaging  messages.MessagingService
}

// addDatabaseFlags registers the database connection flags shared by all commands.
func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("db-type", "", config.SqliteDbType, "Database type (sqlite or postgres)")
	cmd.Flags().StringP("db-dsn", "", "chat.db", "Database DSN (file path for sqlite)")
}

// setupServices builds the application services from the database flags of cmd.
func setupServices(cmd *cobra.Command, log logger.Logger) (*chatServices, error) {
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		return nil, fmt.Errorf("invalid db-type flag: %w", err)
	}

	dbDSN, err := cmd.Flags().GetString("db-dsn")
	if err != nil {
		return nil, fmt.Errorf("invalid db-dsn flag: %w", err)
	}

	settings := config.DatabaseSettings{
		Type: dbType,
		DSN:  dbDSN,
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.AccountModel{}, &models.FriendshipModel{}, &models.MessageModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	friendshipRepo, err := persistence.NewGormFriendshipRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship repository: %w", err)
	}

	messageRepo, err := persistence.NewGormMessageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}

	accountService, err := app.NewAccountService(accountRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	friendshipService, err := app.NewFriendshipService(accountRepo, friendshipRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship service: %w", err)
	}

	messagingService, err := app.NewMessagingService(accountRepo, friendshipService, messageRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &chatServices{
		account:    accountService,
		friendship: friendshipService,
		messaging:  messagingService,
	}, nil
}
