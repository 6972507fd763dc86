package commands

import (
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AccountCommandHandler encapsulates logic for handling account operations via CLI.
type AccountCommandHandler struct {
	logger logger.Logger
}

// NewAccountCommandHandler initializes and returns an AccountCommandHandler instance with
// a configured logger.
func NewAccountCommandHandler() (*AccountCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AccountCommandHandler{
		logger: loggerInstance,
	}, nil
}

// RegisterAccountCmd registers a chat account
func (commandHandler *AccountCommandHandler) RegisterAccountCmd(cmd *cobra.Command, _ []string) {
	accountID, err := cmd.Flags().GetString("account-id")
	if err != nil {
		commandHandler.logger.Error("invalid account-id flag ", err)
		return
	}

	services, err := setupServices(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	account, created, err := services.account.Register(cmd.Context(), accountID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if created {
		commandHandler.logger.Info("Registered account ", account.ID)
	} else {
		commandHandler.logger.Info("Account ", account.ID, " is already registered")
	}
}

// ListAccountsCmd lists registered accounts newest-first
func (commandHandler *AccountCommandHandler) ListAccountsCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		commandHandler.logger.Error("invalid offset flag ", err)
		return
	}

	services, err := setupServices(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	query := accounts.NewAccountQuery()
	if limit > 0 {
		query.Limit = limit
	}
	if offset > 0 {
		query.Offset = offset
	}

	accountList, err := services.account.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, account := range accountList {
		commandHandler.logger.Info(account.ID, " registered at ", account.DateTimeCreated.Format("2006-01-02 15:04:05"))
	}
}

// CountAccountsCmd prints the total number of registered accounts
func (commandHandler *AccountCommandHandler) CountAccountsCmd(cmd *cobra.Command, _ []string) {
	services, err := setupServices(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	count, err := services.account.Count(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Registered accounts: ", count)
}

// AddFriendCmd records a mutual friendship between two accounts
func (commandHandler *AccountCommandHandler) AddFriendCmd(cmd *cobra.Command, _ []string) {
	accountID, err := cmd.Flags().GetString("account-id")
	if err != nil {
		commandHandler.logger.Error("invalid account-id flag ", err)
		return
	}

	friendID, err := cmd.Flags().GetString("friend-id")
	if err != nil {
		commandHandler.logger.Error("invalid friend-id flag ", err)
		return
	}

	services, err := setupServices(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := services.friendship.AddFriend(cmd.Context(), accountID, friendID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(accountID, " and ", friendID, " are now friends")
}

// InitAccountCommands registers account-related commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	handler, err := NewAccountCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create account command handler %w", err)
	}

	var registerAccountCmd = &cobra.Command{
		Use:   "register-account",
		Short: "Register a chat account",
		Run:   handler.RegisterAccountCmd,
	}
	registerAccountCmd.Flags().StringP("account-id", "", "", "Account id to register")
	addDatabaseFlags(registerAccountCmd)
	rootCmd.AddCommand(registerAccountCmd)

	var listAccountsCmd = &cobra.Command{
		Use:   "list-accounts",
		Short: "List registered accounts newest-first",
		Run:   handler.ListAccountsCmd,
	}
	listAccountsCmd.Flags().IntP("limit", "", 10, "Limit the number of results")
	listAccountsCmd.Flags().IntP("offset", "", 0, "Offset the results")
	addDatabaseFlags(listAccountsCmd)
	rootCmd.AddCommand(listAccountsCmd)

	var countAccountsCmd = &cobra.Command{
		Use:   "count-accounts",
		Short: "Count registered accounts",
		Run:   handler.CountAccountsCmd,
	}
	addDatabaseFlags(countAccountsCmd)
	rootCmd.AddCommand(countAccountsCmd)

	var addFriendCmd = &cobra.Command{
		Use:   "add-friend",
		Short: "Record a mutual friendship between two accounts",
		Run:   handler.AddFriendCmd,
	}
	addFriendCmd.Flags().StringP("account-id", "", "", "Account id")
	addFriendCmd.Flags().StringP("friend-id", "", "", "Friend account id")
	addDatabaseFlags(addFriendCmd)
	rootCmd.AddCommand(addFriendCmd)

	return nil
}
