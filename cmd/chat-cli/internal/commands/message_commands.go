package commands

import (
	"fmt"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MessageCommandHandler encapsulates logic for handling message operations via CLI.
type MessageCommandHandler struct {
	logger logger.Logger
}

// NewMessageCommandHandler initializes and returns a MessageCommandHandler instance with
// a configured logger.
func NewMessageCommandHandler() (*MessageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MessageCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SendMessageCmd stores a chat message
func (commandHandler *MessageCommandHandler) SendMessageCmd(cmd *cobra.Command, _ []string) {
	senderID, err := cmd.Flags().GetString("sender-id")
	if err != nil {
		commandHandler.logger.Error("invalid sender-id flag ", err)
		return
	}

	receiverID, err := cmd.Flags().GetString("receiver-id")
	if err != nil {
		commandHandler.logger.Error("invalid receiver-id flag ", err)
		return
	}

	content, err := cmd.Flags().GetString("content")
	if err != nil {
		commandHandler.logger.Error("invalid content flag ", err)
		return
	}

	services, err := setupServices(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := services.messaging.SendMessage(cmd.Context(), senderID, receiverID, content)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Message ", message.ID, " stored in chat ", message.ChatID)
}

// ChatIDCmd derives the chat id for an account pair
func (commandHandler *MessageCommandHandler) ChatIDCmd(cmd *cobra.Command, _ []string) {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	receiverID, err := cmd.Flags().GetString("receiver-id")
	if err != nil {
		commandHandler.logger.Error("invalid receiver-id flag ", err)
		return
	}

	if userID == "" || receiverID == "" {
		commandHandler.logger.Error("user-id and receiver-id flags are required")
		return
	}

	commandHandler.logger.Info("Chat id: ", messages.ChatID(userID, receiverID))
}

// ListMessagesCmd lists the messages of a chat newest-first
func (commandHandler *MessageCommandHandler) ListMessagesCmd(cmd *cobra.Command, _ []string) {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	receiverID, err := cmd.Flags().GetString("receiver-id")
	if err != nil {
		commandHandler.logger.Error("invalid receiver-id flag ", err)
		return
	}

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

	query := messages.NewMessageQuery()
	if limit > 0 {
		query.Limit = limit
	}
	if offset > 0 {
		query.Offset = offset
	}

	messageList, err := services.messaging.ListMessages(cmd.Context(), userID, receiverID, query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, message := range messageList {
		sentAt := time.UnixMilli(message.CreatedAtMs).UTC()
		commandHandler.logger.Info(sentAt.Format("2006-01-02 15:04:05"), " ", message.Author, ": ", message.Content)
	}
}

// InitMessageCommands registers message-related commands
func InitMessageCommands(rootCmd *cobra.Command) error {
	handler, err := NewMessageCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create message command handler %w", err)
	}

	var sendMessageCmd = &cobra.Command{
		Use:   "send-message",
		Short: "Send a chat message",
		Run:   handler.SendMessageCmd,
	}
	sendMessageCmd.Flags().StringP("sender-id", "", "", "Account id of the sender")
	sendMessageCmd.Flags().StringP("receiver-id", "", "", "Account id of the receiver")
	sendMessageCmd.Flags().StringP("content", "", "", "Message content")
	addDatabaseFlags(sendMessageCmd)
	rootCmd.AddCommand(sendMessageCmd)

	var chatIDCmd = &cobra.Command{
		Use:   "chat-id",
		Short: "Derive the chat id for an account pair",
		Run:   handler.ChatIDCmd,
	}
	chatIDCmd.Flags().StringP("user-id", "", "", "Account id of the caller")
	chatIDCmd.Flags().StringP("receiver-id", "", "", "Account id of the chat partner")
	rootCmd.AddCommand(chatIDCmd)

	var listMessagesCmd = &cobra.Command{
		Use:   "list-messages",
		Short: "List the messages of a chat newest-first",
		Run:   handler.ListMessagesCmd,
	}
	listMessagesCmd.Flags().StringP("user-id", "", "", "Account id of the caller")
	listMessagesCmd.Flags().StringP("receiver-id", "", "", "Account id of the chat partner")
	listMessagesCmd.Flags().IntP("limit", "", 10, "Limit the number of results")
	listMessagesCmd.Flags().IntP("offset", "", 0, "Offset the results")
	addDatabaseFlags(listMessagesCmd)
	rootCmd.AddCommand(listMessagesCmd)

	return nil
}
