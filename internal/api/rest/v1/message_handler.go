package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler defines the interface for handling message-related operations
type MessageHandler interface {
	Send(ctx *gin.Context)
	GetChatID(ctx *gin.Context)
	ListMessages(ctx *gin.Context)
}

// messageHandler struct holds the services
type messageHandler struct {
	messagingService messages.MessagingService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messagingService messages.MessagingService) MessageHandler {
	return &messageHandler{
		messagingService: messagingService,
	}
}

// Send handles the POST request to send a chat message
// @Summary Send a chat message
// @Description Store a message from sender to receiver. Both must be registered and friends; content must be non-empty.
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body SendMessageRequest true "Message Data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages [post]
func (handler *messageHandler) Send(ctx *gin.Context) {
	var request SendMessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	message, err := handler.messagingService.SendMessage(ctx, request.SenderID, request.ReceiverID, request.Content)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error sending message: %v", err.Error())
		ctx.JSON(statusForError(err), errorResponse)
		return
	}

	response := MessageResponse{
		ID:          message.ID,
		ChatID:      message.ChatID,
		Author:      message.Author,
		Content:     message.Content,
		CreatedAtMs: message.CreatedAtMs,
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetChatID handles the GET request to derive the chat id for an account pair
// @Summary Derive a chat id
// @Description Derive the keccak256 chat id for the given account pair. The derivation is order-dependent.
// @Tags Chat
// @Accept json
// @Produce json
// @Param user_id query string true "Account id of the caller"
// @Param receiver_id query string true "Account id of the chat partner"
// @Success 200 {object} ChatIDResponse
// @Failure 400 {object} ErrorResponse
// @Router /chats/id [get]
func (handler *messageHandler) GetChatID(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	receiverID := ctx.Query("receiver_id")

	if userID == "" || receiverID == "" {
		var errorResponse ErrorResponse
		errorResponse.Message = "user_id and receiver_id query parameters are required"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, ChatIDResponse{ChatID: messages.ChatID(userID, receiverID)})
}

// ListMessages handles the GET request to list a chat's messages
// @Summary List chat messages
// @Description Fetch the messages of the chat between user_id and receiver_id, newest-first, with pagination options.
// @Tags Chat
// @Accept json
// @Produce json
// @Param user_id query string true "Account id of the caller"
// @Param receiver_id query string true "Account id of the chat partner"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /chats/messages [get]
func (handler *messageHandler) ListMessages(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	receiverID := ctx.Query("receiver_id")

	if userID == "" || receiverID == "" {
		var errorResponse ErrorResponse
		errorResponse.Message = "user_id and receiver_id query parameters are required"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	query := messages.NewMessageQuery()

	// Zero or absent values keep the defaults.
	if limit := utils.ConvertToInt(ctx.Query("limit")); limit > 0 {
		query.Limit = limit
	}

	if offset := utils.ConvertToInt(ctx.Query("offset")); offset > 0 {
		query.Offset = offset
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	messageList, err := handler.messagingService.ListMessages(ctx, userID, receiverID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(statusForError(err), errorResponse)
		return
	}

	var listResponse = []MessageResponse{}
	for _, message := range messageList {
		listResponse = append(listResponse, MessageResponse{
			ID:          message.ID,
			ChatID:      message.ChatID,
			Author:      message.Author,
			Content:     message.Content,
			CreatedAtMs: message.CreatedAtMs,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// statusForError maps domain failure classes to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, accounts.ErrNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, messages.ErrNoMessages):
		return http.StatusNotFound
	case errors.Is(err, friendships.ErrNotFriends):
		return http.StatusForbidden
	case errors.Is(err, friendships.ErrSelfFriendship):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
