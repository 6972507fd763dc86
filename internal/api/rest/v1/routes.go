package v1

import (
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	accountService accounts.AccountService,
	friendshipService friendships.FriendshipService,
	messagingService messages.MessagingService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Account Routes
	accountHandler := NewAccountHandler(accountService, friendshipService)
	v1.POST("/accounts", accountHandler.Register)
	v1.GET("/accounts", accountHandler.List)
	v1.GET("/accounts/count", accountHandler.Count)
	v1.POST("/friends", accountHandler.AddFriend)

	// Message Routes
	messageHandler := NewMessageHandler(messagingService)
	v1.POST("/messages", messageHandler.Send)
	v1.GET("/chats/id", messageHandler.GetChatID)
	v1.GET("/chats/messages", messageHandler.ListMessages)
}
