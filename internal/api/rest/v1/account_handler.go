package v1

import (
	"fmt"
	"net/http"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler defines the interface for handling account-related operations
type AccountHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	Count(ctx *gin.Context)
	AddFriend(ctx *gin.Context)
}

// accountHandler struct holds the services
type accountHandler struct {
	accountService    accounts.AccountService
	friendshipService friendships.FriendshipService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService accounts.AccountService, friendshipService friendships.FriendshipService) AccountHandler {
	return &accountHandler{
		accountService:    accountService,
		friendshipService: friendshipService,
	}
}

// Register handles the POST request to register a chat account
// @Summary Register a chat account
// @Description Register the given account id. Registering an already known id is not an error and reports created=false.
// @Tags Account
// @Accept json
// @Produce json
// @Param requestBody body RegisterAccountRequest true "Account Data"
// @Success 201 {object} RegisterAccountResponse
// @Success 200 {object} RegisterAccountResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts [post]
func (handler *accountHandler) Register(ctx *gin.Context) {
	var request RegisterAccountRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid account data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	account, created, err := handler.accountService.Register(ctx, request.AccountID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error registering account: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	response := RegisterAccountResponse{
		AccountID:       account.ID,
		Created:         created,
		DateTimeCreated: account.DateTimeCreated,
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	ctx.JSON(status, response)
}

// List handles the GET request to list registered accounts
// @Summary List registered accounts
// @Description Fetch registered accounts newest-first with pagination options.
// @Tags Account
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} AccountResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts [get]
func (handler *accountHandler) List(ctx *gin.Context) {
	query := accounts.NewAccountQuery()

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

	accountList, err := handler.accountService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AccountResponse{}
	for _, account := range accountList {
		listResponse = append(listResponse, AccountResponse{
			AccountID:       account.ID,
			DateTimeCreated: account.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Count handles the GET request to count registered accounts
// @Summary Count registered accounts
// @Description Fetch the total number of registered accounts.
// @Tags Account
// @Accept json
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts/count [get]
func (handler *accountHandler) Count(ctx *gin.Context) {
	count, err := handler.accountService.Count(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("count query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// AddFriend handles the POST request to record a mutual friendship
// @Summary Add a friend
// @Description Record a mutual friendship between two registered accounts.
// @Tags Account
// @Accept json
// @Produce json
// @Param requestBody body AddFriendRequest true "Friendship Data"
// @Success 201 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /friends [post]
func (handler *accountHandler) AddFriend(ctx *gin.Context) {
	var request AddFriendRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid friendship data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.friendshipService.AddFriend(ctx, request.AccountID, request.FriendID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error adding friend: %v", err.Error())
		ctx.JSON(statusForError(err), errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("%s and %s are now friends", request.AccountID, request.FriendID)
	ctx.JSON(http.StatusCreated, infoResponse)
}
