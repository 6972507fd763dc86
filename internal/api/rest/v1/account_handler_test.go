//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_Register_Created(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	account := &accounts.Account{
		ID:              "alice.near",
		DateTimeCreated: time.Now().UTC(),
	}

	requestBody := `{"account_id": "alice.near"}`

	mockAccountService.
		On("Register", mock.Anything, "alice.near").
		Return(account, true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/accounts", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "alice.near")
	assert.Contains(t, w.Body.String(), `"created":true`)
	mockAccountService.AssertExpectations(t)
}

func TestAccountHandler_Register_AlreadyRegistered(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	account := &accounts.Account{
		ID:              "alice.near",
		DateTimeCreated: time.Now().UTC(),
	}

	requestBody := `{"account_id": "alice.near"}`

	mockAccountService.
		On("Register", mock.Anything, "alice.near").
		Return(account, false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/accounts", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":false`)
	mockAccountService.AssertExpectations(t)
}

func TestAccountHandler_Register_InvalidPayload(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	requestBody := `{"account_id": ""}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/accounts", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockAccountService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAccountHandler_List_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	accountList := []*accounts.Account{
		{ID: "bob.near", DateTimeCreated: time.Now().UTC()},
		{ID: "alice.near", DateTimeCreated: time.Now().UTC().Add(-time.Minute)},
	}

	mockAccountService.
		On("List", mock.Anything, mock.Anything).
		Return(accountList, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/accounts?limit=2&offset=0", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob.near")
	assert.Contains(t, w.Body.String(), "alice.near")
	mockAccountService.AssertExpectations(t)
}

func TestAccountHandler_List_InvalidLimit(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/accounts?limit=1000", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAccountService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAccountHandler_List_ZeroLimitUsesDefault(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	mockAccountService.
		On("List", mock.Anything, mock.MatchedBy(func(query *accounts.AccountQuery) bool {
			return query.Limit == 10 && query.Offset == 0
		})).
		Return([]*accounts.Account{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/accounts?limit=0&offset=0", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAccountService.AssertExpectations(t)
}

func TestAccountHandler_Count_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	mockAccountService.
		On("Count", mock.Anything).
		Return(int64(7), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/accounts/count", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Count(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":7`)
	mockAccountService.AssertExpectations(t)
}

func TestAccountHandler_AddFriend_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	requestBody := `{"account_id": "alice.near", "friend_id": "bob.near"}`

	mockFriendshipService.
		On("AddFriend", mock.Anything, "alice.near", "bob.near").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/friends", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddFriend(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "are now friends")
	mockFriendshipService.AssertExpectations(t)
}

func TestAccountHandler_AddFriend_NotRegistered(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	requestBody := `{"account_id": "alice.near", "friend_id": "ghost.near"}`

	mockFriendshipService.
		On("AddFriend", mock.Anything, "alice.near", "ghost.near").
		Return(accounts.ErrNotRegistered)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/friends", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddFriend(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockFriendshipService.AssertExpectations(t)
}

func TestAccountHandler_AddFriend_Self(t *testing.T) {
	mockAccountService := new(MockAccountService)
	mockFriendshipService := new(MockFriendshipService)

	handler := NewAccountHandler(mockAccountService, mockFriendshipService)

	requestBody := `{"account_id": "alice.near", "friend_id": "alice.near"}`

	mockFriendshipService.
		On("AddFriend", mock.Anything, "alice.near", "alice.near").
		Return(friendships.ErrSelfFriendship)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/friends", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddFriend(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockFriendshipService.AssertExpectations(t)
}
