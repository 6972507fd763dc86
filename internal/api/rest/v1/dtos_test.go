//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAccountRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterAccountRequest
		shouldErr bool
	}{
		{"Valid named account", RegisterAccountRequest{AccountID: "alice.testnet"}, false},
		{"Valid implicit account", RegisterAccountRequest{AccountID: "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de"}, false},
		{"Missing id", RegisterAccountRequest{}, true},
		{"Too short", RegisterAccountRequest{AccountID: "a"}, true},
		{"Uppercase", RegisterAccountRequest{AccountID: "Alice.Testnet"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestAddFriendRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AddFriendRequest
		shouldErr bool
	}{
		{"Valid pair", AddFriendRequest{AccountID: "alice.testnet", FriendID: "bob.testnet"}, false},
		{"Missing friend id", AddFriendRequest{AccountID: "alice.testnet"}, true},
		{"Missing account id", AddFriendRequest{FriendID: "bob.testnet"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestSendMessageRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   SendMessageRequest
		shouldErr bool
	}{
		{"Valid message", SendMessageRequest{SenderID: "alice.testnet", ReceiverID: "bob.testnet", Content: "hi"}, false},
		{"Empty content", SendMessageRequest{SenderID: "alice.testnet", ReceiverID: "bob.testnet", Content: ""}, true},
		{"Missing receiver", SendMessageRequest{SenderID: "alice.testnet", Content: "hi"}, true},
		{"Missing sender", SendMessageRequest{ReceiverID: "bob.testnet", Content: "hi"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestChatIDResponse_Creation(t *testing.T) {
	response := ChatIDResponse{
		ChatID: "9e86d9df7fa9a6a967d3a0d1eb6d8ba1bf5ec03baf6b6b3183d18c5b24d99b07",
	}

	require.Len(t, response.ChatID, 64)
}
