//go:build unit
// +build unit

package friendships

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFriendship_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		friendship Friendship
		shouldErr  bool
	}{
		{"valid friendship", Friendship{AccountID: "alice.testnet", FriendID: "bob.testnet", DateTimeCreated: now}, false},
		{"missing account id", Friendship{FriendID: "bob.testnet", DateTimeCreated: now}, true},
		{"missing friend id", Friendship{AccountID: "alice.testnet", DateTimeCreated: now}, true},
		{"self friendship", Friendship{AccountID: "alice.testnet", FriendID: "alice.testnet", DateTimeCreated: now}, true},
		{"missing creation time", Friendship{AccountID: "alice.testnet", FriendID: "bob.testnet"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.friendship.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFriendship_Validate_SelfFriendshipSentinel(t *testing.T) {
	friendship := Friendship{
		AccountID:       "alice.testnet",
		FriendID:        "alice.testnet",
		DateTimeCreated: time.Now(),
	}

	err := friendship.Validate()
	require.ErrorIs(t, err, ErrSelfFriendship)
}
