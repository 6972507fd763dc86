//go:build unit
// +build unit

package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name      string
		account   Account
		shouldErr bool
	}{
		{"valid account", Account{ID: "alice.testnet", DateTimeCreated: time.Now()}, false},
		{"valid implicit account", Account{ID: "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de", DateTimeCreated: time.Now()}, false},
		{"missing id", Account{DateTimeCreated: time.Now()}, true},
		{"id too short", Account{ID: "a", DateTimeCreated: time.Now()}, true},
		{"uppercase id", Account{ID: "Alice.Testnet", DateTimeCreated: time.Now()}, true},
		{"missing creation time", Account{ID: "alice.testnet"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewAccountQuery_Defaults(t *testing.T) {
	query := NewAccountQuery()

	require.Equal(t, 10, query.Limit)
	require.Equal(t, 0, query.Offset)
	require.NoError(t, query.Validate())
}
