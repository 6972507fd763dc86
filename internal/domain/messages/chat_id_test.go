//go:build unit
// +build unit

package messages

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatID_Deterministic(t *testing.T) {
	first := ChatID("alice.testnet", "bob.testnet")
	second := ChatID("alice.testnet", "bob.testnet")

	assert.Equal(t, first, second)
}

func TestChatID_IsHexEncodedKeccakDigest(t *testing.T) {
	chatID := ChatID("alice.testnet", "bob.testnet")

	require.Len(t, chatID, 64)
	raw, err := hex.DecodeString(chatID)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestChatID_OrderDependent(t *testing.T) {
	forward := ChatID("alice.testnet", "bob.testnet")
	backward := ChatID("bob.testnet", "alice.testnet")

	assert.NotEqual(t, forward, backward)
}

func TestChatID_DistinctPairs(t *testing.T) {
	assert.NotEqual(t,
		ChatID("alice.testnet", "bob.testnet"),
		ChatID("alice.testnet", "carol.testnet"),
	)
}
