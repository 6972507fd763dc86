package messages

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// ChatID derives the chat id for a pair of account ids as the hex-encoded
// keccak256 digest of their concatenation. The derivation is order-dependent;
// callers that need either participant's view of a chat must also consult the
// reversed pair.
func ChatID(userID, receiverID string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(userID))
	h.Write([]byte(receiverID))
	return hex.EncodeToString(h.Sum(nil))
}
