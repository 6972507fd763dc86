package friendships

import (
	"context"
)

// FriendshipService defines methods for managing the friend graph.
type FriendshipService interface {
	// AddFriend records a mutual friendship between two registered accounts.
	// It returns any error encountered during the process. Adding an existing
	// friendship again has no effect.
	AddFriend(ctx context.Context, accountID, friendID string) error

	// AreFriends reports whether the two account ids are friends.
	AreFriends(ctx context.Context, accountID, friendID string) (bool, error)
}

// FriendshipRepository defines the interface for Friendship-related operations
type FriendshipRepository interface {
	Upsert(ctx context.Context, friendship *Friendship) error
	Exists(ctx context.Context, accountID, friendID string) (bool, error)
}
