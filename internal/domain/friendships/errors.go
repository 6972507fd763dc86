package friendships

import "errors"

var (
	// ErrSelfFriendship indicates an attempt to befriend oneself.
	ErrSelfFriendship = errors.New("cannot add self as friend")

	// ErrNotFriends indicates that two accounts are not friends.
	ErrNotFriends = errors.New("accounts are not friends")
)
