package accounts

import "errors"

// ErrNotRegistered indicates that an account id is not registered.
var ErrNotRegistered = errors.New("account is not registered")
