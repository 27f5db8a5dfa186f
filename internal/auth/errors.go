package auth

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when no allow-list entry matches.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyIdentifier = errors.New("credential identifier required")
)
