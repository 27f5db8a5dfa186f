package route

import "errors"

var (
	ErrUnauthenticated   = errors.New("navigation requires an authenticated session")
	ErrInvalidTransition = errors.New("invalid navigation transition")
	ErrUnknownTab        = errors.New("unknown tab")
)
