package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrSessionNotFound = errors.New("user session not found")
	ErrInvalidRequest  = errors.New("invalid chat request")
)
