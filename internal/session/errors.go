package session

import "errors"

// ErrSessionNotFound is returned by lookups that must not create a session.
var ErrSessionNotFound = errors.New("session not found")
