package session

// Store owns every live Session, keyed by user id.
type Store interface {
	// Resolve returns the session for id, creating it if absent.
	Resolve(id string) *Session

	// Get returns an existing session or ErrSessionNotFound.
	Get(id string) (*Session, error)

	// Clear removes the session. It reports whether one existed; unknown ids are a no-op.
	Clear(id string) bool

	// List returns the held ids in creation order.
	List() []string

	// Len returns the number of live sessions.
	Len() int
}
