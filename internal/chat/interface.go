package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat handles one applicant message and returns the assistant reply.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListSessions returns the live session ids.
	ListSessions(ctx context.Context) (SessionsOutput, error)

	// ClearSession drops a session. Unknown ids succeed.
	ClearSession(ctx context.Context, userID string) (ClearOutput, error)

	// History returns the conversation of an existing session.
	History(ctx context.Context, userID string) (HistoryOutput, error)

	// Lead returns the collected fields of an existing session.
	Lead(ctx context.Context, userID string) (LeadOutput, error)
}
