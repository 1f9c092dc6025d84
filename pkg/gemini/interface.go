package gemini

import "context"

// IGemini is a client for the generateContent endpoint.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent returns the first candidate. Blocked prompts and
	// empty candidate lists are reported as ErrBlocked and ErrNoCandidates.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model name requests are sent to.
	Model() string
}
