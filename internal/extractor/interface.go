package extractor

import (
	"context"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/pkg/llmprovider"
)

// Extractor wraps the LLM behind the two conversational operations.
type Extractor interface {
	// Extract parses one utterance into a Lead Record fragment.
	Extract(ctx context.Context, utterance string) (lead.Fragment, error)

	// Ask produces a reply requesting at most one missing field.
	Ask(ctx context.Context, input AskInput) (string, error)
}

// LLM is the subset of llmprovider.Manager used here.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
