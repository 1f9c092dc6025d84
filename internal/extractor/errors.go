package extractor

import "errors"

// Domain-specific errors for the extractor package.
var (
	ErrExtraction    = errors.New("could not extract lead fields")
	ErrEmptyResponse = errors.New("empty LLM response")
	ErrNothingToAsk  = errors.New("no missing fields to ask for")
)
