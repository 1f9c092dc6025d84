package lead

import "errors"

// Domain-specific errors for the lead package.
var (
	ErrNotReady        = errors.New("lead is missing required fields")
	ErrSubmitFailed    = errors.New("lead submission failed")
	ErrMissingPublicID = errors.New("lead submission response has no public-id header")
)
