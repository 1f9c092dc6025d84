package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider call hit its deadline
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates the outbound quota limiter refused to wait
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrPermanent marks failures that repeating the same request cannot fix
	// (bad key, rejected prompt). The manager skips the remaining retries.
	ErrPermanent = errors.New("permanent provider failure")
)

// ProviderError wraps the last error one provider returned.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("provider %s (%d attempts): %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// permanent wraps err so errors.Is(err, ErrPermanent) holds.
func permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}
