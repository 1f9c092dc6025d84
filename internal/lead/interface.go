package lead

import "context"

// Submitter posts a completed Lead Record to the lead-management service
// and returns the public id it assigned.
type Submitter interface {
	Submit(ctx context.Context, rec Record) (string, error)
}
