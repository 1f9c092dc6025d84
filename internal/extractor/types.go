package extractor

import (
	"time"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/internal/session"
)

// AskInput carries everything the follow-up prompt may use.
type AskInput struct {
	Message string
	Missing []lead.Field
	Known   map[lead.Field]string
	History []session.Turn
}

// Options tunes the extractor.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}
