package chat

import "lead-intake-agent/internal/session"

// ChatInput is one applicant message. UserID may be empty.
type ChatInput struct {
	Message string
	UserID  string
}

// ChatOutput is the assistant reply. LeadID is set only after a successful submission in this turn.
type ChatOutput struct {
	Response string
	UserID   string
	LeadID   string
}

type SessionsOutput struct {
	ActiveSessions []string
	Count          int
}

type ClearOutput struct {
	Message string
	Existed bool
}

type HistoryOutput struct {
	History []session.Turn
	UserID  string
}

// LeadOutput is a read-only view of a session's collector.
type LeadOutput struct {
	UserID  string
	Lead    map[string]string
	Missing []string
	Ready   bool
	LeadID  string
}
