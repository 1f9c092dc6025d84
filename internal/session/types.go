package session

import (
	"sync"
	"time"

	"lead-intake-agent/internal/lead"
)

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the conversation log.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session pairs a conversation log with its lead collector.
// Lock/Unlock serialize turn handling for one user.
type Session struct {
	ID        string
	Memory    *Memory
	Collector *lead.Collector
	CreatedAt time.Time

	turn sync.Mutex
	seq  uint64
}

// Lock acquires the per-session turn lock.
func (s *Session) Lock() { s.turn.Lock() }

// Unlock releases the per-session turn lock.
func (s *Session) Unlock() { s.turn.Unlock() }
