package session

import "sync"

// Memory is an append-only conversation log.
type Memory struct {
	mu    sync.RWMutex
	turns []Turn
}

// NewMemory creates an empty log.
func NewMemory() *Memory {
	return &Memory{}
}

// AppendUser records a user turn.
func (m *Memory) AppendUser(text string) {
	m.append(RoleUser, text)
}

// AppendAssistant records an assistant turn.
func (m *Memory) AppendAssistant(text string) {
	m.append(RoleAssistant, text)
}

func (m *Memory) append(role Role, text string) {
	m.mu.Lock()
	m.turns = append(m.turns, Turn{Role: role, Content: text})
	m.mu.Unlock()
}

// Snapshot returns a copy of all turns in insertion order.
func (m *Memory) Snapshot() []Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Recent returns a copy of the last n turns. n <= 0 returns every turn.
func (m *Memory) Recent(n int) []Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if n > 0 && len(m.turns) > n {
		start = len(m.turns) - n
	}
	out := make([]Turn, len(m.turns)-start)
	copy(out, m.turns[start:])
	return out
}

// Len returns the number of turns.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}
