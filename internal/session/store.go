package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"lead-intake-agent/internal/lead"
	pkgLog "lead-intake-agent/pkg/log"
)

// CollectorFactory builds the collector for a new session.
type CollectorFactory func() *lead.Collector

type memStore struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	seq          uint64
	newCollector CollectorFactory
	l            pkgLog.Logger
}

// NewStore creates a process-local session store. Sessions live until
// cleared or the process exits.
func NewStore(newCollector CollectorFactory, l pkgLog.Logger) Store {
	return &memStore{
		sessions:     make(map[string]*Session),
		newCollector: newCollector,
		l:            l,
	}
}

func (s *memStore) Resolve(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have created it between the locks.
	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	s.seq++
	sess = &Session{
		ID:        id,
		Memory:    NewMemory(),
		Collector: s.newCollector(),
		CreatedAt: time.Now(),
		seq:       s.seq,
	}
	s.sessions[id] = sess
	s.l.Debugf(context.Background(), "internal.session.Resolve: created session %s", id)
	return sess
}

func (s *memStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *memStore) Clear(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	s.l.Debugf(context.Background(), "internal.session.Clear: removed session %s", id)
	return true
}

func (s *memStore) List() []string {
	s.mu.RLock()
	all := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })

	ids := make([]string, len(all))
	for i, sess := range all {
		ids[i] = sess.ID
	}
	return ids
}

func (s *memStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
