// Package sessions keeps chat sessions in process memory or in redis.
package sessions

import (
	"context"
	"slices"
	"sync"

	"pizzabot/internal/agent"
)

var _ agent.SessionStore = (*MemoryStore)(nil)

// MemoryStore keeps sessions for the life of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]agent.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]agent.Session)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (agent.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return agent.Session{ID: id}, nil
	}
	session.Messages = slices.Clone(session.Messages)
	return session, nil
}

func (s *MemoryStore) Save(_ context.Context, session agent.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.Messages = slices.Clone(session.Messages)
	s.sessions[session.ID] = session
	return nil
}
