package memory

import (
	"context"
	"sync"
	"time"

	"venuedesk/internal/app/auth"
)

// SessionStore keeps admin sessions in memory; expired entries are dropped
// lazily on read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*auth.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*auth.Session)}
}

func (s *SessionStore) Put(ctx context.Context, session *auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*auth.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	if session.Expired(time.Now().UTC()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, auth.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return auth.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
