package memory

import (
	"context"
	"sync"
	"time"

	"therapist-match/internal/usecase"

	"github.com/google/uuid"
)

// SessionStore holds session records in process memory. Expired records are
// discarded on read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]usecase.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]usecase.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Save(_ context.Context, sess usecase.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.User.ID] = sess
	return nil
}

func (s *SessionStore) Find(_ context.Context, userID uuid.UUID) (usecase.Session, bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return usecase.Session{}, false, nil
	}
	if s.now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
		return usecase.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *SessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
