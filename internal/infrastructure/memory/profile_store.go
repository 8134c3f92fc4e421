package memory

import (
	"context"
	"sync"

	"therapist-match/internal/domain/profile"

	"github.com/google/uuid"
)

// ProfileStore keeps questionnaire profiles in process memory. Used in demo
// mode where no database or directory service is configured.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]profile.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (s *ProfileStore) Upsert(_ context.Context, p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
	return nil
}

func (s *ProfileStore) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}
