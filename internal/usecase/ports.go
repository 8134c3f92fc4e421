package usecase

import (
	"context"
	"time"

	"therapist-match/internal/domain/profile"
	"therapist-match/internal/domain/therapist"

	"github.com/google/uuid"
)

// ProfileStore persists questionnaire profiles, keyed by user identity.
// Implementations: Postgres, directory-service REST client, in-memory (demo).
type ProfileStore interface {
	Upsert(ctx context.Context, p profile.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
}

// TherapistDirectory lists the candidate therapists. The matching pipeline
// fetches the directory exactly once per invocation.
type TherapistDirectory interface {
	ListTherapists(ctx context.Context) ([]therapist.Therapist, error)
}

// ChatCompleter submits a single-turn prompt to the external text-generation
// service and returns the reply's textual content.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SessionUser is the identity attached to a session record.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the persisted session record. Records past ExpiresAt are
// discarded on read.
type Session struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// SessionStore keeps one session record per user. Implementations: Redis
// (degrading gracefully when unreachable), in-memory.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Find(ctx context.Context, userID uuid.UUID) (Session, bool, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// MatchNotifier publishes match lifecycle events so clients can track
// in-flight requests and discard stale results by request id.
type MatchNotifier interface {
	MatchStarted(userID uuid.UUID, requestID string)
	MatchCompleted(userID uuid.UUID, requestID string, matches int)
	MatchFailed(userID uuid.UUID, requestID string, reason string)
}
