package memory

import (
	"context"
	"testing"
	"time"

	"therapist-match/internal/usecase"

	"github.com/google/uuid"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	userID := uuid.New()

	sess := usecase.Session{
		User:        usecase.SessionUser{ID: userID, Email: "jordan@example.com"},
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Find(context.Background(), userID)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if got.User.Email != "jordan@example.com" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionStoreDiscardsExpiredOnRead(t *testing.T) {
	store := NewSessionStore()
	userID := uuid.New()

	sess := usecase.Session{
		User:      usecase.SessionUser{ID: userID, Email: "jordan@example.com"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, ok, _ := store.Find(context.Background(), userID); ok {
		t.Fatal("expected expired session to be discarded")
	}

	store.now = time.Now
	if _, ok, _ := store.Find(context.Background(), userID); ok {
		t.Fatal("expected expired session to be deleted, not just hidden")
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()
	userID := uuid.New()

	_ = store.Save(context.Background(), usecase.Session{
		User:      usecase.SessionUser{ID: userID},
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err := store.Delete(context.Background(), userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Find(context.Background(), userID); ok {
		t.Fatal("expected session gone after delete")
	}
}
