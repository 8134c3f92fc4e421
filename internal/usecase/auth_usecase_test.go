package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"therapist-match/internal/pkg/jwt"

	"github.com/google/uuid"
)

type mockSessionStore struct {
	sessions map[uuid.UUID]Session
}

func (m *mockSessionStore) Save(_ context.Context, s Session) error {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]Session)
	}
	m.sessions[s.User.ID] = s
	return nil
}

func (m *mockSessionStore) Find(_ context.Context, userID uuid.UUID) (Session, bool, error) {
	s, ok := m.sessions[userID]
	return s, ok, nil
}

func (m *mockSessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(m.sessions, userID)
	return nil
}

func newTestAuth(store *mockSessionStore) *Auth {
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthUsecase(store, svc, time.Hour)
}

func TestLoginAcceptsAnyEmail(t *testing.T) {
	store := &mockSessionStore{}
	auth := newTestAuth(store)

	res, err := auth.Login(context.Background(), "  Someone@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Session.User.Email != "someone@example.com" {
		t.Fatalf("email not normalized: %q", res.Session.User.Email)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if _, ok := store.sessions[res.Session.User.ID]; !ok {
		t.Fatal("session not saved")
	}
}

func TestLoginDerivesStableUserID(t *testing.T) {
	auth := newTestAuth(&mockSessionStore{})

	first, err := auth.Login(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := auth.Login(context.Background(), "JORDAN@example.com")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if first.Session.User.ID != second.Session.User.ID {
		t.Fatal("same email should map to the same user id")
	}
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	auth := newTestAuth(&mockSessionStore{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := auth.Login(context.Background(), email); !errors.Is(err, ErrEmailRequired) {
			t.Errorf("email %q: expected ErrEmailRequired, got %v", email, err)
		}
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	store := &mockSessionStore{}
	auth := newTestAuth(store)

	res, err := auth.Login(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, refresh, err := auth.Refresh(context.Background(), res.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected rotated tokens")
	}

	sess := store.sessions[res.Session.User.ID]
	if sess.AccessToken != access {
		t.Fatal("session not updated with new access token")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth := newTestAuth(&mockSessionStore{})

	res, err := auth.Login(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := auth.Refresh(context.Background(), res.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefreshWithoutSession(t *testing.T) {
	store := &mockSessionStore{}
	auth := newTestAuth(store)

	res, err := auth.Login(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := auth.Logout(context.Background(), res.Session.User.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, _, err := auth.Refresh(context.Background(), res.RefreshToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestLogoutNilUser(t *testing.T) {
	auth := newTestAuth(&mockSessionStore{})
	if err := auth.Logout(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
