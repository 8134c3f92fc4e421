package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"therapist-match/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrEmailRequired       = errors.New("email is required")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type LoginResult struct {
	Session      Session
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Login(ctx context.Context, email string) (LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

// Auth implements the passwordless demo login: any email signs in. The user
// id is derived deterministically from the email so a returning user keeps
// their stored profile.
type Auth struct {
	sessions   SessionStore
	jwt        jwt.Service
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthUsecase(sessions SessionStore, jwtSvc jwt.Service, sessionTTL time.Duration) *Auth {
	return &Auth{sessions: sessions, jwt: jwtSvc, sessionTTL: sessionTTL, now: time.Now}
}

func (u *Auth) Login(ctx context.Context, email string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return LoginResult{}, ErrEmailRequired
	}

	userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email))

	access, err := u.jwt.GenerateAccessToken(userID, email)
	if err != nil {
		return LoginResult{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	sess := Session{
		User:        SessionUser{ID: userID, Email: email},
		AccessToken: access,
		ExpiresAt:   u.now().UTC().Add(u.sessionTTL),
	}
	if err := u.sessions.Save(ctx, sess); err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Session: sess, AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", "", ErrInvalidRefreshToken
	}

	sess, ok, err := u.sessions.Find(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}
	if !ok {
		return "", "", ErrUnauthorized
	}

	access, err := u.jwt.GenerateAccessToken(claims.UserID, sess.User.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	sess.AccessToken = access
	sess.ExpiresAt = u.now().UTC().Add(u.sessionTTL)
	if err := u.sessions.Save(ctx, sess); err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

func (u *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	return u.sessions.Delete(ctx, userID)
}
