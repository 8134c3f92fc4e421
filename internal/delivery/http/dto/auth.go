package dto

import (
	"therapist-match/internal/usecase"
)

type LoginRequest struct {
	Email string `json:"email"`
}

type SessionUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	User         SessionUserResponse `json:"user"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	ExpiresAt    int64               `json:"expires_at"`
}

func NewLoginResponse(res usecase.LoginResult) LoginResponse {
	return LoginResponse{
		User: SessionUserResponse{
			ID:    res.Session.User.ID.String(),
			Email: res.Session.User.Email,
		},
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.Session.ExpiresAt.UnixMilli(),
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
