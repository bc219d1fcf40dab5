package auth

import "context"

// Session carries both tokens; the refresh token travels only in an
// HttpOnly cookie, never in the JSON body.
type Session struct {
	Token            TokenResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	Logout(ctx context.Context, refreshToken string) error
}
