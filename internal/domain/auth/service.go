package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Verify confirms the username carried by a valid token is still the configured one.
	Verify(ctx context.Context, username string) (VerifyResponse, error)
	Logout(ctx context.Context, token string) error
}
