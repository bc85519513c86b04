package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/auth"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single operator account.
type Credentials struct {
	Username     string
	PasswordHash []byte
}

type AuthServiceImpl struct {
	credentials Credentials
	jwtService  jwt.Service
}

// HashPassword bcrypt-hashes a plain password from configuration.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(loginReq.Username), []byte(a.credentials.Username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passwordErr := bcrypt.CompareHashAndPassword(a.credentials.PasswordHash, []byte(loginReq.Password))
	if !usernameOK || passwordErr != nil {
		slog.Warn("login failed", "username", loginReq.Username)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(a.credentials.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("login succeeded", "username", a.credentials.Username)
	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        auth.UserInfo{Username: a.credentials.Username},
	}, nil
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, username string) (auth.VerifyResponse, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.credentials.Username)) != 1 {
		return auth.VerifyResponse{}, auth.ErrInvalidToken
	}
	return auth.VerifyResponse{User: auth.UserInfo{Username: username}}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}

	parsed, err := a.jwtService.JWTAuth().Decode(token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	a.jwtService.RevokeToken(token, parsed.Expiration().Unix())
	return nil
}

func NewAuthService(credentials Credentials, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentials: credentials,
		jwtService:  jwtService,
	}
}
