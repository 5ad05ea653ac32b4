package usecase

import (
	"context"

	authdomain "kitra-backend/internal/auth/domain"
	authdto "kitra-backend/internal/auth/dto"
)

// AuthUsecase issues access tokens for valid credentials and verifies
// presented tokens.
type AuthUsecase interface {
	// Login exchanges an email/password pair for a signed access token.
	// Returns ErrInvalidCredentials when no matching user exists.
	Login(ctx context.Context, req *authdto.LoginRequest) (string, error)
	// ValidateToken checks signature and expiry and returns the identity
	// embedded in the token. Malformed, forged and expired tokens all
	// yield ErrInvalidToken.
	ValidateToken(tokenString string) (*authdomain.Identity, error)
}
