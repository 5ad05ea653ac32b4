package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "kitra-backend/internal/auth/domain"
	authdto "kitra-backend/internal/auth/dto"
	"kitra-backend/internal/auth/repository"
	"kitra-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed, forged and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	if user == nil {
		return "", ErrInvalidCredentials
	}

	return u.generateAccessToken(user)
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"token_id": uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(u.config.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ValidateToken is deliberately stateless: the token is the whole
// credential, so a valid signature plus an unexpired window is sufficient
// and no user lookup happens here.
func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &authdomain.Identity{UserID: uint(userID), Email: email}, nil
}
