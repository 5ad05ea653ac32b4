package repository

import (
	"context"
	"errors"

	authdomain "kitra-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// UserRepository exposes the read-only credential lookup against the users
// table.
type UserRepository interface {
	// FindByCredentials returns the user whose stored email and password
	// both exactly match, or nil when no such user exists. The comparison
	// is case-sensitive; a missing user and a wrong password are
	// indistinguishable to callers.
	FindByCredentials(ctx context.Context, email, password string) (*authdomain.User, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
