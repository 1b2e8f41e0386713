package ports

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile replaces username and email. It returns ErrUserExists when
	// either collides with another account.
	UpdateProfile(ctx context.Context, id, username, email string) (*domain.User, error)
}

// RevocationStore remembers refresh tokens that were explicitly revoked.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
