package ports

import (
	"context"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService covers account registration and the token obtain/refresh flow.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Obtain(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
	UpdateMe(ctx context.Context, actor domain.Actor, username, email string) (*domain.User, error)
}

// TokenVerifier turns a bearer access token into the actor it was issued to.
type TokenVerifier interface {
	VerifyAccess(token string) (domain.Actor, error)
}
