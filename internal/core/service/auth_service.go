package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// AuthService implements registration and the token obtain/refresh flow.
type AuthService struct {
	repo    ports.AuthRepository
	revoked ports.RevocationStore
	tokens  *TokenIssuer
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, revoked ports.RevocationStore, tokens *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, revoked: revoked, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := domain.Now()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Obtain exchanges username and password for an access/refresh pair. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Obtain(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.issue(user.ID, user.Username, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.issue(user.ID, user.Username, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh issues a new access token for a valid, unrevoked refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.parse(refreshToken, tokenTypeRefresh)
	if err != nil {
		return "", err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	if revoked {
		return "", domain.ErrInvalidToken
	}

	return s.tokens.issue(claims.Subject, claims.Username, tokenTypeAccess)
}

// Revoke blacklists a refresh token until it would have expired anyway.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.parse(refreshToken, tokenTypeRefresh)
	if err != nil {
		return err
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke: %w", err)
	}

	s.logger.Info().Str("user_id", claims.Subject).Str("jti", claims.ID).Msg("refresh token revoked")
	return nil
}

func (s *AuthService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, actor.UserID)
}

func (s *AuthService) UpdateMe(ctx context.Context, actor domain.Actor, username, email string) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if username == "" {
		return nil, domain.NewValidationError("username", "username is required")
	}
	return s.repo.UpdateProfile(ctx, actor.UserID, username, email)
}
