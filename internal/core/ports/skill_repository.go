package ports

import (
	"context"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// SkillFilter carries the optional list filters for skills.
type SkillFilter struct {
	UserID     string
	Category   string
	Level      string
	IsOffering *bool
	Search     string // case-insensitive partial match on title or description
	Page       Page
}

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	List(ctx context.Context, filter SkillFilter) ([]*domain.Skill, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	// Create stores s and assigns its ID.
	Create(ctx context.Context, s *domain.Skill) error
	// Update replaces every writable field of the stored skill with s.
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}
