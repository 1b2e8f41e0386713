package ports

import (
	"context"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// SkillInput is the full writable field set of a skill.
type SkillInput struct {
	UserID      string
	Title       string
	Description string
	Category    string
	Level       string
	IsOffering  bool
}

// SkillPatch is a partial update; nil fields are left untouched.
type SkillPatch struct {
	UserID      *string
	Title       *string
	Description *string
	Category    *string
	Level       *string
	IsOffering  *bool
}

// ListSkillsResult is returned by SkillService.List.
type ListSkillsResult struct {
	Items      []*domain.Skill
	Pagination Pagination
}

// SkillService is the Resource Layer for the skill catalog. Every method
// authorizes actor against domain.SkillPolicy before touching storage.
type SkillService interface {
	List(ctx context.Context, actor domain.Actor, filter SkillFilter) (*ListSkillsResult, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Skill, error)
	Create(ctx context.Context, actor domain.Actor, in SkillInput) (*domain.Skill, error)
	Update(ctx context.Context, actor domain.Actor, id string, in SkillInput) (*domain.Skill, error)
	Patch(ctx context.Context, actor domain.Actor, id string, in SkillPatch) (*domain.Skill, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
