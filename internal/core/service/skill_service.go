package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

type SkillService struct {
	repo   ports.SkillRepository
	policy domain.ResourcePolicy
	logger zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, logger zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, policy: domain.SkillPolicy, logger: logger}
}

// List returns the skills matching filter. Open to anonymous actors.
func (s *SkillService) List(ctx context.Context, actor domain.Actor, filter ports.SkillFilter) (*ports.ListSkillsResult, error) {
	if err := s.policy.Authorize(domain.OpList, actor); err != nil {
		return nil, err
	}

	filter.Page = filter.Page.Normalize()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return &ports.ListSkillsResult{Items: items, Pagination: filter.Page.Describe(total)}, nil
}

func (s *SkillService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Skill, error) {
	if err := s.policy.Authorize(domain.OpRetrieve, actor); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a new skill. When the input carries no owner the acting
// user becomes the owner.
func (s *SkillService) Create(ctx context.Context, actor domain.Actor, in ports.SkillInput) (*domain.Skill, error) {
	if err := s.policy.Authorize(domain.OpCreate, actor); err != nil {
		return nil, err
	}

	now := domain.Now()
	skill := &domain.Skill{CreatedAt: now, UpdatedAt: now}
	applySkillInput(skill, in)
	if skill.UserID == "" {
		skill.UserID = actor.UserID
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		s.logger.Error().Err(err).Msg("failed to create skill")
		return nil, err
	}

	s.logger.Info().Str("skill_id", skill.ID).Str("user_id", skill.UserID).Msg("skill created")
	return skill, nil
}

// Update replaces every writable field of an existing skill.
func (s *SkillService) Update(ctx context.Context, actor domain.Actor, id string, in ports.SkillInput) (*domain.Skill, error) {
	if err := s.policy.Authorize(domain.OpUpdate, actor); err != nil {
		return nil, err
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applySkillInput(skill, in)
	if skill.UserID == "" {
		skill.UserID = actor.UserID
	}
	return s.save(ctx, skill)
}

// Patch changes only the fields set in in.
func (s *SkillService) Patch(ctx context.Context, actor domain.Actor, id string, in ports.SkillPatch) (*domain.Skill, error) {
	if err := s.policy.Authorize(domain.OpUpdate, actor); err != nil {
		return nil, err
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.UserID != nil {
		skill.UserID = *in.UserID
	}
	if in.Title != nil {
		skill.Title = *in.Title
	}
	if in.Description != nil {
		skill.Description = *in.Description
	}
	if in.Category != nil {
		skill.Category = *in.Category
	}
	if in.Level != nil {
		skill.Level = domain.SkillLevel(*in.Level)
	}
	if in.IsOffering != nil {
		skill.IsOffering = *in.IsOffering
	}
	return s.save(ctx, skill)
}

func (s *SkillService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.policy.Authorize(domain.OpDelete, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("skill_id", id).Str("actor", actor.UserID).Msg("skill deleted")
	return nil
}

func (s *SkillService) save(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	skill.UpdatedAt = domain.Now()
	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	s.logger.Info().Str("skill_id", skill.ID).Msg("skill updated")
	return skill, nil
}

func applySkillInput(skill *domain.Skill, in ports.SkillInput) {
	skill.UserID = in.UserID
	skill.Title = in.Title
	skill.Description = in.Description
	skill.Category = in.Category
	skill.Level = domain.SkillLevel(in.Level)
	skill.IsOffering = in.IsOffering
}
