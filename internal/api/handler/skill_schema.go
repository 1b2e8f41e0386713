package handler

import (
	"time"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// skillRequest is the writable representation of a skill (POST, PUT).
// id, created_at and updated_at are read-only and ignored on input.
type skillRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"required,notblank,max=100"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate expert"`
	IsOffering  bool   `json:"is_offering"`
}

// skillPatchRequest is the partial form used by PATCH.
type skillPatchRequest struct {
	UserID      *string `json:"user_id"`
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Category    *string `json:"category" validate:"omitempty,notblank,max=100"`
	Level       *string `json:"level" validate:"omitempty,oneof=beginner intermediate expert"`
	IsOffering  *bool   `json:"is_offering"`
}

// skillResponse carries every field of domain.Skill.
type skillResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	IsOffering  bool      `json:"is_offering"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listSkillsResponse struct {
	Data       []skillResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r skillRequest) toInput() ports.SkillInput {
	return ports.SkillInput{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Level:       r.Level,
		IsOffering:  r.IsOffering,
	}
}

func (r skillPatchRequest) toPatch() ports.SkillPatch {
	return ports.SkillPatch{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Level:       r.Level,
		IsOffering:  r.IsOffering,
	}
}

func toSkillResponse(s *domain.Skill) skillResponse {
	return skillResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Level:       string(s.Level),
		IsOffering:  s.IsOffering,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toListSkillsResponse(res *ports.ListSkillsResult) listSkillsResponse {
	data := make([]skillResponse, 0, len(res.Items))
	for _, s := range res.Items {
		data = append(data, toSkillResponse(s))
	}
	return listSkillsResponse{Data: data, Pagination: toPaginationResponse(res.Pagination)}
}
