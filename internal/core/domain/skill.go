package domain

import "time"

// SkillLevel is the self-assessed proficiency attached to a skill listing.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelExpert       SkillLevel = "expert"
)

// Skill is a catalog entry: something a user offers to teach or wants to learn.
type Skill struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Level       SkillLevel `json:"level"`
	IsOffering  bool       `json:"is_offering"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
