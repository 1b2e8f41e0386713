package ports

import (
	"context"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// MessageFilter carries the optional list filters for messages.
type MessageFilter struct {
	SenderID    string
	RecipientID string
	IsRead      *bool
	Page        Page
}

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	List(ctx context.Context, filter MessageFilter) ([]*domain.Message, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// Create stores m and assigns its ID.
	Create(ctx context.Context, m *domain.Message) error
	Update(ctx context.Context, m *domain.Message) error
	Delete(ctx context.Context, id string) error
}
