package ports

import (
	"context"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// MessageInput is the full writable field set of a message.
type MessageInput struct {
	SenderID    string
	RecipientID string
	Content     string
	IsRead      bool
}

// MessagePatch is a partial update; nil fields are left untouched.
type MessagePatch struct {
	SenderID    *string
	RecipientID *string
	Content     *string
	IsRead      *bool
}

// ListMessagesResult is returned by MessageService.List.
type ListMessagesResult struct {
	Items      []*domain.Message
	Pagination Pagination
}

// MessageService is the Resource Layer for the inbox. Every method
// authorizes actor against domain.MessagePolicy before touching storage.
type MessageService interface {
	List(ctx context.Context, actor domain.Actor, filter MessageFilter) (*ListMessagesResult, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Message, error)
	Create(ctx context.Context, actor domain.Actor, in MessageInput) (*domain.Message, error)
	Update(ctx context.Context, actor domain.Actor, id string, in MessageInput) (*domain.Message, error)
	Patch(ctx context.Context, actor domain.Actor, id string, in MessagePatch) (*domain.Message, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
