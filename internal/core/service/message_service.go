package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

type MessageService struct {
	repo   ports.MessageRepository
	policy domain.ResourcePolicy
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, policy: domain.MessagePolicy, logger: logger}
}

func (s *MessageService) List(ctx context.Context, actor domain.Actor, filter ports.MessageFilter) (*ports.ListMessagesResult, error) {
	if err := s.policy.Authorize(domain.OpList, actor); err != nil {
		return nil, err
	}

	filter.Page = filter.Page.Normalize()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return &ports.ListMessagesResult{Items: items, Pagination: filter.Page.Describe(total)}, nil
}

func (s *MessageService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Message, error) {
	if err := s.policy.Authorize(domain.OpRetrieve, actor); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a new message; an empty sender defaults to the acting user.
func (s *MessageService) Create(ctx context.Context, actor domain.Actor, in ports.MessageInput) (*domain.Message, error) {
	if err := s.policy.Authorize(domain.OpCreate, actor); err != nil {
		return nil, err
	}

	msg := &domain.Message{CreatedAt: domain.Now()}
	applyMessageInput(msg, in)
	if msg.SenderID == "" {
		msg.SenderID = actor.UserID
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to create message")
		return nil, err
	}

	s.logger.Info().
		Str("message_id", msg.ID).
		Str("sender_id", msg.SenderID).
		Str("recipient_id", msg.RecipientID).
		Msg("message created")
	return msg, nil
}

func (s *MessageService) Update(ctx context.Context, actor domain.Actor, id string, in ports.MessageInput) (*domain.Message, error) {
	if err := s.policy.Authorize(domain.OpUpdate, actor); err != nil {
		return nil, err
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyMessageInput(msg, in)
	if msg.SenderID == "" {
		msg.SenderID = actor.UserID
	}
	return s.save(ctx, msg)
}

func (s *MessageService) Patch(ctx context.Context, actor domain.Actor, id string, in ports.MessagePatch) (*domain.Message, error) {
	if err := s.policy.Authorize(domain.OpUpdate, actor); err != nil {
		return nil, err
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.SenderID != nil {
		msg.SenderID = *in.SenderID
	}
	if in.RecipientID != nil {
		msg.RecipientID = *in.RecipientID
	}
	if in.Content != nil {
		msg.Content = *in.Content
	}
	if in.IsRead != nil {
		msg.IsRead = *in.IsRead
	}
	return s.save(ctx, msg)
}

func (s *MessageService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.policy.Authorize(domain.OpDelete, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("message_id", id).Str("actor", actor.UserID).Msg("message deleted")
	return nil
}

func (s *MessageService) save(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("message_id", msg.ID).Bool("is_read", msg.IsRead).Msg("message updated")
	return msg, nil
}

func applyMessageInput(msg *domain.Message, in ports.MessageInput) {
	msg.SenderID = in.SenderID
	msg.RecipientID = in.RecipientID
	msg.Content = in.Content
	msg.IsRead = in.IsRead
}
