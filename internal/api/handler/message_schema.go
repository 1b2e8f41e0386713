package handler

import (
	"time"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// messageRequest is the writable representation of a message (POST, PUT).
type messageRequest struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id" validate:"required,notblank"`
	Content     string `json:"content" validate:"required,notblank,max=10000"`
	IsRead      bool   `json:"is_read"`
}

type messagePatchRequest struct {
	SenderID    *string `json:"sender_id"`
	RecipientID *string `json:"recipient_id" validate:"omitempty,notblank"`
	Content     *string `json:"content" validate:"omitempty,notblank,max=10000"`
	IsRead      *bool   `json:"is_read"`
}

// messageResponse carries every field of domain.Message.
type messageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type listMessagesResponse struct {
	Data       []messageResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r messageRequest) toInput() ports.MessageInput {
	return ports.MessageInput{
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		Content:     r.Content,
		IsRead:      r.IsRead,
	}
}

func (r messagePatchRequest) toPatch() ports.MessagePatch {
	return ports.MessagePatch{
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		Content:     r.Content,
		IsRead:      r.IsRead,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func toListMessagesResponse(res *ports.ListMessagesResult) listMessagesResponse {
	data := make([]messageResponse, 0, len(res.Items))
	for _, m := range res.Items {
		data = append(data, toMessageResponse(m))
	}
	return listMessagesResponse{Data: data, Pagination: toPaginationResponse(res.Pagination)}
}
