package chat

import (
	"context"

	"github.com/google/uuid"
)

type MessageUsecase interface {
	// Persist an envelope; the returned DTO carries the assigned id and
	// timestamp for delivery
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// Both directions ordered, and marks the other user's messages to the
	// caller as read (list first, mark after — a crash in between leaves
	// messages unread, never falsely read)
	GetConversation(ctx context.Context, currentUser, otherUser uuid.UUID) ([]MessageDTO, error)
}
