package chat

import (
	"context"

	"github.com/google/uuid"

	models "github.com/Yaaroosh/IM/internal/chat/model"
)

type MessageRepository interface {
	// Persists a new envelope unread; fills in the assigned id and timestamp.
	Append(ctx context.Context, msg *models.Message) error

	// Every envelope between the two users in either direction, ordered by
	// timestamp then insertion id.
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]models.Message, error)

	// Bulk-marks unread envelopes from sender to recipient as read, in one
	// statement. Directional: the reverse direction is untouched.
	MarkReadFrom(ctx context.Context, sender, recipient uuid.UUID) (int64, error)
}
