package chat

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageCommand struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID

	Ciphertext []byte
	Nonce      []byte

	// Present only on the first envelope of a new session
	EphemeralPublicKey []byte
	UsedOPKID          *uint32
}

type MessageDTO struct {
	ID          int64
	SenderID    uuid.UUID
	RecipientID uuid.UUID

	Ciphertext []byte
	Nonce      []byte

	EphemeralPublicKey []byte
	UsedOPKID          *uint32

	Timestamp time.Time
	IsRead    bool
}
