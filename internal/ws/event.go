package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventHello       EventType = "hello"
	EventPresence    EventType = "presence"
	EventChatSend    EventType = "chat.send"
	EventChatDeliver EventType = "chat.deliver"
	EventError       EventType = "error"
)

// Event is the envelope exchanged over the real-time channel.
type Event struct {
	Type      EventType `json:"type"`
	RequestID string    `json:"request_id,omitempty"`
	Payload   any       `json:"payload"`
}

// rawEvent is the inbound shape: the payload stays raw until the type is
// known.
type rawEvent struct {
	Type      EventType       `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type HelloPayload struct {
	UserID uuid.UUID `json:"user_id"`
}

type PresencePayload struct {
	Online  bool `json:"online"`
	Flushed int  `json:"flushed"`
}

type ChatSendPayload struct {
	To         uuid.UUID `json:"to"`
	Ciphertext []byte    `json:"ciphertext"`
	Nonce      []byte    `json:"nonce"`

	// First envelope of a new session only
	EphemeralPublicKey []byte  `json:"ephemeral_public_key,omitempty"`
	UsedOPKID          *uint32 `json:"used_opk_id,omitempty"`
}

type ChatDeliverPayload struct {
	From       uuid.UUID `json:"from"`
	Ciphertext []byte    `json:"ciphertext"`
	Nonce      []byte    `json:"nonce"`

	EphemeralPublicKey []byte  `json:"ephemeral_public_key,omitempty"`
	UsedOPKID          *uint32 `json:"used_opk_id,omitempty"`

	MessageID int64     `json:"message_id"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func errorEvent(msg string) Event {
	return Event{Type: EventError, Payload: ErrorPayload{Message: msg}}
}
