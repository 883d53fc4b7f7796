package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Yaaroosh/IM/internal/chat"
	"github.com/Yaaroosh/IM/internal/hub"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

// transport is what a session needs from its connection: framed reads plus
// the hub's write/close surface.
type transport interface {
	hub.Conn
	ReadMessage() ([]byte, error)
}

type sessionState int

const (
	stateConnecting sessionState = iota
	stateOpen
	stateStreaming
	stateClosed
)

// stepOutcome is how one receive-dispatch iteration ended. Disconnects are a
// value, not a panic or sentinel-error control flow.
type stepOutcome int

const (
	outcomeContinue stepOutcome = iota
	outcomeClosed
)

// Session drives one connection through its lifecycle:
// Connecting -> Open (hello, flush, presence) -> Streaming -> Closed.
type Session struct {
	userID   uuid.UUID
	conn     transport
	hub      *hub.Hub
	messages chat.MessageUsecase
	logger   logger.Logger

	state sessionState
}

func NewSession(userID uuid.UUID, conn transport, h *hub.Hub, messages chat.MessageUsecase, logger logger.Logger) *Session {
	return &Session{
		userID:   userID,
		conn:     conn,
		hub:      h,
		messages: messages,
		logger:   logger,
		state:    stateConnecting,
	}
}

// Run blocks until the connection closes. Safe to call once per Session; a
// reconnect is a fresh Session.
func (s *Session) Run(ctx context.Context) {
	if s.open() == outcomeClosed {
		s.close()
		return
	}

	for s.state == stateStreaming {
		if s.step(ctx) == outcomeClosed {
			break
		}
	}
	s.close()
}

func (s *Session) open() stepOutcome {
	s.hub.Connect(s.userID, s.conn)
	s.state = stateOpen

	if err := s.conn.WriteJSON(Event{Type: EventHello, Payload: HelloPayload{UserID: s.userID}}); err != nil {
		return outcomeClosed
	}

	// Presence announces how many queued events follow it. The count and the
	// deliveries come from the same detached batch, so it is exact.
	var announceErr error
	s.hub.FlushQueue(s.userID, func(pending int) error {
		announceErr = s.conn.WriteJSON(Event{Type: EventPresence, Payload: PresencePayload{Online: true, Flushed: pending}})
		return announceErr
	})
	if announceErr != nil {
		return outcomeClosed
	}

	s.state = stateStreaming
	return outcomeContinue
}

func (s *Session) step(ctx context.Context) stepOutcome {
	data, err := s.conn.ReadMessage()
	if err != nil {
		return outcomeClosed
	}

	var ev rawEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return s.reply(errorEvent("malformed event"))
	}

	switch ev.Type {
	case EventChatSend:
		return s.handleSend(ctx, ev)
	default:
		return s.reply(errorEvent(fmt.Sprintf("unsupported event: %s", ev.Type)))
	}
}

func (s *Session) handleSend(ctx context.Context, ev rawEvent) stepOutcome {
	var payload ChatSendPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return s.reply(errorEvent("malformed chat.send payload"))
	}

	if payload.To == uuid.Nil {
		return s.reply(errorEvent("missing to"))
	}
	if len(payload.Ciphertext) == 0 || len(payload.Nonce) == 0 {
		return s.reply(errorEvent("missing ciphertext/nonce"))
	}

	dto, err := s.messages.SendMessage(ctx, chat.SendMessageCommand{
		SenderID:           s.userID,
		RecipientID:        payload.To,
		Ciphertext:         payload.Ciphertext,
		Nonce:              payload.Nonce,
		EphemeralPublicKey: payload.EphemeralPublicKey,
		UsedOPKID:          payload.UsedOPKID,
	})
	if err != nil {
		s.logger.Error("chat.send failed", "user_id", s.userID, "err", err)
		return s.reply(errorEvent(appErrors.Payload(err).Message))
	}

	s.hub.SendTo(payload.To, Event{
		Type:      EventChatDeliver,
		RequestID: ev.RequestID,
		Payload: ChatDeliverPayload{
			From:               s.userID,
			Ciphertext:         dto.Ciphertext,
			Nonce:              dto.Nonce,
			EphemeralPublicKey: dto.EphemeralPublicKey,
			UsedOPKID:          dto.UsedOPKID,
			MessageID:          dto.ID,
			Timestamp:          dto.Timestamp,
		},
	})
	return outcomeContinue
}

// reply writes an event back to this session's own client. A failed write
// ends the session; protocol errors do not.
func (s *Session) reply(ev Event) stepOutcome {
	if err := s.conn.WriteJSON(ev); err != nil {
		return outcomeClosed
	}
	return outcomeContinue
}

func (s *Session) close() {
	s.state = stateClosed
	s.hub.DisconnectConn(s.userID, s.conn)
	_ = s.conn.Close()
}
