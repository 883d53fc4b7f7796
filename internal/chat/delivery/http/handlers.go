package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Yaaroosh/IM/internal/chat"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type MessageHandlers struct {
	usecase chat.MessageUsecase
	logger  logger.Logger
}

func NewMessageHandlers(usecase chat.MessageUsecase, logger logger.Logger) *MessageHandlers {
	return &MessageHandlers{usecase: usecase, logger: logger}
}

func (h *MessageHandlers) MapRoutes(e *echo.Echo) {
	e.GET("/messages/:other_user_id", h.GetConversation)
}

type messageJSON struct {
	ID                 int64     `json:"id"`
	SenderID           uuid.UUID `json:"sender_id"`
	RecipientID        uuid.UUID `json:"recipient_id"`
	Ciphertext         []byte    `json:"ciphertext"`
	Nonce              []byte    `json:"nonce"`
	EphemeralPublicKey []byte    `json:"ephemeral_public_key,omitempty"`
	UsedOPKID          *uint32   `json:"used_opk_id,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
	IsRead             bool      `json:"is_read"`
}

// GetConversation returns the full conversation with the other user and, as
// a side effect, marks their messages to the caller as read.
func (h *MessageHandlers) GetConversation(c echo.Context) error {
	otherID, err := uuid.Parse(c.Param("other_user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid user id")))
	}
	currentID, err := uuid.Parse(c.QueryParam("current_user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid current_user_id")))
	}

	msgs, err := h.usecase.GetConversation(c.Request().Context(), currentID, otherID)
	if err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}

	out := make([]messageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageJSON{
			ID:                 m.ID,
			SenderID:           m.SenderID,
			RecipientID:        m.RecipientID,
			Ciphertext:         m.Ciphertext,
			Nonce:              m.Nonce,
			EphemeralPublicKey: m.EphemeralPublicKey,
			UsedOPKID:          m.UsedOPKID,
			Timestamp:          m.Timestamp,
			IsRead:             m.IsRead,
		})
	}
	return c.JSON(http.StatusOK, out)
}
