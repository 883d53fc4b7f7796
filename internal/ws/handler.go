package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Yaaroosh/IM/internal/chat"
	"github.com/Yaaroosh/IM/internal/hub"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type Handler struct {
	hub      *hub.Hub
	messages chat.MessageUsecase
	logger   logger.Logger
	upgrader websocket.Upgrader
}

func NewHandler(h *hub.Hub, messages chat.MessageUsecase, logger logger.Logger) *Handler {
	return &Handler{
		hub:      h,
		messages: messages,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from a different origin in dev.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) MapRoutes(e *echo.Echo) {
	e.GET("/ws/:user_id", h.Serve)
}

// Serve upgrades the request and runs the session until the connection
// closes.
func (h *Handler) Serve(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid user id")))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", userID, "err", err)
		return nil
	}

	NewSession(userID, newTransport(conn), h.hub, h.messages, h.logger).Run(c.Request().Context())
	return nil
}
