package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Yaaroosh/IM/internal/user"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type UserHandlers struct {
	usecase user.UserUsecase
	logger  logger.Logger
}

func NewUserHandlers(usecase user.UserUsecase, logger logger.Logger) *UserHandlers {
	return &UserHandlers{usecase: usecase, logger: logger}
}

func (h *UserHandlers) MapRoutes(e *echo.Echo) {
	e.POST("/users", h.Register)
	e.GET("/users", h.List)
}

type registerRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type userJSON struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	UnreadCount int64     `json:"unread_count"`
}

func (h *UserHandlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("malformed body")))
	}

	dto, err := h.usecase.Register(c.Request().Context(), user.RegisterCommand{
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}
	return c.JSON(http.StatusCreated, userJSON{
		ID:          dto.ID,
		Username:    dto.Username,
		DisplayName: dto.DisplayName,
	})
}

// List returns all users other than the caller, each with the caller's
// unread count from them.
func (h *UserHandlers) List(c echo.Context) error {
	callerID, err := uuid.Parse(c.QueryParam("current_user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid current_user_id")))
	}

	entries, err := h.usecase.ListOthers(c.Request().Context(), callerID)
	if err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}

	out := make([]userJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, userJSON{
			ID:          e.ID,
			Username:    e.Username,
			DisplayName: e.DisplayName,
			UnreadCount: e.UnreadCount,
		})
	}
	return c.JSON(http.StatusOK, out)
}
