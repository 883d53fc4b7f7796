package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Yaaroosh/IM/internal/keys"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type KeyHandlers struct {
	usecase keys.KeyUsecase
	logger  logger.Logger
}

func NewKeyHandlers(usecase keys.KeyUsecase, logger logger.Logger) *KeyHandlers {
	return &KeyHandlers{usecase: usecase, logger: logger}
}

func (h *KeyHandlers) MapRoutes(g *echo.Group) {
	g.POST("/upload/:user_id", h.Upload)
	g.GET("/:user_id", h.Fetch)
	g.GET("/:user_id/count", h.Count)
}

type signedPreKeyJSON struct {
	KeyID     uint32 `json:"key_id"`
	PublicKey []byte `json:"public_key"`
	Signature []byte `json:"signature"`
}

type oneTimeKeyJSON struct {
	KeyID     uint32 `json:"key_id"`
	PublicKey []byte `json:"public_key"`
}

type uploadRequest struct {
	IdentityKey    []byte           `json:"identity_key"`
	SignedPreKey   signedPreKeyJSON `json:"signed_prekey"`
	OneTimePreKeys []oneTimeKeyJSON `json:"onetime_prekeys"`
}

type bundleResponse struct {
	IdentityKey   []byte           `json:"identity_key"`
	SignedPreKey  signedPreKeyJSON `json:"signed_prekey"`
	OneTimePreKey *oneTimeKeyJSON  `json:"onetime_prekey,omitempty"`
}

func (h *KeyHandlers) Upload(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid user id")))
	}

	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("malformed body")))
	}

	cmd := keys.UploadBundleCommand{
		IdentityKey: req.IdentityKey,
		SignedPreKey: keys.SignedPreKeyUpload{
			KeyID:     req.SignedPreKey.KeyID,
			PublicKey: req.SignedPreKey.PublicKey,
			Signature: req.SignedPreKey.Signature,
		},
	}
	for _, k := range req.OneTimePreKeys {
		cmd.OneTimePreKeys = append(cmd.OneTimePreKeys, keys.OneTimePreKeyUpload{
			KeyID:     k.KeyID,
			PublicKey: k.PublicKey,
		})
	}

	if err := h.usecase.UploadBundle(c.Request().Context(), userID, cmd); err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *KeyHandlers) Fetch(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid user id")))
	}

	bundle, err := h.usecase.GetPreKeyBundle(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}

	resp := bundleResponse{
		IdentityKey: bundle.IdentityKey,
		SignedPreKey: signedPreKeyJSON{
			KeyID:     bundle.SignedPreKeyID,
			PublicKey: bundle.SignedPreKey,
			Signature: bundle.SignedPreKeySignature,
		},
	}
	if bundle.OneTimePreKeyID != nil {
		resp.OneTimePreKey = &oneTimeKeyJSON{
			KeyID:     *bundle.OneTimePreKeyID,
			PublicKey: bundle.OneTimePreKey,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Count is the replenishment signal: clients poll it to know when their
// one-time prekey pool is running low and a top-up upload is due.
func (h *KeyHandlers) Count(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, appErrors.Payload(appErrors.InvalidArg("invalid user id")))
	}

	count, err := h.usecase.GetRemainingOneTimePreKeysCount(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(appErrors.HTTPStatus(err), appErrors.Payload(err))
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}
