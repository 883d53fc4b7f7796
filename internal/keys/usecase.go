package keys

import (
	"context"

	"github.com/google/uuid"
)

type KeyUsecase interface {
	// Upload/replace identity key + signed prekey, add one-time prekeys
	UploadBundle(ctx context.Context, userID uuid.UUID, cmd UploadBundleCommand) error

	// Returns everything needed for the sender to perform X3DH; consumes one
	// one-time prekey when the pool has any
	GetPreKeyBundle(ctx context.Context, targetUserID uuid.UUID) (*PreKeyBundleDTO, error)

	GetRemainingOneTimePreKeysCount(ctx context.Context, userID uuid.UUID) (int, error)
}
