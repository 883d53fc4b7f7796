package keys

import (
	"context"

	"github.com/google/uuid"

	models "github.com/Yaaroosh/IM/internal/keys/model"
)

type KeyRepository interface {
	// Replaces the user's identity key and signed prekey and adds the
	// supplied one-time prekeys, all in one transaction. replacePool clears
	// the existing pool first.
	UploadBundle(ctx context.Context, ik *models.IdentityKey, spk *models.SignedPreKey,
		otpks []models.OneTimePreKey, replacePool bool) error

	// Returns everything needed for X3DH in one atomic operation. The
	// one-time prekey, when present, is deleted in the same transaction.
	FetchBundle(ctx context.Context, userID uuid.UUID) (*models.PreKeyBundle, error)

	GetIdentityKey(ctx context.Context, userID uuid.UUID) (*models.IdentityKey, error)
	GetSignedPreKey(ctx context.Context, userID uuid.UUID) (*models.SignedPreKey, error)
	CountOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error)
}
