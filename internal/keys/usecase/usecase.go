package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yaaroosh/IM/config"
	"github.com/Yaaroosh/IM/internal/keys"
	models "github.com/Yaaroosh/IM/internal/keys/model"
	"github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type KeyUsecase struct {
	repo   keys.KeyRepository
	logger logger.Logger
	config config.Config
}

func NewKeyUsecase(repo keys.KeyRepository, logger logger.Logger, config config.Config) *KeyUsecase {
	return &KeyUsecase{repo: repo, logger: logger, config: config}
}

func (uc *KeyUsecase) UploadBundle(ctx context.Context, userID uuid.UUID, cmd keys.UploadBundleCommand) error {
	if len(cmd.IdentityKey) == 0 {
		return errors.ErrIdentityKeyEmpty
	}
	if len(cmd.SignedPreKey.PublicKey) == 0 {
		return errors.ErrSignedPreKeyEmpty
	}

	otpks := make([]models.OneTimePreKey, 0, len(cmd.OneTimePreKeys))
	seenKeyIDs := make(map[uint32]bool)
	for _, k := range cmd.OneTimePreKeys {
		if seenKeyIDs[k.KeyID] {
			return errors.ErrDuplicateOneTimeKey
		}
		seenKeyIDs[k.KeyID] = true

		if len(k.PublicKey) == 0 {
			return errors.ErrInvalidOneTimePreKey
		}
		otpks = append(otpks, models.OneTimePreKey{
			UserID:    userID,
			KeyID:     k.KeyID,
			PublicKey: k.PublicKey,
		})
	}

	ik := &models.IdentityKey{
		UserID:    userID,
		PublicKey: cmd.IdentityKey,
	}
	spk := &models.SignedPreKey{
		UserID:    userID,
		KeyID:     cmd.SignedPreKey.KeyID,
		PublicKey: cmd.SignedPreKey.PublicKey,
		Signature: cmd.SignedPreKey.Signature,
	}

	replacePool := uc.config.PreKeys.UploadPolicy == config.UploadPolicyReplace
	if err := uc.repo.UploadBundle(ctx, ik, spk, otpks, replacePool); err != nil {
		uc.logger.Error("failed to store key bundle", "user_id", userID, "err", err)
		return err
	}
	return nil
}

func (uc *KeyUsecase) GetPreKeyBundle(ctx context.Context, targetUserID uuid.UUID) (*keys.PreKeyBundleDTO, error) {
	bundle, err := uc.repo.FetchBundle(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	return &keys.PreKeyBundleDTO{
		UserID:                bundle.UserID,
		IdentityKey:           bundle.IdentityKey,
		SignedPreKeyID:        bundle.SignedPreKeyID,
		SignedPreKey:          bundle.SignedPreKey,
		SignedPreKeySignature: bundle.SignedPreKeySig,
		OneTimePreKeyID:       bundle.OneTimePreKeyID,
		OneTimePreKey:         bundle.OneTimePreKey,
	}, nil
}

func (uc *KeyUsecase) GetRemainingOneTimePreKeysCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := uc.repo.CountOneTimePreKeys(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count one-time prekeys", "user_id", userID, "err", err)
		return 0, err
	}
	return count, nil
}
