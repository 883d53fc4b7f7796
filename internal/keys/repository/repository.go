package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Yaaroosh/IM/internal/keys/model"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type KeyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewKeyRepository(db *bun.DB, logger logger.Logger) *KeyRepository {
	return &KeyRepository{
		db:     db,
		logger: &logger,
	}
}

// runInTxRetry runs fn in a transaction and retries once on a store-level
// failure (serialization conflict, constraint violation). Domain errors from
// our own taxonomy are returned as-is; a second store failure surfaces as a
// storage error.
func (r *KeyRepository) runInTxRetry(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = r.db.RunInTx(ctx, nil, fn)
		if err == nil {
			return nil
		}
		if appErrors.CodeOf(err) != appErrors.CodeUnknown {
			return err
		}
		r.logger.Warn("key transaction failed", "attempt", attempt, "err", err)
	}
	return appErrors.ErrStorageFailed(err)
}

func (r *KeyRepository) UploadBundle(
	ctx context.Context,
	ik *models.IdentityKey,
	spk *models.SignedPreKey,
	otpks []models.OneTimePreKey,
	replacePool bool,
) error {
	return r.runInTxRetry(ctx, func(ctx context.Context, tx bun.Tx) error {

		_, err := tx.NewDelete().Model((*models.IdentityKey)(nil)).
			Where("user_id = ?", ik.UserID).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UploadBundle.DeleteIdentityKey")
		}
		_, err = tx.NewInsert().Model(ik).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UploadBundle.InsertIdentityKey")
		}

		_, err = tx.NewDelete().Model((*models.SignedPreKey)(nil)).
			Where("user_id = ?", spk.UserID).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UploadBundle.DeleteSignedPreKey")
		}
		_, err = tx.NewInsert().Model(spk).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UploadBundle.InsertSignedPreKey")
		}

		if replacePool {
			_, err = tx.NewDelete().Model((*models.OneTimePreKey)(nil)).
				Where("user_id = ?", ik.UserID).Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "keyRepo.UploadBundle.ClearPool")
			}
		}

		if len(otpks) > 0 {
			_, err = tx.NewInsert().Model(&otpks).Returning("*").Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "keyRepo.UploadBundle.InsertOTPKs")
			}
		}
		return nil
	})
}

func (r *KeyRepository) FetchBundle(ctx context.Context, userID uuid.UUID) (*models.PreKeyBundle, error) {
	var bundle models.PreKeyBundle

	err := r.runInTxRetry(ctx, func(ctx context.Context, tx bun.Tx) error {
		var ik models.IdentityKey
		var spk models.SignedPreKey

		err := tx.NewSelect().Model(&ik).Where("user_id = ?", userID).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.ErrBundleNotFound
			}
			return errors.Wrap(err, "keyRepo.FetchBundle.IdentityKey")
		}

		err = tx.NewSelect().Model(&spk).Where("user_id = ?", userID).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.ErrBundleNotFound
			}
			return errors.Wrap(err, "keyRepo.FetchBundle.SignedPreKey")
		}

		bundle = models.PreKeyBundle{
			UserID:          userID,
			IdentityKey:     ik.PublicKey,
			SignedPreKeyID:  spk.KeyID,
			SignedPreKey:    spk.PublicKey,
			SignedPreKeySig: spk.Signature,
		}

		// Claim one arbitrary one-time prekey. The row lock keeps two
		// concurrent fetches off the same key; the delete makes the claim
		// final in this transaction.
		var otpk models.OneTimePreKey
		err = tx.NewSelect().
			Model(&otpk).
			Where("user_id = ?", userID).
			Limit(1).
			For("UPDATE SKIP LOCKED").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Empty pool: a valid bundle without a one-time key.
				return nil
			}
			return errors.Wrap(err, "keyRepo.FetchBundle.SelectOTPK")
		}

		_, err = tx.NewDelete().Model(&otpk).WherePK().Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.FetchBundle.DeleteOTPK")
		}

		keyID := otpk.KeyID
		bundle.OneTimePreKeyID = &keyID
		bundle.OneTimePreKey = otpk.PublicKey
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *KeyRepository) GetIdentityKey(ctx context.Context, userID uuid.UUID) (*models.IdentityKey, error) {
	ik := new(models.IdentityKey)
	err := r.db.NewSelect().Model(ik).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrBundleNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetIdentityKey.Scan")
	}
	return ik, nil
}

func (r *KeyRepository) GetSignedPreKey(ctx context.Context, userID uuid.UUID) (*models.SignedPreKey, error) {
	spk := new(models.SignedPreKey)
	err := r.db.NewSelect().Model(spk).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrBundleNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetSignedPreKey.Scan")
	}
	return spk, nil
}

func (r *KeyRepository) CountOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().Model((*models.OneTimePreKey)(nil)).
		Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "keyRepo.CountOneTimePreKeys.Count")
	}
	return count, nil
}
