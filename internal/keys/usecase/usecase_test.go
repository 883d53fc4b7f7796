package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yaaroosh/IM/config"
	"github.com/Yaaroosh/IM/internal/keys"
	"github.com/Yaaroosh/IM/internal/keys/mocks"
	models "github.com/Yaaroosh/IM/internal/keys/model"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

func TestKeyUsecase_UploadBundle(t *testing.T) {
	userID := uuid.New()

	validCmd := keys.UploadBundleCommand{
		IdentityKey: []byte("IK_A"),
		SignedPreKey: keys.SignedPreKeyUpload{
			KeyID:     1,
			PublicKey: []byte("SPK_A"),
			Signature: []byte("SIG_A"),
		},
		OneTimePreKeys: []keys.OneTimePreKeyUpload{
			{KeyID: 1, PublicKey: []byte("OPK1")},
			{KeyID: 2, PublicKey: []byte("OPK2")},
		},
	}

	t.Run("happy path - append policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)

		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{
			PreKeys: config.PreKeys{UploadPolicy: config.UploadPolicyAppend},
		})

		mockRepo.EXPECT().
			UploadBundle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, ik *models.IdentityKey, spk *models.SignedPreKey,
				otpks []models.OneTimePreKey, replacePool bool) error {
				assert.Equal(t, userID, ik.UserID)
				assert.Equal(t, []byte("IK_A"), ik.PublicKey)
				assert.Equal(t, uint32(1), spk.KeyID)
				assert.Len(t, otpks, 2)
				assert.False(t, replacePool)
				return nil
			})

		err := uc.UploadBundle(context.Background(), userID, validCmd)
		require.NoError(t, err)
	})

	t.Run("replace policy clears the pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)

		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{
			PreKeys: config.PreKeys{UploadPolicy: config.UploadPolicyReplace},
		})

		mockRepo.EXPECT().
			UploadBundle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil)

		err := uc.UploadBundle(context.Background(), userID, validCmd)
		require.NoError(t, err)
	})

	t.Run("empty identity key rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		cmd := validCmd
		cmd.IdentityKey = nil

		err := uc.UploadBundle(context.Background(), userID, cmd)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("empty signed prekey rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		cmd := validCmd
		cmd.SignedPreKey = keys.SignedPreKeyUpload{KeyID: 1}

		err := uc.UploadBundle(context.Background(), userID, cmd)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("duplicate one-time prekey ids rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		cmd := validCmd
		cmd.OneTimePreKeys = []keys.OneTimePreKeyUpload{
			{KeyID: 7, PublicKey: []byte("OPK7")},
			{KeyID: 7, PublicKey: []byte("OPK7-again")},
		}

		err := uc.UploadBundle(context.Background(), userID, cmd)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrDuplicateOneTimeKey, err)
	})
}

func TestKeyUsecase_GetPreKeyBundle(t *testing.T) {
	userID := uuid.New()

	t.Run("bundle with one-time key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		keyID := uint32(1)
		mockRepo.EXPECT().FetchBundle(gomock.Any(), userID).Return(&models.PreKeyBundle{
			UserID:          userID,
			IdentityKey:     []byte("IK_A"),
			SignedPreKeyID:  1,
			SignedPreKey:    []byte("SPK_A"),
			SignedPreKeySig: []byte("SIG_A"),
			OneTimePreKeyID: &keyID,
			OneTimePreKey:   []byte("OPK1"),
		}, nil)

		dto, err := uc.GetPreKeyBundle(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, []byte("IK_A"), dto.IdentityKey)
		require.NotNil(t, dto.OneTimePreKeyID)
		assert.Equal(t, uint32(1), *dto.OneTimePreKeyID)
	})

	t.Run("bundle without one-time key when pool empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		mockRepo.EXPECT().FetchBundle(gomock.Any(), userID).Return(&models.PreKeyBundle{
			UserID:          userID,
			IdentityKey:     []byte("IK_A"),
			SignedPreKeyID:  1,
			SignedPreKey:    []byte("SPK_A"),
			SignedPreKeySig: []byte("SIG_A"),
		}, nil)

		dto, err := uc.GetPreKeyBundle(context.Background(), userID)
		require.NoError(t, err)
		assert.Nil(t, dto.OneTimePreKeyID)
		assert.Nil(t, dto.OneTimePreKey)
	})

	t.Run("unregistered user is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		mockRepo.EXPECT().FetchBundle(gomock.Any(), userID).Return(nil, appErrors.ErrBundleNotFound)

		_, err := uc.GetPreKeyBundle(context.Background(), userID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})
}

func TestKeyUsecase_GetRemainingOneTimePreKeysCount(t *testing.T) {
	userID := uuid.New()

	t.Run("remaining pool size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		mockRepo.EXPECT().CountOneTimePreKeys(gomock.Any(), userID).Return(5, nil)

		count, err := uc.GetRemainingOneTimePreKeysCount(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyUsecase(mockRepo, logger.Logger{}, config.Config{})

		mockRepo.EXPECT().CountOneTimePreKeys(gomock.Any(), userID).
			Return(0, appErrors.ErrStorageFailed(assert.AnError))

		_, err := uc.GetRemainingOneTimePreKeysCount(context.Background(), userID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}
