package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yaaroosh/IM/internal/user"
	"github.com/Yaaroosh/IM/internal/user/mocks"
	models "github.com/Yaaroosh/IM/internal/user/model"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

func TestUserUsecase_Register(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "alice").
			Return(nil, appErrors.ErrUserNotFound)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				u.ID = uuid.New()
				return nil
			})

		dto, err := uc.Register(context.Background(), user.RegisterCommand{
			Username:    "alice",
			DisplayName: "Alice",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", dto.Username)
		assert.Equal(t, "Alice", dto.DisplayName)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "alice").
			Return(&models.User{ID: uuid.New(), Username: "alice"}, nil)

		_, err := uc.Register(context.Background(), user.RegisterCommand{Username: "alice"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrUsernameTaken, err)
	})

	t.Run("username taken under the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		// The existence check saw nothing, but a concurrent registration won
		// the insert; the constraint violation surfaces as the domain error.
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "alice").
			Return(nil, appErrors.ErrUserNotFound)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(appErrors.ErrUsernameTaken)

		_, err := uc.Register(context.Background(), user.RegisterCommand{Username: "alice"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrUsernameTaken, err)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		_, err := uc.Register(context.Background(), user.RegisterCommand{})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInvalidUsername, err)
	})
}

func TestUserUsecase_ListOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)
	uc := NewUserUsecase(mockRepo, logger.Logger{})

	caller := uuid.New()
	bobID := uuid.New()

	mockRepo.EXPECT().ListOthers(gomock.Any(), caller).Return([]models.DirectoryEntry{
		{ID: bobID, Username: "bob", Name: "Bob", UnreadCount: 2},
	}, nil)

	entries, err := uc.ListOthers(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, int64(2), entries[0].UnreadCount)
}
