package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yaaroosh/IM/internal/chat"
	"github.com/Yaaroosh/IM/internal/chat/mocks"
	models "github.com/Yaaroosh/IM/internal/chat/model"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

func TestMessageUsecase_SendMessage(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) error {
				msg.ID = 42
				msg.Timestamp = time.Now()
				assert.False(t, msg.IsRead)
				return nil
			})

		dto, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			SenderID:    sender,
			RecipientID: recipient,
			Ciphertext:  []byte("c1"),
			Nonce:       []byte("n1"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), dto.ID)
		assert.False(t, dto.Timestamp.IsZero())
	})

	t.Run("missing recipient rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		_, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			SenderID:   sender,
			Ciphertext: []byte("c1"),
			Nonce:      []byte("n1"),
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrMissingRecipient, err)
	})

	t.Run("missing ciphertext or nonce rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		_, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			SenderID:    sender,
			RecipientID: recipient,
			Ciphertext:  []byte("c1"),
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrMissingCiphertext, err)
	})
}

func TestMessageUsecase_GetConversation(t *testing.T) {
	current := uuid.New()
	other := uuid.New()

	t.Run("lists then marks incoming read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		listed := false
		mockRepo.EXPECT().ListConversation(gomock.Any(), current, other).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID) ([]models.Message, error) {
				listed = true
				return []models.Message{
					{ID: 1, SenderID: other, RecipientID: current, Ciphertext: []byte("c1"), Nonce: []byte("n1")},
					{ID: 2, SenderID: current, RecipientID: other, Ciphertext: []byte("c2"), Nonce: []byte("n2")},
				}, nil
			})
		// Directional: only other -> current is marked.
		mockRepo.EXPECT().MarkReadFrom(gomock.Any(), other, current).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (int64, error) {
				assert.True(t, listed, "mark-read must follow the list")
				return 1, nil
			})

		dtos, err := uc.GetConversation(context.Background(), current, other)
		require.NoError(t, err)
		require.Len(t, dtos, 2)
		assert.Equal(t, int64(1), dtos[0].ID)
	})

	t.Run("list failure skips mark-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().ListConversation(gomock.Any(), current, other).
			Return(nil, assert.AnError)

		_, err := uc.GetConversation(context.Background(), current, other)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}
