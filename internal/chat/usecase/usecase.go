package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yaaroosh/IM/internal/chat"
	models "github.com/Yaaroosh/IM/internal/chat/model"
	"github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type MessageUsecase struct {
	repo   chat.MessageRepository
	logger logger.Logger
}

func NewMessageUsecase(repo chat.MessageRepository, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, logger: logger}
}

func (uc *MessageUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if cmd.RecipientID == uuid.Nil {
		return nil, errors.ErrMissingRecipient
	}
	if len(cmd.Ciphertext) == 0 || len(cmd.Nonce) == 0 {
		return nil, errors.ErrMissingCiphertext
	}

	msg := &models.Message{
		SenderID:           cmd.SenderID,
		RecipientID:        cmd.RecipientID,
		Ciphertext:         cmd.Ciphertext,
		Nonce:              cmd.Nonce,
		EphemeralPublicKey: cmd.EphemeralPublicKey,
		UsedOPKID:          cmd.UsedOPKID,
	}
	if err := uc.repo.Append(ctx, msg); err != nil {
		uc.logger.Error("failed to persist envelope", "sender", cmd.SenderID, "err", err)
		return nil, errors.ErrStorageFailed(err)
	}

	dto := toDTO(*msg)
	return &dto, nil
}

func (uc *MessageUsecase) GetConversation(ctx context.Context, currentUser, otherUser uuid.UUID) ([]chat.MessageDTO, error) {
	msgs, err := uc.repo.ListConversation(ctx, currentUser, otherUser)
	if err != nil {
		uc.logger.Error("failed to list conversation", "user", currentUser, "err", err)
		return nil, errors.ErrStorageFailed(err)
	}

	// Mark after the list so a failure here leaves messages merely unread.
	if _, err := uc.repo.MarkReadFrom(ctx, otherUser, currentUser); err != nil {
		uc.logger.Error("failed to mark conversation read", "user", currentUser, "err", err)
		return nil, errors.ErrStorageFailed(err)
	}

	dtos := make([]chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dtos = append(dtos, toDTO(m))
	}
	return dtos, nil
}

func toDTO(m models.Message) chat.MessageDTO {
	return chat.MessageDTO{
		ID:                 m.ID,
		SenderID:           m.SenderID,
		RecipientID:        m.RecipientID,
		Ciphertext:         m.Ciphertext,
		Nonce:              m.Nonce,
		EphemeralPublicKey: m.EphemeralPublicKey,
		UsedOPKID:          m.UsedOPKID,
		Timestamp:          m.Timestamp,
		IsRead:             m.IsRead,
	}
}
