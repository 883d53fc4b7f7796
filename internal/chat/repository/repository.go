package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Yaaroosh/IM/internal/chat/model"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) Append(ctx context.Context, msg *models.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Append.Insert")
	}
	return nil
}

func (r *MessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListConversation.Scan")
	}
	return msgs, nil
}

func (r *MessageRepository) MarkReadFrom(ctx context.Context, sender, recipient uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("is_read = ?", true).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", sender, recipient, false).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.MarkReadFrom.Update")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.MarkReadFrom.RowsAffected")
	}
	return affected, nil
}
