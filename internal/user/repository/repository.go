package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/Yaaroosh/IM/internal/user/model"
	appErrors "github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		// Two registrations can race past the usecase's existence check; the
		// unique index on username is the authoritative verdict.
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return appErrors.ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	return nil
}

// SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan")
	}
	return user, nil
}

func (r *UserRepository) ListOthers(ctx context.Context, callerID uuid.UUID) ([]models.DirectoryEntry, error) {
	var entries []models.DirectoryEntry
	err := r.db.NewSelect().
		Model(&entries).
		ColumnExpr("u.id, u.username, u.name").
		ColumnExpr(`(SELECT count(*) FROM messages AS m
			WHERE m.sender_id = u.id AND m.recipient_id = ? AND m.is_read = false) AS unread_count`, callerID).
		Where("u.id != ?", callerID).
		Order("username ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListOthers.Scan")
	}
	return entries, nil
}
