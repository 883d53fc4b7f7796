package user

import (
	"context"

	"github.com/google/uuid"

	models "github.com/Yaaroosh/IM/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// All users except the caller, each with the count of unread envelopes
	// they have sent the caller
	ListOthers(ctx context.Context, callerID uuid.UUID) ([]models.DirectoryEntry, error)
}
