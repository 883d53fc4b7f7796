package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register a directory entry. No credentials: authentication is handled
	// elsewhere; the relay only needs to know the user exists.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Directory with unread counts for the caller
	ListOthers(ctx context.Context, callerID uuid.UUID) ([]DirectoryEntryDTO, error)
}
