package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yaaroosh/IM/internal/user"
	models "github.com/Yaaroosh/IM/internal/user/model"
	"github.com/Yaaroosh/IM/pkg/errors"
	"github.com/Yaaroosh/IM/pkg/logger"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if cmd.Username == "" {
		return nil, errors.ErrInvalidUsername
	}
	name := cmd.DisplayName
	if name == "" {
		name = cmd.Username
	}

	if existing, err := uc.repo.GetUserByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	} else if err != nil && errors.CodeOf(err) != errors.CodeNotFound {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.ErrStorageFailed(err)
	}

	u := &models.User{
		Username: cmd.Username,
		Name:     name,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			return nil, err
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrStorageFailed(err)
	}

	return &user.UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
	}, nil
}

func (uc *UserUsecase) ListOthers(ctx context.Context, callerID uuid.UUID) ([]user.DirectoryEntryDTO, error) {
	entries, err := uc.repo.ListOthers(ctx, callerID)
	if err != nil {
		uc.logger.Error("failed to list users", "caller", callerID, "err", err)
		return nil, errors.ErrStorageFailed(err)
	}

	dtos := make([]user.DirectoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, user.DirectoryEntryDTO{
			ID:          e.ID,
			Username:    e.Username,
			DisplayName: e.Name,
			UnreadCount: e.UnreadCount,
		})
	}
	return dtos, nil
}
