package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID      uint
	Name        string
	CompanyName *string
}

type UpdateProfileResult struct {
	UserID      uint
	Name        string
	CompanyName *string
}

// UpdateProfileUseCase changes the mutable profile fields. Email and role
// never move through here.
type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := account.UpdateProfile(cmd.Name, cmd.CompanyName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &UpdateProfileResult{
		UserID:      account.ID(),
		Name:        account.Name(),
		CompanyName: account.CompanyName(),
	}, nil
}
