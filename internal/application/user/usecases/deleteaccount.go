package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteAccountCommand struct {
	UserID uint
}

type DeleteAccountResult struct {
	UserID uint
}

// DeleteAccountUseCase removes the caller's own account. Tickets the user
// created stay in place; their customer reference simply stops resolving.
type DeleteAccountUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteAccountUseCase(userRepo user.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) (*DeleteAccountResult, error) {
	uc.logger.Infow("executing delete account use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("account deleted", "user_id", cmd.UserID)

	return &DeleteAccountResult{UserID: cmd.UserID}, nil
}
