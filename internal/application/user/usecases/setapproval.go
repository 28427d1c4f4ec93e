package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type SetApprovalCommand struct {
	UserID   uint
	Approved bool
}

type SetApprovalResult struct {
	UserID     uint
	IsApproved bool
}

// SetApprovalUseCase toggles the admin approval flag on an account. Newly
// approved users get a confirmation email; revocation is silent.
type SetApprovalUseCase struct {
	userRepo user.Repository
	notifier notification.Notifier
	logger   logger.Interface
}

func NewSetApprovalUseCase(
	userRepo user.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *SetApprovalUseCase {
	return &SetApprovalUseCase{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SetApprovalUseCase) Execute(ctx context.Context, cmd SetApprovalCommand) (*SetApprovalResult, error) {
	uc.logger.Infow("executing set approval use case", "user_id", cmd.UserID, "approved", cmd.Approved)

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

	wasApproved := account.IsApproved()
	account.SetApproved(cmd.Approved)

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user approval", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if cmd.Approved && !wasApproved {
		data := notification.TemplateData{"name": account.Name()}
		recipients := []string{account.Email()}
		userID := account.ID()
		goroutine.SafeGo(uc.logger, "notify-user-approved", func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := uc.notifier.Send(sendCtx, notification.KindUserApproved, recipients, data); err != nil {
				uc.logger.Errorw("failed to send approval notification", "user_id", userID, "error", err)
			}
		})
	}

	return &SetApprovalResult{
		UserID:     account.ID(),
		IsApproved: account.IsApproved(),
	}, nil
}
