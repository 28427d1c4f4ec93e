package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type EditReplyCommand struct {
	ReplyID     uint
	RequesterID uint
	IsAdmin     bool
	Message     string
}

type EditReplyResult struct {
	ReplyID   uint
	UpdatedAt time.Time
}

// EditReplyUseCase changes a reply's message. Only the author or an admin may
// edit; non-admin staff cannot touch other people's replies.
type EditReplyUseCase struct {
	replyRepo ticket.ReplyRepository
	logger    logger.Interface
}

func NewEditReplyUseCase(replyRepo ticket.ReplyRepository, logger logger.Interface) *EditReplyUseCase {
	return &EditReplyUseCase{
		replyRepo: replyRepo,
		logger:    logger,
	}
}

func (uc *EditReplyUseCase) Execute(ctx context.Context, cmd EditReplyCommand) (*EditReplyResult, error) {
	if cmd.ReplyID == 0 {
		return nil, errors.NewValidationError("reply ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}
	if len(cmd.Message) == 0 {
		return nil, errors.NewValidationError("message is required")
	}

	reply, err := uc.replyRepo.GetByID(ctx, cmd.ReplyID)
	if err != nil {
		uc.logger.Errorw("failed to get reply", "reply_id", cmd.ReplyID, "error", err)
		return nil, err
	}
	if reply == nil {
		return nil, errors.NewNotFoundError("reply not found")
	}

	if !reply.CanBeModifiedBy(cmd.RequesterID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("access denied")
	}

	if err := reply.Edit(cmd.Message); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.replyRepo.Update(ctx, reply); err != nil {
		uc.logger.Errorw("failed to update reply", "reply_id", cmd.ReplyID, "error", err)
		return nil, err
	}

	return &EditReplyResult{
		ReplyID:   reply.ID(),
		UpdatedAt: reply.UpdatedAt(),
	}, nil
}
