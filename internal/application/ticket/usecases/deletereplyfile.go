package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteReplyFileCommand struct {
	FileID      uint
	RequesterID uint
	IsAdmin     bool
}

type DeleteReplyFileResult struct {
	FileID uint
}

// DeleteReplyFileUseCase removes one attachment from a reply. Permission
// follows the reply itself: author or admin.
type DeleteReplyFileUseCase struct {
	replyRepo      ticket.ReplyRepository
	attachmentRepo ticket.AttachmentRepository
	blobStore      blob.Store
	logger         logger.Interface
}

func NewDeleteReplyFileUseCase(
	replyRepo ticket.ReplyRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobStore blob.Store,
	logger logger.Interface,
) *DeleteReplyFileUseCase {
	return &DeleteReplyFileUseCase{
		replyRepo:      replyRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *DeleteReplyFileUseCase) Execute(ctx context.Context, cmd DeleteReplyFileCommand) (*DeleteReplyFileResult, error) {
	if cmd.FileID == 0 {
		return nil, errors.NewValidationError("file ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}

	file, err := uc.attachmentRepo.GetReplyFile(ctx, cmd.FileID)
	if err != nil {
		uc.logger.Errorw("failed to get reply file", "file_id", cmd.FileID, "error", err)
		return nil, err
	}
	if file == nil {
		return nil, errors.NewNotFoundError("file not found")
	}

	reply, err := uc.replyRepo.GetByID(ctx, file.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get owning reply", "reply_id", file.OwnerID, "error", err)
		return nil, err
	}
	if reply == nil {
		return nil, errors.NewNotFoundError("reply not found")
	}

	if !reply.CanBeModifiedBy(cmd.RequesterID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("access denied")
	}

	if err := uc.attachmentRepo.DeleteReplyFile(ctx, cmd.FileID); err != nil {
		uc.logger.Errorw("failed to delete reply file row", "file_id", cmd.FileID, "error", err)
		return nil, err
	}

	deleteBlobAsync(uc.logger, uc.blobStore, file.PublicID)

	return &DeleteReplyFileResult{FileID: cmd.FileID}, nil
}
