package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type DeleteReplyCommand struct {
	ReplyID     uint
	RequesterID uint
	IsAdmin     bool
}

type DeleteReplyResult struct {
	ReplyID uint
}

// DeleteReplyUseCase removes a reply together with its attachment rows.
// Blob deletion is best-effort and runs after the rows are gone; an
// undeletable blob is logged, never re-surfaced.
type DeleteReplyUseCase struct {
	replyRepo      ticket.ReplyRepository
	attachmentRepo ticket.AttachmentRepository
	blobStore      blob.Store
	logger         logger.Interface
}

func NewDeleteReplyUseCase(
	replyRepo ticket.ReplyRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobStore blob.Store,
	logger logger.Interface,
) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{
		replyRepo:      replyRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, cmd DeleteReplyCommand) (*DeleteReplyResult, error) {
	uc.logger.Infow("executing delete reply use case", "reply_id", cmd.ReplyID, "requester_id", cmd.RequesterID)

	if cmd.ReplyID == 0 {
		return nil, errors.NewValidationError("reply ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
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

	filesByReply, err := uc.attachmentRepo.ListReplyFiles(ctx, []uint{cmd.ReplyID})
	if err != nil {
		uc.logger.Errorw("failed to list reply files", "reply_id", cmd.ReplyID, "error", err)
		return nil, err
	}
	files := filesByReply[cmd.ReplyID]

	if err := uc.replyRepo.Delete(ctx, cmd.ReplyID); err != nil {
		uc.logger.Errorw("failed to delete reply", "reply_id", cmd.ReplyID, "error", err)
		return nil, err
	}

	if len(files) > 0 {
		publicIDs := make([]string, 0, len(files))
		for _, f := range files {
			publicIDs = append(publicIDs, f.PublicID)
		}
		goroutine.SafeGo(uc.logger, "delete-reply-blobs", func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			for _, publicID := range publicIDs {
				if err := uc.blobStore.Delete(cleanupCtx, publicID); err != nil {
					uc.logger.Errorw("failed to delete reply blob", "public_id", publicID, "error", err)
				}
			}
		})
	}

	return &DeleteReplyResult{ReplyID: cmd.ReplyID}, nil
}
