package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketFileCommand struct {
	FileID uint
}

type DeleteTicketFileResult struct {
	FileID uint
}

// DeleteTicketFileUseCase removes a ticket attachment. The staff-only gate
// is enforced at the transport layer; here only existence matters.
type DeleteTicketFileUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	blobStore      blob.Store
	logger         logger.Interface
}

func NewDeleteTicketFileUseCase(
	attachmentRepo ticket.AttachmentRepository,
	blobStore blob.Store,
	logger logger.Interface,
) *DeleteTicketFileUseCase {
	return &DeleteTicketFileUseCase{
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *DeleteTicketFileUseCase) Execute(ctx context.Context, cmd DeleteTicketFileCommand) (*DeleteTicketFileResult, error) {
	if cmd.FileID == 0 {
		return nil, errors.NewValidationError("file ID is required")
	}

	file, err := uc.attachmentRepo.GetTicketFile(ctx, cmd.FileID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket file", "file_id", cmd.FileID, "error", err)
		return nil, err
	}
	if file == nil {
		return nil, errors.NewNotFoundError("file not found")
	}

	if err := uc.attachmentRepo.DeleteTicketFile(ctx, cmd.FileID); err != nil {
		uc.logger.Errorw("failed to delete ticket file row", "file_id", cmd.FileID, "error", err)
		return nil, err
	}

	deleteBlobAsync(uc.logger, uc.blobStore, file.PublicID)

	return &DeleteTicketFileResult{FileID: cmd.FileID}, nil
}

// deleteBlobAsync removes a blob in the background. The owning row is
// already gone; a failed blob delete only leaks storage, so it is logged
// and dropped.
func deleteBlobAsync(log logger.Interface, store blob.Store, publicID string) {
	goroutine.SafeGo(log, "delete-blob", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := store.Delete(ctx, publicID); err != nil {
			log.Errorw("failed to delete blob", "public_id", publicID, "error", err)
		}
	})
}
