package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddReplyCommand struct {
	TicketID uint
	AuthorID uint
	IsStaff  bool
	Message  string
	Files    []FileUpload
}

type AddReplyResult struct {
	ReplyID   uint
	TicketID  uint
	CreatedAt time.Time
}

// AddReplyUseCase appends a comment to a ticket. A reply needs a message or
// at least one file; an attachments-only reply carries an empty message.
// Replies fire no notification, unread tracking covers them instead.
type AddReplyUseCase struct {
	ticketRepo     ticket.Repository
	replyRepo      ticket.ReplyRepository
	attachmentRepo ticket.AttachmentRepository
	blobStore      blob.Store
	logger         logger.Interface
}

func NewAddReplyUseCase(
	ticketRepo ticket.Repository,
	replyRepo ticket.ReplyRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobStore blob.Store,
	logger logger.Interface,
) *AddReplyUseCase {
	return &AddReplyUseCase{
		ticketRepo:     ticketRepo,
		replyRepo:      replyRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, cmd AddReplyCommand) (*AddReplyResult, error) {
	uc.logger.Infow("executing add reply use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add reply command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(cmd.AuthorID, cmd.IsStaff) {
		return nil, errors.NewForbiddenError("access denied")
	}

	reply, err := ticket.NewReply(cmd.TicketID, cmd.AuthorID, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.replyRepo.Create(ctx, reply); err != nil {
		uc.logger.Errorw("failed to save reply", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	for _, f := range cmd.Files {
		stored, err := uc.blobStore.Save(ctx, f.OriginalName, f.Content)
		if err != nil {
			uc.logger.Errorw("failed to store reply attachment",
				"reply_id", reply.ID(), "file", f.OriginalName, "error", err)
			return nil, errors.NewInternalError("failed to store attachment")
		}

		attachment := &ticket.Attachment{
			OwnerID:      reply.ID(),
			URL:          stored.URL,
			OriginalName: f.OriginalName,
			PublicID:     stored.PublicID,
		}
		if err := uc.attachmentRepo.AddReplyFile(ctx, attachment); err != nil {
			uc.logger.Errorw("failed to save reply attachment row",
				"reply_id", reply.ID(), "file", f.OriginalName, "error", err)
			return nil, err
		}
	}

	return &AddReplyResult{
		ReplyID:   reply.ID(),
		TicketID:  reply.TicketID(),
		CreatedAt: reply.CreatedAt(),
	}, nil
}

func (uc *AddReplyUseCase) validateCommand(cmd AddReplyCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	if len(cmd.Message) == 0 && len(cmd.Files) == 0 {
		return errors.NewValidationError("message or files required")
	}
	return nil
}
