package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkReadCommand struct {
	TicketID    uint
	RequesterID uint
	IsStaff     bool
}

type MarkReadResult struct {
	TicketID uint
}

// MarkReadUseCase advances the caller's watermark on a ticket. The write is
// a single conflict-resolving upsert, so concurrent reads from multiple
// devices never leave duplicate rows.
type MarkReadUseCase struct {
	ticketRepo ticket.Repository
	readRepo   ticket.ReadRepository
	logger     logger.Interface
}

func NewMarkReadUseCase(
	ticketRepo ticket.Repository,
	readRepo ticket.ReadRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		ticketRepo: ticketRepo,
		readRepo:   readRepo,
		logger:     logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(cmd.RequesterID, cmd.IsStaff) {
		return nil, errors.NewForbiddenError("access denied")
	}

	if err := uc.readRepo.MarkRead(ctx, cmd.TicketID, cmd.RequesterID); err != nil {
		uc.logger.Errorw("failed to mark ticket read",
			"ticket_id", cmd.TicketID, "user_id", cmd.RequesterID, "error", err)
		return nil, err
	}

	return &MarkReadResult{TicketID: cmd.TicketID}, nil
}
