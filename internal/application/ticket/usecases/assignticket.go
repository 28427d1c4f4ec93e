package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID uint
	// AssigneeID nil clears the assignment. The assignee is not checked to
	// be a staff member.
	AssigneeID *uint
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID *uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := existing.Assign(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket assignee", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &AssignTicketResult{
		TicketID:   existing.ID(),
		AssigneeID: existing.AssigneeID(),
	}, nil
}
