package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

// ChangeStatusUseCase moves a ticket between the canonical labels. The
// allow-list is membership-only: any label can follow any other. Moving to
// 진행중 notifies the customer; moving to 종결 notifies the deduplicated
// close fan-out. Either notification failing never fails the change.
type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	notifier   notification.Notifier
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := existing.Status()
	newStatus := vo.Status(cmd.Status)

	if err := existing.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	switch {
	case newStatus.IsInProgress():
		uc.notifyStatusChanged(ctx, existing)
	case newStatus.IsClosed():
		uc.notifyClosed(ctx, existing)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", newStatus)

	return &ChangeStatusResult{
		TicketID:  cmd.TicketID,
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, nil
}

func (uc *ChangeStatusUseCase) notifyStatusChanged(ctx context.Context, t *ticket.Ticket) {
	rec, err := uc.ticketRepo.GetCloseRecipients(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to resolve status change recipients", "ticket_id", t.ID(), "error", err)
		return
	}

	ticketID := t.ID()
	data := notification.TemplateData{
		"ticketID":     ticketID,
		"title":        t.Title(),
		"status":       t.Status().String(),
		"customerName": rec.CustomerName,
	}
	recipients := []string{rec.CustomerEmail}

	goroutine.SafeGo(uc.logger, "notify-ticket-status-changed", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindTicketStatusChanged, recipients, data); err != nil {
			uc.logger.Errorw("failed to send status change notification", "ticket_id", ticketID, "error", err)
		}
	})
}

func (uc *ChangeStatusUseCase) notifyClosed(ctx context.Context, t *ticket.Ticket) {
	rec, err := uc.ticketRepo.GetCloseRecipients(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to resolve close recipients", "ticket_id", t.ID(), "error", err)
		return
	}
	notifyTicketClosed(uc.logger, uc.notifier, t.ID(), t.Title(), rec)
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if !vo.Status(cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status: " + cmd.Status)
	}
	return nil
}
