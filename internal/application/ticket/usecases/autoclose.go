package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/logger"
)

// AutoCloseUseCase is the stale-ticket sweep: tickets sitting in 답변 완료
// whose latest reply is admin-authored and older than the cutoff get moved
// to 종결 with the same notification fan-out as a manual close. A ticket
// whose last word belongs to the customer is left alone.
//
// The sweep is a periodic reconciliation pass driven by the scheduler; it
// keeps going past individual ticket failures and reports how many tickets
// it closed.
type AutoCloseUseCase struct {
	ticketRepo ticket.Repository
	replyRepo  ticket.ReplyRepository
	notifier   notification.Notifier
	logger     logger.Interface
	afterDays  int
}

func NewAutoCloseUseCase(
	ticketRepo ticket.Repository,
	replyRepo ticket.ReplyRepository,
	notifier notification.Notifier,
	logger logger.Interface,
	afterDays int,
) *AutoCloseUseCase {
	if afterDays <= 0 {
		afterDays = 7
	}
	return &AutoCloseUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		notifier:   notifier,
		logger:     logger,
		afterDays:  afterDays,
	}
}

// Execute runs one sweep and returns the number of tickets closed.
func (uc *AutoCloseUseCase) Execute(ctx context.Context) (int, error) {
	ids, err := uc.ticketRepo.ListIDsByStatus(ctx, vo.StatusAnswered)
	if err != nil {
		uc.logger.Errorw("failed to list answered tickets", "error", err)
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -uc.afterDays)
	closed := 0

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return closed, err
		}

		ok, err := uc.closeIfStale(ctx, id, cutoff)
		if err != nil {
			uc.logger.Errorw("auto-close failed for ticket", "ticket_id", id, "error", err)
			continue
		}
		if ok {
			closed++
		}
	}

	return closed, nil
}

func (uc *AutoCloseUseCase) closeIfStale(ctx context.Context, ticketID uint, cutoff time.Time) (bool, error) {
	latest, err := uc.replyRepo.GetLatestByTicket(ctx, ticketID)
	if err != nil {
		return false, err
	}
	if latest == nil {
		return false, nil
	}
	if latest.AuthorRole != uservo.RoleAdmin.String() {
		return false, nil
	}
	if !latest.Reply.CreatedAt().Before(cutoff) {
		return false, nil
	}

	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return false, err
	}
	if t == nil || !t.Status().IsAnswered() {
		// changed under us since the ID scan
		return false, nil
	}

	if err := t.ChangeStatus(vo.StatusClosed); err != nil {
		return false, err
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return false, err
	}

	uc.logger.Infow("auto-closed stale ticket", "ticket_id", ticketID)

	rec, err := uc.ticketRepo.GetCloseRecipients(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to resolve close recipients", "ticket_id", ticketID, "error", err)
		return true, nil
	}
	notifyTicketClosed(uc.logger, uc.notifier, ticketID, t.Title(), rec)

	return true, nil
}
