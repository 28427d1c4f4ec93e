package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Urgency     string
	Product     string
	Platform    string
	SWVersion   string
	OS          string
	TicketType  string
	CustomerID  uint
	Files       []FileUpload
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.Repository
	blobStore      blob.Store
	notifier       notification.Notifier
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	blobStore blob.Store,
	notifier notification.Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		blobStore:      blobStore,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "customer_id", cmd.CustomerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Urgency(cmd.Urgency),
		cmd.Product,
		cmd.CustomerID,
		cmd.Platform,
		cmd.SWVersion,
		cmd.OS,
		vo.TicketType(cmd.TicketType),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// File attachment runs after the ticket insert; a blob-store failure
	// here aborts the remaining files but never the ticket itself.
	for _, f := range cmd.Files {
		stored, err := uc.blobStore.Save(ctx, f.OriginalName, f.Content)
		if err != nil {
			uc.logger.Errorw("failed to store ticket attachment",
				"ticket_id", newTicket.ID(), "file", f.OriginalName, "error", err)
			return nil, errors.NewInternalError("failed to store attachment")
		}

		attachment := &ticket.Attachment{
			OwnerID:      newTicket.ID(),
			URL:          stored.URL,
			OriginalName: f.OriginalName,
			PublicID:     stored.PublicID,
		}
		if err := uc.attachmentRepo.AddTicketFile(ctx, attachment); err != nil {
			uc.logger.Errorw("failed to save attachment row",
				"ticket_id", newTicket.ID(), "file", f.OriginalName, "error", err)
			return nil, err
		}
	}

	uc.notifyAdmins(ctx, newTicket)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "status", newTicket.Status())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// notifyAdmins emails every admin about the new ticket. Fire-and-forget:
// lookup or delivery failures are logged and never surface to the caller.
func (uc *CreateTicketUseCase) notifyAdmins(ctx context.Context, t *ticket.Ticket) {
	customer, err := uc.userRepo.GetByID(ctx, t.CustomerID())
	if err != nil || customer == nil {
		uc.logger.Errorw("failed to resolve ticket customer for notification",
			"ticket_id", t.ID(), "customer_id", t.CustomerID(), "error", err)
		return
	}

	adminEmails, err := uc.userRepo.GetEmailsByRoles(ctx, []uservo.Role{uservo.RoleAdmin})
	if err != nil {
		uc.logger.Errorw("failed to list admin emails for notification", "ticket_id", t.ID(), "error", err)
		return
	}
	if len(adminEmails) == 0 {
		return
	}

	ticketID := t.ID()
	data := notification.TemplateData{
		"ticketID":     ticketID,
		"title":        t.Title(),
		"urgency":      t.Urgency().String(),
		"description":  t.Description(),
		"customerName": customer.Name(),
	}

	goroutine.SafeGo(uc.logger, "notify-admin-new-ticket", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindAdminNewTicket, adminEmails, data); err != nil {
			uc.logger.Errorw("failed to send new ticket notification", "ticket_id", ticketID, "error", err)
		}
	})
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}
	if !vo.Urgency(cmd.Urgency).IsValid() {
		return errors.NewValidationError("invalid urgency")
	}
	if !vo.TicketType(cmd.TicketType).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}
	return nil
}
