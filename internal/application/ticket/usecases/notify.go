package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// notifyTimeout bounds background notification sends so a stuck SMTP
// connection cannot pin goroutines forever.
const notifyTimeout = 30 * time.Second

// closeRecipientSet flattens the close fan-out into a deduplicated address
// list: the customer, the assignee if any, and every staff member.
func closeRecipientSet(rec *ticket.CloseRecipients) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		out = append(out, email)
	}

	add(rec.CustomerEmail)
	if rec.AssigneeEmail != nil {
		add(*rec.AssigneeEmail)
	}
	for _, email := range rec.StaffEmails {
		add(email)
	}
	return out
}

// notifyTicketClosed fires the closed-ticket fan-out in the background.
// Shared by the manual status change and the auto-close sweep.
func notifyTicketClosed(log logger.Interface, notifier notification.Notifier, ticketID uint, title string, rec *ticket.CloseRecipients) {
	recipients := closeRecipientSet(rec)
	if len(recipients) == 0 {
		return
	}

	data := notification.TemplateData{
		"ticketID":     ticketID,
		"title":        title,
		"customerName": rec.CustomerName,
	}
	if rec.AssigneeName != nil {
		data["assigneeName"] = *rec.AssigneeName
	}

	goroutine.SafeGo(log, "notify-ticket-closed", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := notifier.Send(ctx, notification.KindTicketClosed, recipients, data); err != nil {
			log.Errorw("failed to send ticket closed notification", "ticket_id", ticketID, "error", err)
		}
	})
}
