// Package notification defines the outbound notification port. Delivery is
// an external collaborator; the engine only ever fires and forgets. A failed
// send is logged by the caller and never rolls back the transition that
// triggered it.
package notification

import "context"

// Kind identifies the notification template.
type Kind string

const (
	KindAdminNewTicket        Kind = "admin-new-ticket"
	KindTicketStatusChanged   Kind = "ticket-status-changed"
	KindTicketClosed          Kind = "ticket-closed"
	KindMagicLink             Kind = "magic-link"
	KindAdminNewAccessRequest Kind = "admin-new-access-request"
	KindAccessRequestRejected Kind = "access-request-rejected"
	KindUserApproved          Kind = "user-approved"
)

// TemplateData carries the values rendered into the notification body.
type TemplateData map[string]interface{}

// Notifier delivers a notification of the given kind to the recipients.
// Implementations are injected at construction; the engine never reaches
// for a process-wide transporter.
type Notifier interface {
	Send(ctx context.Context, kind Kind, recipients []string, data TemplateData) error
}
