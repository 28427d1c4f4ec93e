package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// ListFilter narrows ticket list queries. Keyword matches the title; for
// staff queries it also matches customer and assignee names.
type ListFilter struct {
	Status  *vo.Status
	Urgency *vo.Urgency
	Keyword string
}

// ListItem is a ticket row joined with the display names the list views
// need, so listing stays a single query.
type ListItem struct {
	Ticket        *Ticket
	CustomerName  string
	CustomerEmail string
	CompanyName   *string
	AssigneeName  *string
	AssigneeEmail *string
}

// CloseRecipients is the raw material for the ticket-closed notification
// fan-out: customer and assignee addresses plus every staff address.
// Deduplication happens in the use case, not the query.
type CloseRecipients struct {
	CustomerName  string
	CustomerEmail string
	AssigneeName  *string
	AssigneeEmail *string
	StaffEmails   []string
}

// Repository defines ticket aggregate persistence.
type Repository interface {
	// Create inserts a new ticket and sets its ID back on the entity
	Create(ctx context.Context, t *Ticket) error

	// GetByID retrieves a ticket by ID, nil when absent
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// Update persists changes to an existing ticket
	Update(ctx context.Context, t *Ticket) error

	// ListByCustomer retrieves a customer's tickets, newest first
	ListByCustomer(ctx context.Context, customerID uint, filter ListFilter) ([]*ListItem, error)

	// ListAll retrieves all tickets for staff views, newest first
	ListAll(ctx context.Context, filter ListFilter) ([]*ListItem, error)

	// ListIDsByStatus returns the IDs of tickets currently in the given status
	ListIDsByStatus(ctx context.Context, status vo.Status) ([]uint, error)

	// GetCloseRecipients gathers the addresses notified when the ticket closes
	GetCloseRecipients(ctx context.Context, ticketID uint) (*CloseRecipients, error)
}

// ReplyRepository defines reply persistence. Replies live and die with
// their ticket.
type ReplyRepository interface {
	// Create inserts a reply and sets its ID back on the entity
	Create(ctx context.Context, r *Reply) error

	// GetByID retrieves a reply by ID, nil when absent
	GetByID(ctx context.Context, id uint) (*Reply, error)

	// ListByTicket retrieves all replies of a ticket, oldest first
	ListByTicket(ctx context.Context, ticketID uint) ([]*Reply, error)

	// GetLatestByTicket returns the most recent reply with its author's
	// role, nil when the ticket has no replies
	GetLatestByTicket(ctx context.Context, ticketID uint) (*LatestReply, error)

	// Update persists an edited reply
	Update(ctx context.Context, r *Reply) error

	// Delete removes a reply and its attachment rows
	Delete(ctx context.Context, id uint) error
}

// LatestReply pairs a reply with its author's role for the auto-close sweep.
type LatestReply struct {
	Reply      *Reply
	AuthorRole string
}

// AttachmentRepository stores file rows for tickets and replies.
type AttachmentRepository interface {
	// AddTicketFile links a stored blob to a ticket
	AddTicketFile(ctx context.Context, a *Attachment) error

	// AddReplyFile links a stored blob to a reply
	AddReplyFile(ctx context.Context, a *Attachment) error

	// ListTicketFiles returns a ticket's attachments
	ListTicketFiles(ctx context.Context, ticketID uint) ([]*Attachment, error)

	// ListReplyFiles returns attachments for all given reply IDs
	ListReplyFiles(ctx context.Context, replyIDs []uint) (map[uint][]*Attachment, error)

	// GetTicketFile retrieves one ticket attachment, nil when absent
	GetTicketFile(ctx context.Context, fileID uint) (*Attachment, error)

	// GetReplyFile retrieves one reply attachment, nil when absent
	GetReplyFile(ctx context.Context, fileID uint) (*Attachment, error)

	// DeleteTicketFile removes a ticket attachment row
	DeleteTicketFile(ctx context.Context, fileID uint) error

	// DeleteReplyFile removes a reply attachment row
	DeleteReplyFile(ctx context.Context, fileID uint) error
}

// ReadRepository tracks per-(ticket, user) read watermarks and computes the
// unread aggregates. Both count queries are single-pass, grouped by ticket.
type ReadRepository interface {
	// MarkRead upserts the watermark for (ticketID, userID) to now.
	// The write must be a single conflict-resolving upsert.
	MarkRead(ctx context.Context, ticketID, userID uint) error

	// CustomerUnreadCounts counts, per ticket owned by the customer,
	// admin-authored replies newer than the customer's watermark
	CustomerUnreadCounts(ctx context.Context, customerID uint) ([]*UnreadCount, error)

	// StaffUnreadCounts counts, per ticket (all tickets), customer-authored
	// replies newer than the calling staff member's own watermark
	StaffUnreadCounts(ctx context.Context, staffID uint) ([]*UnreadCount, error)
}
