package ticket

import (
	"fmt"
	"time"
)

// Reply is a comment on a ticket, owned by the ticket. A reply may carry an
// empty message when it exists only to hold file attachments.
type Reply struct {
	id        uint
	ticketID  uint
	authorID  uint
	message   string
	createdAt time.Time
	updatedAt time.Time
}

// NewReply creates a reply. The message may be empty; the caller enforces
// the message-or-files requirement before persisting.
func NewReply(ticketID, authorID uint, message string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Reply{
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReply rebuilds a reply from persistence.
func ReconstructReply(id, ticketID, authorID uint, message string, createdAt, updatedAt time.Time) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Reply{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Reply) ID() uint             { return r.id }
func (r *Reply) TicketID() uint       { return r.ticketID }
func (r *Reply) AuthorID() uint       { return r.authorID }
func (r *Reply) Message() string      { return r.message }
func (r *Reply) CreatedAt() time.Time { return r.createdAt }
func (r *Reply) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}

// Edit replaces the message body.
func (r *Reply) Edit(message string) error {
	if len(message) == 0 {
		return fmt.Errorf("message is required")
	}
	r.message = message
	r.updatedAt = time.Now()
	return nil
}

// CanBeModifiedBy reports whether the user may edit or delete this reply.
// Only the author or an admin qualifies; non-admin staff cannot touch
// other people's replies.
func (r *Reply) CanBeModifiedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return r.authorID == userID
}
