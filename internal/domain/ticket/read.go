package ticket

import "time"

// ReadMark is the per-(ticket, user) watermark recording the last time the
// user viewed the ticket's replies. One row per pair; writes are upserts.
type ReadMark struct {
	TicketID   uint
	UserID     uint
	LastReadAt time.Time
}

// UnreadCount is one row of an unread-count aggregate: how many replies on
// the ticket postdate the caller's watermark (or all of them when the caller
// never read the ticket).
type UnreadCount struct {
	TicketID    uint  `json:"ticket_id"`
	UnreadCount int64 `json:"unread_count"`
}
