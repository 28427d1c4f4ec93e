package ticket

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// StatusCount is one row of the per-status aggregate.
type StatusCount struct {
	Status vo.Status
	Count  int64
}

// TrendPoint is one day of the created-ticket series. Date is YYYY-MM-DD.
type TrendPoint struct {
	Date  string
	Count int64
}

// StatsRepository serves the dashboard aggregates. Read-only, one query per
// call.
type StatsRepository interface {
	// CountByStatusSince counts tickets per status created at or after
	// since, optionally narrowed to one ticket type
	CountByStatusSince(ctx context.Context, since time.Time, ticketType *vo.TicketType) ([]*StatusCount, error)

	// DailyCreatedCounts buckets tickets created at or after since by
	// calendar day, optionally narrowed to one ticket type. Days without
	// tickets are absent from the result.
	DailyCreatedCounts(ctx context.Context, since time.Time, ticketType *vo.TicketType) ([]*TrendPoint, error)
}
