package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TicketReadRepository struct {
	db *gorm.DB
}

func NewTicketReadRepository(gormDB *gorm.DB) *TicketReadRepository {
	return &TicketReadRepository{db: gormDB}
}

// MarkRead upserts the (ticket, user) watermark in one statement. Repeated
// calls only ever advance last_read_at on the same row.
func (r *TicketReadRepository) MarkRead(ctx context.Context, ticketID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.TicketReadModel{
		TicketID:   ticketID,
		UserID:     userID,
		LastReadAt: time.Now().UnixMilli(),
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticket_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_read_at": model.LastReadAt}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to mark ticket read: %w", err)
	}

	return nil
}

// CustomerUnreadCounts returns, per ticket owned by the customer, the number
// of admin-authored replies newer than the customer's watermark. Tickets the
// customer never opened count every admin reply. Replies from itsm_team
// members do not count toward the customer's badge.
func (r *TicketReadRepository) CustomerUnreadCounts(ctx context.Context, customerID uint) ([]*ticket.UnreadCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var counts []*ticket.UnreadCount
	err := tx.Raw(`
		SELECT t.id AS ticket_id,
		       COALESCE(SUM(CASE WHEN u.role = 'admin' AND r.created_at > COALESCE(tr.last_read_at, 0) THEN 1 ELSE 0 END), 0) AS unread_count
		FROM tickets t
		LEFT JOIN ticket_replies r ON r.ticket_id = t.id
		LEFT JOIN users u ON u.id = r.author_id
		LEFT JOIN ticket_reads tr ON tr.ticket_id = t.id AND tr.user_id = ?
		WHERE t.customer_id = ?
		GROUP BY t.id`,
		customerID, customerID,
	).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count customer unread replies: %w", err)
	}

	return counts, nil
}

// StaffUnreadCounts returns, per ticket across the whole system, the number
// of customer-authored replies newer than the calling staff member's own
// watermark. Each staff member tracks their own read state.
func (r *TicketReadRepository) StaffUnreadCounts(ctx context.Context, staffID uint) ([]*ticket.UnreadCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var counts []*ticket.UnreadCount
	err := tx.Raw(`
		SELECT t.id AS ticket_id,
		       COALESCE(SUM(CASE WHEN u.role = 'customer' AND r.created_at > COALESCE(tr.last_read_at, 0) THEN 1 ELSE 0 END), 0) AS unread_count
		FROM tickets t
		LEFT JOIN ticket_replies r ON r.ticket_id = t.id
		LEFT JOIN users u ON u.id = r.author_id
		LEFT JOIN ticket_reads tr ON tr.ticket_id = t.id AND tr.user_id = ?
		GROUP BY t.id`,
		staffID,
	).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count staff unread replies: %w", err)
	}

	return counts, nil
}
