package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// StatsRepository answers the dashboard aggregates with plain GORM queries.
// Daily bucketing happens in Go so the same code runs on MySQL and SQLite.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(gormDB *gorm.DB) *StatsRepository {
	return &StatsRepository{db: gormDB}
}

func (r *StatsRepository) CountByStatusSince(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.StatusCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ?", since.UnixMilli()).
		Group("status")
	if ticketType != nil {
		query = query.Where("ticket_type = ?", ticketType.String())
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make([]*ticket.StatusCount, 0, len(rows))
	for _, row := range rows {
		status, err := ticketvo.NewStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("unexpected status in tickets table: %w", err)
		}
		counts = append(counts, &ticket.StatusCount{Status: status, Count: row.Count})
	}
	return counts, nil
}

func (r *StatsRepository) DailyCreatedCounts(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.TrendPoint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.TicketModel{}).
		Where("created_at >= ?", since.UnixMilli())
	if ticketType != nil {
		query = query.Where("ticket_type = ?", ticketType.String())
	}

	var createdAt []int64
	if err := query.Order("created_at").Pluck("created_at", &createdAt).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket creation times: %w", err)
	}

	byDay := make(map[string]int64)
	order := make([]string, 0)
	for _, millis := range createdAt {
		day := time.UnixMilli(millis).UTC().Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day]++
	}

	points := make([]*ticket.TrendPoint, len(order))
	for i, day := range order {
		points[i] = &ticket.TrendPoint{Date: day, Count: byDay[day]}
	}
	return points, nil
}

func (r *StatsRepository) CountByRoles(ctx context.Context, roles []uservo.Role) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}

	var count int64
	if err := tx.
		Model(&models.UserModel{}).
		Where("role IN ?", names).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
