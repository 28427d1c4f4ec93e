package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTrendQuery struct {
	Days       int
	TicketType string
}

const (
	defaultTrendDays = 7
	maxTrendDays     = 90
)

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GetTrendResult carries one point per calendar day in the window, oldest
// first, with zeros filled in for days without tickets.
type GetTrendResult struct {
	Points []TrendPoint `json:"points"`
}

// GetTrendUseCase handles the daily created-ticket series for the dashboard
// chart.
type GetTrendUseCase struct {
	ticketStats ticket.StatsRepository
	logger      logger.Interface
}

func NewGetTrendUseCase(ticketStats ticket.StatsRepository, log logger.Interface) *GetTrendUseCase {
	return &GetTrendUseCase{
		ticketStats: ticketStats,
		logger:      log,
	}
}

func (uc *GetTrendUseCase) Execute(ctx context.Context, query GetTrendQuery) (*GetTrendResult, error) {
	days := query.Days
	if days <= 0 {
		days = defaultTrendDays
	}
	if days > maxTrendDays {
		return nil, errors.NewValidationError("trend window too large")
	}

	var ticketType *ticketvo.TicketType
	if query.TicketType != "" {
		tt, err := ticketvo.NewTicketType(query.TicketType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		ticketType = &tt
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := todayStart.AddDate(0, 0, -(days - 1))

	points, err := uc.ticketStats.DailyCreatedCounts(ctx, since, ticketType)
	if err != nil {
		uc.logger.Errorw("failed to fetch ticket trend", "days", days, "error", err)
		return nil, errors.NewInternalError("failed to fetch ticket trend")
	}

	byDay := make(map[string]int64, len(points))
	for _, p := range points {
		byDay[p.Date] = p.Count
	}

	result := &GetTrendResult{Points: make([]TrendPoint, days)}
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		result.Points[i] = TrendPoint{Date: day, Count: byDay[day]}
	}

	return result, nil
}
