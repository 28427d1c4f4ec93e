package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// GetStatsQuery selects the window for the status counts. Days of 1 means
// today only; zero falls back to the default.
type GetStatsQuery struct {
	Days       int
	TicketType string
}

const defaultStatsDays = 1

// TicketStatusCounts always carries all four statuses so the dashboard
// renders zeros instead of missing cells.
type TicketStatusCounts struct {
	Received   int64 `json:"received"`
	InProgress int64 `json:"in_progress"`
	Answered   int64 `json:"answered"`
	Closed     int64 `json:"closed"`
}

type GetStatsResult struct {
	Tickets       TicketStatusCounts `json:"tickets"`
	TotalTickets  int64              `json:"total_tickets"`
	CustomerCount int64              `json:"customer_count"`
	StaffCount    int64              `json:"staff_count"`
	Since         time.Time          `json:"since"`
}

// GetStatsUseCase handles the admin dashboard snapshot.
type GetStatsUseCase struct {
	ticketStats ticket.StatsRepository
	userStats   user.StatsRepository
	logger      logger.Interface
}

func NewGetStatsUseCase(
	ticketStats ticket.StatsRepository,
	userStats user.StatsRepository,
	log logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		ticketStats: ticketStats,
		userStats:   userStats,
		logger:      log,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, query GetStatsQuery) (*GetStatsResult, error) {
	days := query.Days
	if days <= 0 {
		days = defaultStatsDays
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

	var (
		statusCounts  []*ticket.StatusCount
		customerCount int64
		staffCount    int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.ticketStats.CountByStatusSince(gctx, since, ticketType)
		if err != nil {
			return errors.NewInternalError("failed to count tickets by status")
		}
		statusCounts = counts
		return nil
	})

	g.Go(func() error {
		count, err := uc.userStats.CountByRoles(gctx, []uservo.Role{uservo.RoleCustomer})
		if err != nil {
			return errors.NewInternalError("failed to count customers")
		}
		customerCount = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.userStats.CountByRoles(gctx, []uservo.Role{uservo.RoleAdmin, uservo.RoleITSMTeam})
		if err != nil {
			return errors.NewInternalError("failed to count staff")
		}
		staffCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to fetch dashboard stats", "error", err)
		return nil, err
	}

	result := &GetStatsResult{
		CustomerCount: customerCount,
		StaffCount:    staffCount,
		Since:         since,
	}
	for _, sc := range statusCounts {
		result.TotalTickets += sc.Count
		switch sc.Status {
		case ticketvo.StatusReceived:
			result.Tickets.Received = sc.Count
		case ticketvo.StatusInProgress:
			result.Tickets.InProgress = sc.Count
		case ticketvo.StatusAnswered:
			result.Tickets.Answered = sc.Count
		case ticketvo.StatusClosed:
			result.Tickets.Closed = sc.Count
		}
	}

	return result, nil
}
