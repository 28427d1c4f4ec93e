package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/logger"
)

type mockTicketStats struct {
	CountByStatusSinceFunc func(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.StatusCount, error)
	DailyCreatedCountsFunc func(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.TrendPoint, error)
}

func (m *mockTicketStats) CountByStatusSince(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.StatusCount, error) {
	if m.CountByStatusSinceFunc != nil {
		return m.CountByStatusSinceFunc(ctx, since, ticketType)
	}
	return nil, nil
}

func (m *mockTicketStats) DailyCreatedCounts(ctx context.Context, since time.Time, ticketType *ticketvo.TicketType) ([]*ticket.TrendPoint, error) {
	if m.DailyCreatedCountsFunc != nil {
		return m.DailyCreatedCountsFunc(ctx, since, ticketType)
	}
	return nil, nil
}

type mockUserStats struct {
	CountByRolesFunc func(ctx context.Context, roles []uservo.Role) (int64, error)
}

func (m *mockUserStats) CountByRoles(ctx context.Context, roles []uservo.Role) (int64, error) {
	if m.CountByRolesFunc != nil {
		return m.CountByRolesFunc(ctx, roles)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
