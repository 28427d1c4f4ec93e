package user

import (
	"context"

	uservo "helpdesk/internal/domain/user/valueobjects"
)

// StatsRepository serves the dashboard user counts.
type StatsRepository interface {
	CountByRoles(ctx context.Context, roles []uservo.Role) (int64, error)
}
