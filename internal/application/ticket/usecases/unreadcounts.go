package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UnreadCountsQuery struct {
	RequesterID uint
	IsStaff     bool
}

type UnreadCountsResult struct {
	Counts []*ticket.UnreadCount `json:"counts"`
}

// UnreadCountsUseCase computes the badge counts. The two audiences are
// asymmetric: customers count admin-authored replies on their own tickets,
// staff count customer-authored replies across all tickets. Each is one
// aggregate query against the caller's own watermarks.
type UnreadCountsUseCase struct {
	readRepo ticket.ReadRepository
	logger   logger.Interface
}

func NewUnreadCountsUseCase(readRepo ticket.ReadRepository, logger logger.Interface) *UnreadCountsUseCase {
	return &UnreadCountsUseCase{
		readRepo: readRepo,
		logger:   logger,
	}
}

func (uc *UnreadCountsUseCase) Execute(ctx context.Context, query UnreadCountsQuery) (*UnreadCountsResult, error) {
	if query.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}

	var (
		counts []*ticket.UnreadCount
		err    error
	)
	if query.IsStaff {
		counts, err = uc.readRepo.StaffUnreadCounts(ctx, query.RequesterID)
	} else {
		counts, err = uc.readRepo.CustomerUnreadCounts(ctx, query.RequesterID)
	}
	if err != nil {
		uc.logger.Errorw("failed to compute unread counts", "requester_id", query.RequesterID, "error", err)
		return nil, err
	}

	return &UnreadCountsResult{Counts: counts}, nil
}
