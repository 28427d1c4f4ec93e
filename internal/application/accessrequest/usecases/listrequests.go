package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListRequestsQuery struct {
	Status string
}

type AccessRequestItem struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CompanyName *string   `json:"company_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListRequestsResult struct {
	Requests []AccessRequestItem `json:"requests"`
	Total    int                 `json:"total"`
}

type ListRequestsUseCase struct {
	requestRepo accessrequest.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo accessrequest.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	var statusFilter *vo.Status
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statusFilter = &status
	}

	requests, err := uc.requestRepo.List(ctx, statusFilter)
	if err != nil {
		uc.logger.Errorw("failed to list access requests", "error", err)
		return nil, err
	}

	result := &ListRequestsResult{
		Requests: make([]AccessRequestItem, 0, len(requests)),
		Total:    len(requests),
	}
	for _, r := range requests {
		result.Requests = append(result.Requests, AccessRequestItem{
			ID:          r.ID(),
			Email:       r.Email(),
			Name:        r.Name(),
			CompanyName: r.CompanyName(),
			Status:      r.Status().String(),
			CreatedAt:   r.CreatedAt(),
			UpdatedAt:   r.UpdatedAt(),
		})
	}
	return result, nil
}
