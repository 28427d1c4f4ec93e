package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type NoticeItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListNoticesResult struct {
	Notices []NoticeItem `json:"notices"`
	Total   int          `json:"total"`
}

type ListNoticesUseCase struct {
	noticeRepo notice.Repository
	logger     logger.Interface
}

func NewListNoticesUseCase(noticeRepo notice.Repository, log logger.Interface) *ListNoticesUseCase {
	return &ListNoticesUseCase{
		noticeRepo: noticeRepo,
		logger:     log,
	}
}

func (uc *ListNoticesUseCase) Execute(ctx context.Context) (*ListNoticesResult, error) {
	notices, err := uc.noticeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list notices", "error", err)
		return nil, errors.NewInternalError("failed to list notices")
	}

	result := &ListNoticesResult{
		Notices: make([]NoticeItem, 0, len(notices)),
		Total:   len(notices),
	}
	for _, n := range notices {
		result.Notices = append(result.Notices, NoticeItem{
			ID:        n.ID(),
			Title:     n.Title(),
			CreatedAt: n.CreatedAt(),
			UpdatedAt: n.UpdatedAt(),
		})
	}
	return result, nil
}
