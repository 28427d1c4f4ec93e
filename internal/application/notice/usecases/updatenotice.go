package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateNoticeCommand struct {
	NoticeID uint
	Title    string
	Content  string
}

type UpdateNoticeResult struct {
	NoticeID  uint      `json:"notice_id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateNoticeUseCase struct {
	noticeRepo notice.Repository
	logger     logger.Interface
}

func NewUpdateNoticeUseCase(noticeRepo notice.Repository, log logger.Interface) *UpdateNoticeUseCase {
	return &UpdateNoticeUseCase{
		noticeRepo: noticeRepo,
		logger:     log,
	}
}

func (uc *UpdateNoticeUseCase) Execute(ctx context.Context, cmd UpdateNoticeCommand) (*UpdateNoticeResult, error) {
	if cmd.NoticeID == 0 {
		return nil, errors.NewValidationError("notice ID is required")
	}

	n, err := uc.noticeRepo.GetByID(ctx, cmd.NoticeID)
	if err != nil {
		uc.logger.Errorw("failed to get notice", "notice_id", cmd.NoticeID, "error", err)
		return nil, errors.NewInternalError("failed to get notice")
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notice not found")
	}

	if err := n.Update(cmd.Title, cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noticeRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update notice", "notice_id", cmd.NoticeID, "error", err)
		return nil, errors.NewInternalError("failed to update notice")
	}

	return &UpdateNoticeResult{
		NoticeID:  n.ID(),
		Title:     n.Title(),
		UpdatedAt: n.UpdatedAt(),
	}, nil
}
