package usecases

import (
	"context"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteNoticeCommand struct {
	NoticeID uint
}

type DeleteNoticeResult struct {
	NoticeID uint `json:"notice_id"`
}

type DeleteNoticeUseCase struct {
	noticeRepo notice.Repository
	logger     logger.Interface
}

func NewDeleteNoticeUseCase(noticeRepo notice.Repository, log logger.Interface) *DeleteNoticeUseCase {
	return &DeleteNoticeUseCase{
		noticeRepo: noticeRepo,
		logger:     log,
	}
}

func (uc *DeleteNoticeUseCase) Execute(ctx context.Context, cmd DeleteNoticeCommand) (*DeleteNoticeResult, error) {
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

	if err := uc.noticeRepo.Delete(ctx, cmd.NoticeID); err != nil {
		uc.logger.Errorw("failed to delete notice", "notice_id", cmd.NoticeID, "error", err)
		return nil, errors.NewInternalError("failed to delete notice")
	}

	uc.logger.Infow("notice deleted", "notice_id", cmd.NoticeID)

	return &DeleteNoticeResult{NoticeID: cmd.NoticeID}, nil
}
