package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateNoticeCommand struct {
	Title    string
	Content  string
	AuthorID uint
}

type CreateNoticeResult struct {
	NoticeID  uint      `json:"notice_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNoticeUseCase handles publishing a new announcement.
type CreateNoticeUseCase struct {
	noticeRepo notice.Repository
	logger     logger.Interface
}

func NewCreateNoticeUseCase(noticeRepo notice.Repository, log logger.Interface) *CreateNoticeUseCase {
	return &CreateNoticeUseCase{
		noticeRepo: noticeRepo,
		logger:     log,
	}
}

func (uc *CreateNoticeUseCase) Execute(ctx context.Context, cmd CreateNoticeCommand) (*CreateNoticeResult, error) {
	n, err := notice.NewNotice(cmd.Title, cmd.Content, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noticeRepo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create notice", "title", cmd.Title, "error", err)
		return nil, errors.NewInternalError("failed to create notice")
	}

	uc.logger.Infow("notice created", "notice_id", n.ID(), "author_id", cmd.AuthorID)

	return &CreateNoticeResult{
		NoticeID:  n.ID(),
		Title:     n.Title(),
		CreatedAt: n.CreatedAt(),
	}, nil
}
