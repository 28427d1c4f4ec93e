package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetNoticeQuery struct {
	NoticeID uint
}

// NoticeDetail carries both the rendered HTML for display and the raw
// markdown so the admin editor can round-trip the content.
type NoticeDetail struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	ContentHTML string    `json:"content_html"`
	ContentRaw  string    `json:"content_raw"`
	AuthorID    uint      `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetNoticeUseCase handles reading one announcement. Markdown is rendered
// and sanitized here, never stored as HTML.
type GetNoticeUseCase struct {
	noticeRepo notice.Repository
	renderer   ContentRenderer
	logger     logger.Interface
}

func NewGetNoticeUseCase(noticeRepo notice.Repository, renderer ContentRenderer, log logger.Interface) *GetNoticeUseCase {
	return &GetNoticeUseCase{
		noticeRepo: noticeRepo,
		renderer:   renderer,
		logger:     log,
	}
}

func (uc *GetNoticeUseCase) Execute(ctx context.Context, query GetNoticeQuery) (*NoticeDetail, error) {
	if query.NoticeID == 0 {
		return nil, errors.NewValidationError("notice ID is required")
	}

	n, err := uc.noticeRepo.GetByID(ctx, query.NoticeID)
	if err != nil {
		uc.logger.Errorw("failed to get notice", "notice_id", query.NoticeID, "error", err)
		return nil, errors.NewInternalError("failed to get notice")
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notice not found")
	}

	rendered, err := uc.renderer.ToHTMLSanitized(n.Content())
	if err != nil {
		uc.logger.Errorw("failed to render notice content", "notice_id", n.ID(), "error", err)
		return nil, errors.NewInternalError("failed to render notice content")
	}

	return &NoticeDetail{
		ID:          n.ID(),
		Title:       n.Title(),
		ContentHTML: rendered,
		ContentRaw:  n.Content(),
		AuthorID:    n.AuthorID(),
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}, nil
}
