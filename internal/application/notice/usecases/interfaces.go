package usecases

import "context"

// ContentRenderer turns markdown into sanitized HTML. Satisfied by
// markdown.Service.
type ContentRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateNoticeExecutor interface {
	Execute(ctx context.Context, cmd CreateNoticeCommand) (*CreateNoticeResult, error)
}

type UpdateNoticeExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoticeCommand) (*UpdateNoticeResult, error)
}

type DeleteNoticeExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoticeCommand) (*DeleteNoticeResult, error)
}

type GetNoticeExecutor interface {
	Execute(ctx context.Context, query GetNoticeQuery) (*NoticeDetail, error)
}

type ListNoticesExecutor interface {
	Execute(ctx context.Context) (*ListNoticesResult, error)
}
