package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AddReplyExecutor interface {
	Execute(ctx context.Context, cmd AddReplyCommand) (*AddReplyResult, error)
}

type EditReplyExecutor interface {
	Execute(ctx context.Context, cmd EditReplyCommand) (*EditReplyResult, error)
}

type DeleteReplyExecutor interface {
	Execute(ctx context.Context, cmd DeleteReplyCommand) (*DeleteReplyResult, error)
}

type DeleteTicketFileExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketFileCommand) (*DeleteTicketFileResult, error)
}

type DeleteReplyFileExecutor interface {
	Execute(ctx context.Context, cmd DeleteReplyFileCommand) (*DeleteReplyFileResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error)
}

type UnreadCountsExecutor interface {
	Execute(ctx context.Context, query UnreadCountsQuery) (*UnreadCountsResult, error)
}
