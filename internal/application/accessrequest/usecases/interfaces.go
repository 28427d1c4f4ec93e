package usecases

import (
	"context"

	uservo "helpdesk/internal/domain/user/valueobjects"
)

// TokenGenerator mints an opaque magic-link token. The auth package's
// 32-byte hex generator satisfies it.
type TokenGenerator func() (string, error)

// CredentialIssuer signs a session credential for an authenticated user.
type CredentialIssuer interface {
	Generate(userID uint, email, name string, role uservo.Role) (string, error)
}

type RequestAccessExecutor interface {
	Execute(ctx context.Context, cmd RequestAccessCommand) (*RequestAccessResult, error)
}

type ApproveRequestExecutor interface {
	Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error)
}

type RejectRequestExecutor interface {
	Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error)
}

type RequestLoginLinkExecutor interface {
	Execute(ctx context.Context, cmd RequestLoginLinkCommand) (*RequestLoginLinkResult, error)
}

type RedeemMagicLinkExecutor interface {
	Execute(ctx context.Context, cmd RedeemMagicLinkCommand) (*RedeemMagicLinkResult, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}
