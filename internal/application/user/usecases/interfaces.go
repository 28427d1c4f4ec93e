package usecases

import (
	"context"

	uservo "helpdesk/internal/domain/user/valueobjects"
)

// PasswordHasher hashes and checks login passwords. The bcrypt
// implementation in the auth package satisfies it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// CredentialIssuer signs a session credential for an authenticated user.
type CredentialIssuer interface {
	Generate(userID uint, email, name string, role uservo.Role) (string, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type CreateTeamMemberExecutor interface {
	Execute(ctx context.Context, cmd CreateTeamMemberCommand) (*CreateTeamMemberResult, error)
}

type SetApprovalExecutor interface {
	Execute(ctx context.Context, cmd SetApprovalCommand) (*SetApprovalResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}

type DeleteAccountExecutor interface {
	Execute(ctx context.Context, cmd DeleteAccountCommand) (*DeleteAccountResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}
