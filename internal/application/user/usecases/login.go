package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Credential string
	UserID     uint
	Email      string
	Name       string
	Role       string
}

// LoginUseCase is the password login path. Wrong email and wrong password
// produce the same error so the response leaks nothing about which one it
// was. Unapproved accounts cannot log in.
type LoginUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	credentials CredentialIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	credentials CredentialIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		credentials: credentials,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	if account == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Infow("password verification failed", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.IsApproved() {
		return nil, errors.NewForbiddenError("account is pending approval")
	}

	credential, err := uc.credentials.Generate(account.ID(), account.Email(), account.Name(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue credential", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue credential")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &LoginResult{
		Credential: credential,
		UserID:     account.ID(),
		Email:      account.Email(),
		Name:       account.Name(),
		Role:       account.Role().String(),
	}, nil
}
