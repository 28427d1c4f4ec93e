package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email       string
	Password    string
	Name        string
	CompanyName *string
}

type RegisterResult struct {
	UserID     uint
	Email      string
	IsApproved bool
}

// RegisterUseCase self-registers a customer. The account stays unapproved
// until an admin turns it on; login is refused before that.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "email", email, "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	newUser, err := user.NewUser(email, hash, cmd.Name, cmd.CompanyName, uservo.RoleCustomer)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return &RegisterResult{
		UserID:     newUser.ID(),
		Email:      newUser.Email(),
		IsApproved: newUser.IsApproved(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	return nil
}
