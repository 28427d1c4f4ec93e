package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTeamMemberCommand struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type CreateTeamMemberResult struct {
	UserID uint
	Email  string
	Role   string
}

// CreateTeamMemberUseCase is the admin path for onboarding staff. Team
// accounts are approved from the start; only itsm_team and admin roles are
// accepted.
type CreateTeamMemberUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateTeamMemberUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateTeamMemberUseCase {
	return &CreateTeamMemberUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateTeamMemberUseCase) Execute(ctx context.Context, cmd CreateTeamMemberCommand) (*CreateTeamMemberResult, error) {
	uc.logger.Infow("executing create team member use case", "email", cmd.Email, "role", cmd.Role)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create team member command", "error", err)
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

	member, err := user.NewTeamMember(email, hash, cmd.Name, uservo.Role(cmd.Role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, member); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save team member", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("team member created", "user_id", member.ID(), "role", member.Role())

	return &CreateTeamMemberResult{
		UserID: member.ID(),
		Email:  member.Email(),
		Role:   member.Role().String(),
	}, nil
}

func (uc *CreateTeamMemberUseCase) validateCommand(cmd CreateTeamMemberCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if !uservo.Role(cmd.Role).IsStaff() {
		return errors.NewValidationError("role must be itsm_team or admin")
	}
	return nil
}
