package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UserGroup selects which slice of the user base to list.
type UserGroup string

const (
	GroupCustomers   UserGroup = "customers"
	GroupTeamMembers UserGroup = "team_members"
	// GroupAssignees is the pool offered in the ticket assignment picker;
	// same roles as the team, listed separately for the admin UI
	GroupAssignees UserGroup = "assignees"
)

type ListUsersQuery struct {
	Group UserGroup
}

type UserItem struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CompanyName *string   `json:"company_name"`
	Role        string    `json:"role"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListUsersResult struct {
	Users []UserItem `json:"users"`
	Total int        `json:"total"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	var roles []uservo.Role
	switch query.Group {
	case GroupCustomers:
		roles = []uservo.Role{uservo.RoleCustomer}
	case GroupTeamMembers, GroupAssignees:
		roles = []uservo.Role{uservo.RoleAdmin, uservo.RoleITSMTeam}
	default:
		return nil, errors.NewValidationError("unknown user group")
	}

	users, err := uc.userRepo.ListByRoles(ctx, roles)
	if err != nil {
		uc.logger.Errorw("failed to list users", "group", query.Group, "error", err)
		return nil, err
	}

	result := &ListUsersResult{
		Users: make([]UserItem, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		result.Users = append(result.Users, UserItem{
			ID:          u.ID(),
			Email:       u.Email(),
			Name:        u.Name(),
			CompanyName: u.CompanyName(),
			Role:        u.Role().String(),
			IsApproved:  u.IsApproved(),
			CreatedAt:   u.CreatedAt(),
		})
	}
	return result, nil
}
