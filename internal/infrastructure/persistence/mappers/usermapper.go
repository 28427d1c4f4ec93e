package mappers

import (
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		CompanyName:  u.CompanyName(),
		Role:         u.Role().String(),
		IsApproved:   u.IsApproved(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.CompanyName,
		role,
		model.IsApproved,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
