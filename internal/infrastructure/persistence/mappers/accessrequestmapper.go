package mappers

import (
	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// AccessRequestMapper handles the conversion between AccessRequest domain entities and persistence models.
type AccessRequestMapper interface {
	// ToModel converts an access request domain entity to a persistence model.
	ToModel(r *accessrequest.AccessRequest) *models.AccessRequestModel

	// ToDomain converts an access request persistence model to a domain entity.
	ToDomain(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error)
}

// AccessRequestMapperImpl is the concrete implementation of AccessRequestMapper.
type AccessRequestMapperImpl struct{}

// NewAccessRequestMapper creates a new AccessRequestMapper.
func NewAccessRequestMapper() AccessRequestMapper {
	return &AccessRequestMapperImpl{}
}

func (m *AccessRequestMapperImpl) ToModel(r *accessrequest.AccessRequest) *models.AccessRequestModel {
	return &models.AccessRequestModel{
		ID:                  r.ID(),
		Email:               r.Email(),
		Name:                r.Name(),
		CompanyName:         r.CompanyName(),
		Status:              r.Status().String(),
		MagicToken:          r.MagicToken(),
		MagicTokenExpiresAt: timeToMillisPtr(r.MagicTokenExpiresAt()),
		CreatedAt:           r.CreatedAt().UnixMilli(),
		UpdatedAt:           r.UpdatedAt().UnixMilli(),
	}
}

func (m *AccessRequestMapperImpl) ToDomain(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return accessrequest.ReconstructAccessRequest(
		model.ID,
		model.Email,
		model.Name,
		model.CompanyName,
		status,
		model.MagicToken,
		millisToTimePtr(model.MagicTokenExpiresAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
