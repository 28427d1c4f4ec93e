package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type AccessRequestRepository struct {
	db     *gorm.DB
	mapper mappers.AccessRequestMapper
}

func NewAccessRequestRepository(gormDB *gorm.DB) *AccessRequestRepository {
	return &AccessRequestRepository{
		db:     gormDB,
		mapper: mappers.NewAccessRequestMapper(),
	}
}

func (r *AccessRequestRepository) Create(ctx context.Context, req *accessrequest.AccessRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create access request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *AccessRequestRepository) GetByID(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find access request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByEmail returns the newest request for the email, nil when none exists.
func (r *AccessRequestRepository) GetByEmail(ctx context.Context, email string) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("email = ?", strings.ToLower(email)).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find access request by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccessRequestRepository) GetByValidToken(ctx context.Context, token string, now time.Time) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("magic_token = ? AND magic_token_expires_at > ?", token, now.UnixMilli()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find access request by token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccessRequestRepository) Update(ctx context.Context, req *accessrequest.AccessRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccessRequestModel{}).
		Where("id = ?", model.ID).
		Select("name", "company_name", "status", "magic_token", "magic_token_expires_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update access request: %w", result.Error)
	}

	return nil
}

func (r *AccessRequestRepository) List(ctx context.Context, status *vo.Status) ([]*accessrequest.AccessRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.AccessRequestModel{})
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var requestModels []models.AccessRequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}

	requests := make([]*accessrequest.AccessRequest, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}
