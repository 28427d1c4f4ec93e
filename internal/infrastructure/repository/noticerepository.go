package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type NoticeRepository struct {
	db     *gorm.DB
	mapper mappers.NoticeMapper
}

func NewNoticeRepository(gormDB *gorm.DB) *NoticeRepository {
	return &NoticeRepository{
		db:     gormDB,
		mapper: mappers.NewNoticeMapper(),
	}
}

func (r *NoticeRepository) Create(ctx context.Context, n *notice.Notice) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NoticeRepository) GetByID(ctx context.Context, id uint) (*notice.Notice, error) {
	var model models.NoticeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find notice: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NoticeRepository) List(ctx context.Context) ([]*notice.Notice, error) {
	var noticeModels []models.NoticeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Find(&noticeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	notices := make([]*notice.Notice, len(noticeModels))
	for i, model := range noticeModels {
		n, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		notices[i] = n
	}

	return notices, nil
}

func (r *NoticeRepository) Update(ctx context.Context, n *notice.Notice) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NoticeModel{}).
		Where("id = ?", model.ID).
		Select("title", "content", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update notice: %w", result.Error)
	}

	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NoticeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notice not found")
	}
	return nil
}
