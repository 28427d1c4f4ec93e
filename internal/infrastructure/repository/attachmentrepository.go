package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(gormDB *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: gormDB}
}

func (r *AttachmentRepository) AddTicketFile(ctx context.Context, a *ticket.Attachment) error {
	model := &models.TicketFileModel{
		TicketID:     a.OwnerID,
		URL:          a.URL,
		OriginalName: a.OriginalName,
		PublicID:     a.PublicID,
		CreatedAt:    a.CreatedAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to add ticket file: %w", err)
	}

	a.ID = model.ID
	return nil
}

func (r *AttachmentRepository) AddReplyFile(ctx context.Context, a *ticket.Attachment) error {
	model := &models.ReplyFileModel{
		ReplyID:      a.OwnerID,
		URL:          a.URL,
		OriginalName: a.OriginalName,
		PublicID:     a.PublicID,
		CreatedAt:    a.CreatedAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to add reply file: %w", err)
	}

	a.ID = model.ID
	return nil
}

func (r *AttachmentRepository) ListTicketFiles(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var fileModels []models.TicketFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&fileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket files: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(fileModels))
	for i, model := range fileModels {
		attachments[i] = ticketFileToAttachment(&model)
	}

	return attachments, nil
}

func (r *AttachmentRepository) ListReplyFiles(ctx context.Context, replyIDs []uint) (map[uint][]*ticket.Attachment, error) {
	result := make(map[uint][]*ticket.Attachment)
	if len(replyIDs) == 0 {
		return result, nil
	}

	var fileModels []models.ReplyFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("reply_id IN ?", replyIDs).
		Order("created_at ASC").
		Find(&fileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reply files: %w", err)
	}

	for i := range fileModels {
		model := &fileModels[i]
		result[model.ReplyID] = append(result[model.ReplyID], replyFileToAttachment(model))
	}

	return result, nil
}

func (r *AttachmentRepository) GetTicketFile(ctx context.Context, fileID uint) (*ticket.Attachment, error) {
	var model models.TicketFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket file: %w", err)
	}

	return ticketFileToAttachment(&model), nil
}

func (r *AttachmentRepository) GetReplyFile(ctx context.Context, fileID uint) (*ticket.Attachment, error) {
	var model models.ReplyFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reply file: %w", err)
	}

	return replyFileToAttachment(&model), nil
}

func (r *AttachmentRepository) DeleteTicketFile(ctx context.Context, fileID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketFileModel{}, fileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket file not found")
	}
	return nil
}

func (r *AttachmentRepository) DeleteReplyFile(ctx context.Context, fileID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReplyFileModel{}, fileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reply file not found")
	}
	return nil
}

func ticketFileToAttachment(m *models.TicketFileModel) *ticket.Attachment {
	return &ticket.Attachment{
		ID:           m.ID,
		OwnerID:      m.TicketID,
		URL:          m.URL,
		OriginalName: m.OriginalName,
		PublicID:     m.PublicID,
		CreatedAt:    time.Unix(0, m.CreatedAt*int64(time.Millisecond)),
	}
}

func replyFileToAttachment(m *models.ReplyFileModel) *ticket.Attachment {
	return &ticket.Attachment{
		ID:           m.ID,
		OwnerID:      m.ReplyID,
		URL:          m.URL,
		OriginalName: m.OriginalName,
		PublicID:     m.PublicID,
		CreatedAt:    time.Unix(0, m.CreatedAt*int64(time.Millisecond)),
	}
}
