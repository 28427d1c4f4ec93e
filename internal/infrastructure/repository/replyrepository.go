package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReplyRepository(gormDB *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reply: %w", err)
	}

	return reply.SetID(model.ID)
}

func (r *ReplyRepository) GetByID(ctx context.Context, id uint) (*ticket.Reply, error) {
	var model models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reply: %w", err)
	}

	return r.mapper.ReplyToDomain(&model)
}

func (r *ReplyRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	var replyModels []models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&replyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	replies := make([]*ticket.Reply, len(replyModels))
	for i, model := range replyModels {
		reply, err := r.mapper.ReplyToDomain(&model)
		if err != nil {
			return nil, err
		}
		replies[i] = reply
	}

	return replies, nil
}

func (r *ReplyRepository) GetLatestByTicket(ctx context.Context, ticketID uint) (*ticket.LatestReply, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row struct {
		ID        uint
		TicketID  uint
		AuthorID  uint
		Message   string
		CreatedAt int64
		UpdatedAt int64
		Role      string
	}
	err := tx.
		Table("ticket_replies r").
		Select("r.id, r.ticket_id, r.author_id, r.message, r.created_at, r.updated_at, u.role").
		Joins("JOIN users u ON u.id = r.author_id").
		Where("r.ticket_id = ?", ticketID).
		Order("r.created_at DESC, r.id DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find latest reply: %w", err)
	}
	if row.ID == 0 {
		return nil, nil
	}

	reply, err := r.mapper.ReplyToDomain(&models.ReplyModel{
		ID:        row.ID,
		TicketID:  row.TicketID,
		AuthorID:  row.AuthorID,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	return &ticket.LatestReply{Reply: reply, AuthorRole: row.Role}, nil
}

func (r *ReplyRepository) Update(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReplyModel{}).
		Where("id = ?", model.ID).
		Select("message", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update reply: %w", result.Error)
	}

	return nil
}

// Delete removes the reply together with its attachment rows. The stored
// blobs themselves are the caller's problem.
func (r *ReplyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("reply_id = ?", id).Delete(&models.ReplyFileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete reply files: %w", err)
		}

		result := inner.Delete(&models.ReplyModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete reply: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("reply not found")
		}
		return nil
	})
}
