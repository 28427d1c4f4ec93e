package mappers

import (
	"helpdesk/internal/domain/notice"
	"helpdesk/internal/infrastructure/persistence/models"
)

// NoticeMapper handles the conversion between Notice domain entities and persistence models.
type NoticeMapper interface {
	ToModel(n *notice.Notice) *models.NoticeModel
	ToDomain(model *models.NoticeModel) (*notice.Notice, error)
}

// NoticeMapperImpl is the concrete implementation of NoticeMapper.
type NoticeMapperImpl struct{}

// NewNoticeMapper creates a new NoticeMapper.
func NewNoticeMapper() NoticeMapper {
	return &NoticeMapperImpl{}
}

func (m *NoticeMapperImpl) ToModel(n *notice.Notice) *models.NoticeModel {
	return &models.NoticeModel{
		ID:        n.ID(),
		Title:     n.Title(),
		Content:   n.Content(),
		AuthorID:  n.AuthorID(),
		CreatedAt: n.CreatedAt().UnixMilli(),
		UpdatedAt: n.UpdatedAt().UnixMilli(),
	}
}

func (m *NoticeMapperImpl) ToDomain(model *models.NoticeModel) (*notice.Notice, error) {
	return notice.ReconstructNotice(
		model.ID,
		model.Title,
		model.Content,
		model.AuthorID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
