package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notice"
)

func TestCreateNoticeUseCase_Execute_Success(t *testing.T) {
	var created *notice.Notice
	mockRepo := &mockNoticeRepository{
		CreateFunc: func(ctx context.Context, n *notice.Notice) error {
			created = n
			return n.SetID(5)
		},
	}

	useCase := NewCreateNoticeUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateNoticeCommand{
		Title:    "정기 점검 안내",
		Content:  "## 점검 일정\n\n금요일 22시부터 2시간",
		AuthorID: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.NoticeID)
	require.NotNil(t, created)
	assert.Equal(t, uint(2), created.AuthorID())
}

func TestCreateNoticeUseCase_Execute_Validation(t *testing.T) {
	useCase := NewCreateNoticeUseCase(&mockNoticeRepository{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateNoticeCommand
	}{
		{name: "missing title", cmd: CreateNoticeCommand{Content: "body", AuthorID: 2}},
		{name: "missing content", cmd: CreateNoticeCommand{Title: "t", AuthorID: 2}},
		{name: "missing author", cmd: CreateNoticeCommand{Title: "t", Content: "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestUpdateNoticeUseCase_Execute_Success(t *testing.T) {
	existing := reconstructNotice(5, "old title", "old body")
	var updated *notice.Notice
	mockRepo := &mockNoticeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notice.Notice, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, n *notice.Notice) error {
			updated = n
			return nil
		},
	}

	useCase := NewUpdateNoticeUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateNoticeCommand{
		NoticeID: 5,
		Title:    "new title",
		Content:  "new body",
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", result.Title)
	require.NotNil(t, updated)
	assert.Equal(t, "new body", updated.Content())
}

func TestUpdateNoticeUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewUpdateNoticeUseCase(&mockNoticeRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateNoticeCommand{
		NoticeID: 99,
		Title:    "t",
		Content:  "c",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteNoticeUseCase_Execute(t *testing.T) {
	var deletedID uint
	mockRepo := &mockNoticeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notice.Notice, error) {
			if id == 5 {
				return reconstructNotice(5, "title", "body"), nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	useCase := NewDeleteNoticeUseCase(mockRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), DeleteNoticeCommand{NoticeID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(5), deletedID)

	result, err := useCase.Execute(context.Background(), DeleteNoticeCommand{NoticeID: 99})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestGetNoticeUseCase_Execute_RendersSanitizedHTML(t *testing.T) {
	mockRepo := &mockNoticeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notice.Notice, error) {
			return reconstructNotice(5, "정기 점검 안내", "**important**"), nil
		},
	}

	useCase := NewGetNoticeUseCase(mockRepo, &mockRenderer{
		ToHTMLSanitizedFunc: func(markdown string) (string, error) {
			assert.Equal(t, "**important**", markdown)
			return "<p><strong>important</strong></p>", nil
		},
	}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetNoticeQuery{NoticeID: 5})

	require.NoError(t, err)
	assert.Equal(t, "<p><strong>important</strong></p>", result.ContentHTML)
	assert.Equal(t, "**important**", result.ContentRaw)
	assert.Equal(t, "정기 점검 안내", result.Title)
}

func TestListNoticesUseCase_Execute(t *testing.T) {
	mockRepo := &mockNoticeRepository{
		ListFunc: func(ctx context.Context) ([]*notice.Notice, error) {
			return []*notice.Notice{
				reconstructNotice(2, "second", "b"),
				reconstructNotice(1, "first", "a"),
			}, nil
		},
	}

	useCase := NewListNoticesUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "second", result.Notices[0].Title)
}
