package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notice"
	"helpdesk/internal/shared/logger"
)

type mockNoticeRepository struct {
	CreateFunc  func(ctx context.Context, n *notice.Notice) error
	GetByIDFunc func(ctx context.Context, id uint) (*notice.Notice, error)
	ListFunc    func(ctx context.Context) ([]*notice.Notice, error)
	UpdateFunc  func(ctx context.Context, n *notice.Notice) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockNoticeRepository) Create(ctx context.Context, n *notice.Notice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNoticeRepository) GetByID(ctx context.Context, id uint) (*notice.Notice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNoticeRepository) List(ctx context.Context) ([]*notice.Notice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockNoticeRepository) Update(ctx context.Context, n *notice.Notice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNoticeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func reconstructNotice(id uint, title, content string) *notice.Notice {
	n, err := notice.ReconstructNotice(id, title, content, 2,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return n
}
