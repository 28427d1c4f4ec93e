package usecases

import (
	"context"
	"io"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc            func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	ListByCustomerFunc     func(ctx context.Context, customerID uint, filter ticket.ListFilter) ([]*ticket.ListItem, error)
	ListAllFunc            func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error)
	ListIDsByStatusFunc    func(ctx context.Context, status vo.Status) ([]uint, error)
	GetCloseRecipientsFunc func(ctx context.Context, ticketID uint) (*ticket.CloseRecipients, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) ListByCustomer(ctx context.Context, customerID uint, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListIDsByStatus(ctx context.Context, status vo.Status) ([]uint, error) {
	if m.ListIDsByStatusFunc != nil {
		return m.ListIDsByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetCloseRecipients(ctx context.Context, ticketID uint) (*ticket.CloseRecipients, error) {
	if m.GetCloseRecipientsFunc != nil {
		return m.GetCloseRecipientsFunc(ctx, ticketID)
	}
	return &ticket.CloseRecipients{}, nil
}

type mockReplyRepository struct {
	CreateFunc            func(ctx context.Context, r *ticket.Reply) error
	GetByIDFunc           func(ctx context.Context, id uint) (*ticket.Reply, error)
	ListByTicketFunc      func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
	GetLatestByTicketFunc func(ctx context.Context, ticketID uint) (*ticket.LatestReply, error)
	UpdateFunc            func(ctx context.Context, r *ticket.Reply) error
	DeleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockReplyRepository) Create(ctx context.Context, r *ticket.Reply) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockReplyRepository) GetByID(ctx context.Context, id uint) (*ticket.Reply, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReplyRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReplyRepository) GetLatestByTicket(ctx context.Context, ticketID uint) (*ticket.LatestReply, error) {
	if m.GetLatestByTicketFunc != nil {
		return m.GetLatestByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReplyRepository) Update(ctx context.Context, r *ticket.Reply) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReplyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAttachmentRepository struct {
	AddTicketFileFunc    func(ctx context.Context, a *ticket.Attachment) error
	AddReplyFileFunc     func(ctx context.Context, a *ticket.Attachment) error
	ListTicketFilesFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	ListReplyFilesFunc   func(ctx context.Context, replyIDs []uint) (map[uint][]*ticket.Attachment, error)
	GetTicketFileFunc    func(ctx context.Context, fileID uint) (*ticket.Attachment, error)
	GetReplyFileFunc     func(ctx context.Context, fileID uint) (*ticket.Attachment, error)
	DeleteTicketFileFunc func(ctx context.Context, fileID uint) error
	DeleteReplyFileFunc  func(ctx context.Context, fileID uint) error
}

func (m *mockAttachmentRepository) AddTicketFile(ctx context.Context, a *ticket.Attachment) error {
	if m.AddTicketFileFunc != nil {
		return m.AddTicketFileFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) AddReplyFile(ctx context.Context, a *ticket.Attachment) error {
	if m.AddReplyFileFunc != nil {
		return m.AddReplyFileFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListTicketFiles(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListTicketFilesFunc != nil {
		return m.ListTicketFilesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListReplyFiles(ctx context.Context, replyIDs []uint) (map[uint][]*ticket.Attachment, error) {
	if m.ListReplyFilesFunc != nil {
		return m.ListReplyFilesFunc(ctx, replyIDs)
	}
	return map[uint][]*ticket.Attachment{}, nil
}

func (m *mockAttachmentRepository) GetTicketFile(ctx context.Context, fileID uint) (*ticket.Attachment, error) {
	if m.GetTicketFileFunc != nil {
		return m.GetTicketFileFunc(ctx, fileID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetReplyFile(ctx context.Context, fileID uint) (*ticket.Attachment, error) {
	if m.GetReplyFileFunc != nil {
		return m.GetReplyFileFunc(ctx, fileID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteTicketFile(ctx context.Context, fileID uint) error {
	if m.DeleteTicketFileFunc != nil {
		return m.DeleteTicketFileFunc(ctx, fileID)
	}
	return nil
}

func (m *mockAttachmentRepository) DeleteReplyFile(ctx context.Context, fileID uint) error {
	if m.DeleteReplyFileFunc != nil {
		return m.DeleteReplyFileFunc(ctx, fileID)
	}
	return nil
}

type mockReadRepository struct {
	MarkReadFunc             func(ctx context.Context, ticketID, userID uint) error
	CustomerUnreadCountsFunc func(ctx context.Context, customerID uint) ([]*ticket.UnreadCount, error)
	StaffUnreadCountsFunc    func(ctx context.Context, staffID uint) ([]*ticket.UnreadCount, error)
}

func (m *mockReadRepository) MarkRead(ctx context.Context, ticketID, userID uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, ticketID, userID)
	}
	return nil
}

func (m *mockReadRepository) CustomerUnreadCounts(ctx context.Context, customerID uint) ([]*ticket.UnreadCount, error) {
	if m.CustomerUnreadCountsFunc != nil {
		return m.CustomerUnreadCountsFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockReadRepository) StaffUnreadCounts(ctx context.Context, staffID uint) ([]*ticket.UnreadCount, error) {
	if m.StaffUnreadCountsFunc != nil {
		return m.StaffUnreadCountsFunc(ctx, staffID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc          func(ctx context.Context, u *user.User) error
	DeleteFunc          func(ctx context.Context, id uint) error
	ListByRolesFunc     func(ctx context.Context, roles []uservo.Role) ([]*user.User, error)
	GetEmailsByRolesFunc func(ctx context.Context, roles []uservo.Role) ([]string, error)
	ExistsByEmailFunc   func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListByRoles(ctx context.Context, roles []uservo.Role) ([]*user.User, error) {
	if m.ListByRolesFunc != nil {
		return m.ListByRolesFunc(ctx, roles)
	}
	return nil, nil
}

func (m *mockUserRepository) GetEmailsByRoles(ctx context.Context, roles []uservo.Role) ([]string, error) {
	if m.GetEmailsByRolesFunc != nil {
		return m.GetEmailsByRolesFunc(ctx, roles)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockBlobStore struct {
	SaveFunc   func(ctx context.Context, originalName string, content io.Reader) (*blob.StoredBlob, error)
	DeleteFunc func(ctx context.Context, publicID string) error
}

func (m *mockBlobStore) Save(ctx context.Context, originalName string, content io.Reader) (*blob.StoredBlob, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, originalName, content)
	}
	return &blob.StoredBlob{URL: "/uploads/" + originalName, PublicID: originalName}, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, publicID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, publicID)
	}
	return nil
}

type mockNotifier struct {
	SendFunc func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error
}

func (m *mockNotifier) Send(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, kind, recipients, data)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) Fatal(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})    {}

// reconstructTicket builds a persisted-looking ticket for tests.
func reconstructTicket(id uint, status vo.Status, customerID uint, assigneeID *uint) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id,
		"Printer offline",
		"The office printer stopped responding",
		status,
		vo.UrgencyNormal,
		"PrintServer",
		"windows",
		"1.0.0",
		"Windows 11",
		vo.TypeServiceRequest,
		customerID,
		assigneeID,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return t
}
