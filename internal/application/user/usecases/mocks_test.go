package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListByRolesFunc      func(ctx context.Context, roles []uservo.Role) ([]*user.User, error)
	GetEmailsByRolesFunc func(ctx context.Context, roles []uservo.Role) ([]string, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
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

// mockHasher is a reversible stand-in: "hashed:" prefix instead of bcrypt.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockCredentialIssuer struct {
	GenerateFunc func(userID uint, email, name string, role uservo.Role) (string, error)
}

func (m *mockCredentialIssuer) Generate(userID uint, email, name string, role uservo.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, name, role)
	}
	return "signed-credential", nil
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

func reconstructAccount(id uint, email string, role uservo.Role, approved bool) *user.User {
	u, err := user.ReconstructUser(id, email, "hashed:secret-pw", "김고객", nil,
		role, approved, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return u
}
