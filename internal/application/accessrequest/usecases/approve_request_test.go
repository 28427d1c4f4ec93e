package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

func TestApproveRequestUseCase_Execute_CreatesUserAndSendsLink(t *testing.T) {
	request := reconstructRequest(5, "hong@example.com", vo.StatusPending, nil, nil)

	var updated *accessrequest.AccessRequest
	mockRequests := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			updated = r
			return nil
		},
	}

	var createdUser *user.User
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, nil // no account yet
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			createdUser = u
			return u.SetID(20)
		},
	}

	type sentCall struct {
		kind       notification.Kind
		recipients []string
		data       notification.TemplateData
	}
	sent := make(chan sentCall, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			sent <- sentCall{kind, recipients, data}
			return nil
		},
	}

	useCase := NewApproveRequestUseCase(mockRequests, mockUsers, notifier,
		staticToken("feedfacefeedface"), &mockLogger{}, 10, "https://helpdesk.example.com")

	result, err := useCase.Execute(context.Background(), ApproveRequestCommand{RequestID: 5})

	require.NoError(t, err)
	assert.Equal(t, "hong@example.com", result.Email)

	// multi-year validity window
	assert.True(t, result.TokenExpiresAt.After(time.Now().AddDate(9, 0, 0)))

	// auto-approved customer account
	require.NotNil(t, createdUser)
	assert.Equal(t, uservo.RoleCustomer, createdUser.Role())
	assert.True(t, createdUser.IsApproved())
	assert.Equal(t, "hong@example.com", createdUser.Email())

	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsApproved())
	require.NotNil(t, updated.MagicToken())
	assert.Equal(t, "feedfacefeedface", *updated.MagicToken())

	select {
	case call := <-sent:
		assert.Equal(t, notification.KindMagicLink, call.kind)
		assert.Equal(t, []string{"hong@example.com"}, call.recipients)
		loginURL, _ := call.data["loginURL"].(string)
		assert.True(t, strings.HasPrefix(loginURL, "https://helpdesk.example.com/magic-login?token="))
		assert.Contains(t, loginURL, "feedfacefeedface")
	case <-time.After(2 * time.Second):
		t.Fatal("magic link was never sent")
	}
}

func TestApproveRequestUseCase_Execute_ReapprovalReissues(t *testing.T) {
	oldToken := "oldtoken"
	oldExpiry := time.Now().Add(-time.Minute)
	request := reconstructRequest(5, "hong@example.com", vo.StatusApproved, &oldToken, &oldExpiry)

	mockRequests := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
	}

	userCreated := false
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return user.ReconstructUser(20, email, "hash", "홍길동", nil,
				uservo.RoleCustomer, true, time.Now(), time.Now())
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			userCreated = true
			return nil
		},
	}

	useCase := NewApproveRequestUseCase(mockRequests, mockUsers, &mockNotifier{},
		staticToken("newtoken"), &mockLogger{}, 10, "https://helpdesk.example.com")

	result, err := useCase.Execute(context.Background(), ApproveRequestCommand{RequestID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, userCreated, "existing account must be left alone")
	require.NotNil(t, request.MagicToken())
	assert.Equal(t, "newtoken", *request.MagicToken())
}

func TestApproveRequestUseCase_Execute_RejectedRequestConflicts(t *testing.T) {
	request := reconstructRequest(5, "hong@example.com", vo.StatusRejected, nil, nil)

	mockRequests := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
	}

	useCase := NewApproveRequestUseCase(mockRequests, &mockUserRepository{}, &mockNotifier{},
		staticToken("tok"), &mockLogger{}, 10, "https://helpdesk.example.com")

	result, err := useCase.Execute(context.Background(), ApproveRequestCommand{RequestID: 5})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "cannot be approved")
}

func TestApproveRequestUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewApproveRequestUseCase(&mockRequestRepository{}, &mockUserRepository{}, &mockNotifier{},
		staticToken("tok"), &mockLogger{}, 10, "https://helpdesk.example.com")

	result, err := useCase.Execute(context.Background(), ApproveRequestCommand{RequestID: 99})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "not found")
}
