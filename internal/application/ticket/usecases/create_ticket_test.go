package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

func testCustomer(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "customer@example.com", "hash", "김고객", nil,
		uservo.RoleCustomer, true, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockTicketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(42)
		},
	}

	var savedFiles []*ticket.Attachment
	mockAttachments := &mockAttachmentRepository{
		AddTicketFileFunc: func(ctx context.Context, a *ticket.Attachment) error {
			savedFiles = append(savedFiles, a)
			return nil
		},
	}

	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testCustomer(t, id), nil
		},
		GetEmailsByRolesFunc: func(ctx context.Context, roles []uservo.Role) ([]string, error) {
			return []string{"admin@example.com"}, nil
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

	useCase := NewCreateTicketUseCase(mockTicketRepo, mockAttachments, mockUsers,
		&mockBlobStore{}, notifier, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "프린터 고장",
		Description: "인쇄가 되지 않습니다",
		Urgency:     "높음",
		Product:     "PrintServer",
		Platform:    "windows",
		SWVersion:   "2.1.0",
		OS:          "Windows 11",
		TicketType:  "SR",
		CustomerID:  7,
		Files: []FileUpload{
			{OriginalName: "screenshot.png", Content: strings.NewReader("png-bytes")},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, vo.StatusReceived.String(), result.Status)

	require.NotNil(t, savedTicket)
	assert.Equal(t, vo.UrgencyHigh, savedTicket.Urgency())
	assert.Equal(t, vo.StatusReceived, savedTicket.Status())

	require.Len(t, savedFiles, 1)
	assert.Equal(t, uint(42), savedFiles[0].OwnerID)
	assert.Equal(t, "screenshot.png", savedFiles[0].OriginalName)

	select {
	case call := <-sent:
		assert.Equal(t, notification.KindAdminNewTicket, call.kind)
		assert.Equal(t, []string{"admin@example.com"}, call.recipients)
		assert.Equal(t, "높음", call.data["urgency"])
	case <-time.After(2 * time.Second):
		t.Fatal("admin notification was never attempted")
	}
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	valid := CreateTicketCommand{
		Title:       "프린터 고장",
		Description: "인쇄가 되지 않습니다",
		Urgency:     "보통",
		TicketType:  "SR",
		CustomerID:  7,
	}

	tests := []struct {
		name          string
		mutate        func(cmd *CreateTicketCommand)
		expectedError string
	}{
		{
			name:          "missing title",
			mutate:        func(cmd *CreateTicketCommand) { cmd.Title = "" },
			expectedError: "title is required",
		},
		{
			name:          "missing description",
			mutate:        func(cmd *CreateTicketCommand) { cmd.Description = "" },
			expectedError: "description is required",
		},
		{
			name:          "unknown urgency",
			mutate:        func(cmd *CreateTicketCommand) { cmd.Urgency = "urgent" },
			expectedError: "invalid urgency",
		},
		{
			name:          "unknown ticket type",
			mutate:        func(cmd *CreateTicketCommand) { cmd.TicketType = "XX" },
			expectedError: "invalid ticket type",
		},
		{
			name:          "missing customer",
			mutate:        func(cmd *CreateTicketCommand) { cmd.CustomerID = 0 },
			expectedError: "customer ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockAttachmentRepository{},
				&mockUserRepository{}, &mockBlobStore{}, &mockNotifier{}, &mockLogger{})

			cmd := valid
			tt.mutate(&cmd)

			result, err := useCase.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestCreateTicketUseCase_Execute_NotificationFailureDoesNotFail(t *testing.T) {
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testCustomer(t, id), nil
		},
		GetEmailsByRolesFunc: func(ctx context.Context, roles []uservo.Role) ([]string, error) {
			return []string{"admin@example.com"}, nil
		},
	}

	sent := make(chan struct{}, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			sent <- struct{}{}
			return assert.AnError
		},
	}

	useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockAttachmentRepository{},
		mockUsers, &mockBlobStore{}, notifier, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "프린터 고장",
		Description: "인쇄가 되지 않습니다",
		Urgency:     "보통",
		TicketType:  "SM",
		CustomerID:  7,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}
