package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/domain/notification"
)

func TestRequestLoginLinkUseCase_Execute_OverwritesToken(t *testing.T) {
	oldToken := "longlivedtoken"
	oldExpiry := time.Now().AddDate(9, 0, 0)
	request := reconstructRequest(5, "hong@example.com", vo.StatusApproved, &oldToken, &oldExpiry)

	var updated *accessrequest.AccessRequest
	mockRequests := &mockRequestRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			updated = r
			return nil
		},
	}

	sent := make(chan notification.TemplateData, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			require.Equal(t, notification.KindMagicLink, kind)
			sent <- data
			return nil
		},
	}

	useCase := NewRequestLoginLinkUseCase(mockRequests, notifier,
		staticToken("shortlivedtoken"), &mockLogger{}, 10, "https://helpdesk.example.com")

	result, err := useCase.Execute(context.Background(), RequestLoginLinkCommand{Email: "Hong@Example.com"})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), result.TokenExpiresAt, 5*time.Second)

	require.NotNil(t, updated)
	require.NotNil(t, updated.MagicToken())
	assert.Equal(t, "shortlivedtoken", *updated.MagicToken())

	select {
	case data := <-sent:
		loginURL, _ := data["loginURL"].(string)
		assert.Contains(t, loginURL, "shortlivedtoken")
	case <-time.After(2 * time.Second):
		t.Fatal("login link was never sent")
	}
}

func TestRequestLoginLinkUseCase_Execute_RequiresApproval(t *testing.T) {
	tests := []struct {
		name          string
		request       *accessrequest.AccessRequest
		expectedError string
	}{
		{
			name:          "no request",
			request:       nil,
			expectedError: "no access request",
		},
		{
			name:          "still pending",
			request:       reconstructRequest(5, "hong@example.com", vo.StatusPending, nil, nil),
			expectedError: "not approved",
		},
		{
			name:          "rejected",
			request:       reconstructRequest(5, "hong@example.com", vo.StatusRejected, nil, nil),
			expectedError: "not approved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRequests := &mockRequestRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*accessrequest.AccessRequest, error) {
					return tt.request, nil
				},
			}

			useCase := NewRequestLoginLinkUseCase(mockRequests, &mockNotifier{},
				staticToken("tok"), &mockLogger{}, 10, "https://helpdesk.example.com")

			result, err := useCase.Execute(context.Background(), RequestLoginLinkCommand{Email: "hong@example.com"})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestRejectRequestUseCase_Execute(t *testing.T) {
	request := reconstructRequest(5, "hong@example.com", vo.StatusPending, nil, nil)

	mockRequests := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
	}

	sent := make(chan notification.Kind, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			require.Equal(t, []string{"hong@example.com"}, recipients)
			sent <- kind
			return nil
		},
	}

	useCase := NewRejectRequestUseCase(mockRequests, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RejectRequestCommand{RequestID: 5})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusRejected.String(), result.Status)

	select {
	case kind := <-sent:
		assert.Equal(t, notification.KindAccessRequestRejected, kind)
	case <-time.After(2 * time.Second):
		t.Fatal("rejection notification was never attempted")
	}

	// rejecting again is a conflict
	_, err = useCase.Execute(context.Background(), RejectRequestCommand{RequestID: 5})
	require.Error(t, err)
}
