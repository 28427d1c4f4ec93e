package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/accessrequest"
	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

func approvedRequestWithToken(token string, expiresAt time.Time) *accessrequest.AccessRequest {
	return reconstructRequest(5, "hong@example.com", vo.StatusApproved, &token, &expiresAt)
}

func magicLinkAccount(t *testing.T) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(20, "hong@example.com", "placeholder", "홍길동", nil,
		uservo.RoleCustomer, true, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestRedeemMagicLinkUseCase_Execute_Success(t *testing.T) {
	request := approvedRequestWithToken("goodtoken", time.Now().Add(time.Hour))

	mockRequests := &mockRequestRepository{
		GetByValidTokenFunc: func(ctx context.Context, token string, now time.Time) (*accessrequest.AccessRequest, error) {
			if token == "goodtoken" {
				return request, nil
			}
			return nil, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return magicLinkAccount(t), nil
		},
	}

	updated := false
	mockRequests.UpdateFunc = func(ctx context.Context, r *accessrequest.AccessRequest) error {
		updated = true
		return nil
	}

	useCase := NewRedeemMagicLinkUseCase(mockRequests, mockUsers, &mockCredentialIssuer{}, &mockLogger{}, false)

	result, err := useCase.Execute(context.Background(), RedeemMagicLinkCommand{Token: "goodtoken"})

	require.NoError(t, err)
	assert.Equal(t, "signed-credential", result.Credential)
	assert.Equal(t, uint(20), result.UserID)
	assert.Equal(t, "customer", result.Role)

	// default policy keeps the token redeemable
	assert.False(t, updated)
	assert.True(t, request.Status().IsApproved())
}

func TestRedeemMagicLinkUseCase_Execute_SingleUseConsumesToken(t *testing.T) {
	request := approvedRequestWithToken("goodtoken", time.Now().Add(time.Hour))

	var updated *accessrequest.AccessRequest
	mockRequests := &mockRequestRepository{
		GetByValidTokenFunc: func(ctx context.Context, token string, now time.Time) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			updated = r
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return magicLinkAccount(t), nil
		},
	}

	useCase := NewRedeemMagicLinkUseCase(mockRequests, mockUsers, &mockCredentialIssuer{}, &mockLogger{}, true)

	result, err := useCase.Execute(context.Background(), RedeemMagicLinkCommand{Token: "goodtoken"})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusUsed, updated.Status())
	assert.Nil(t, updated.MagicToken())
}

func TestRedeemMagicLinkUseCase_Execute_InvalidOrExpiredToken(t *testing.T) {
	// the repository only surfaces unexpired tokens; both unknown and
	// expired tokens come back nil
	useCase := NewRedeemMagicLinkUseCase(&mockRequestRepository{}, &mockUserRepository{},
		&mockCredentialIssuer{}, &mockLogger{}, false)

	result, err := useCase.Execute(context.Background(), RedeemMagicLinkCommand{Token: "expired"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestRedeemMagicLinkUseCase_Execute_MissingAccount(t *testing.T) {
	request := approvedRequestWithToken("goodtoken", time.Now().Add(time.Hour))

	mockRequests := &mockRequestRepository{
		GetByValidTokenFunc: func(ctx context.Context, token string, now time.Time) (*accessrequest.AccessRequest, error) {
			return request, nil
		},
	}

	useCase := NewRedeemMagicLinkUseCase(mockRequests, &mockUserRepository{},
		&mockCredentialIssuer{}, &mockLogger{}, false)

	result, err := useCase.Execute(context.Background(), RedeemMagicLinkCommand{Token: "goodtoken"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no account")
}
