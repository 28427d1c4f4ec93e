package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

func TestLoginUseCase_Execute_Success(t *testing.T) {
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return reconstructAccount(7, email, uservo.RoleCustomer, true), nil
		},
	}

	useCase := NewLoginUseCase(mockUsers, &mockHasher{}, &mockCredentialIssuer{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "customer@example.com",
		Password: "secret-pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-credential", result.Credential)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "customer", result.Role)
}

func TestLoginUseCase_Execute_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	knownUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == "customer@example.com" {
				return reconstructAccount(7, email, uservo.RoleCustomer, true), nil
			}
			return nil, nil
		},
	}

	useCase := NewLoginUseCase(knownUsers, &mockHasher{}, &mockCredentialIssuer{}, &mockLogger{})

	_, errUnknown := useCase.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "secret-pw",
	})
	_, errWrongPw := useCase.Execute(context.Background(), LoginCommand{
		Email:    "customer@example.com",
		Password: "wrong-pw",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLoginUseCase_Execute_UnapprovedAccountRefused(t *testing.T) {
	mockUsers := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return reconstructAccount(7, email, uservo.RoleCustomer, false), nil
		},
	}

	useCase := NewLoginUseCase(mockUsers, &mockHasher{}, &mockCredentialIssuer{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "customer@example.com",
		Password: "secret-pw",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "pending approval")
}
