package user

import (
	"context"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by email (lowercased lookup)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id uint) error

	// ListByRoles retrieves users whose role is in the given set,
	// newest first
	ListByRoles(ctx context.Context, roles []vo.Role) ([]*User, error)

	// GetEmailsByRoles returns the email addresses of users whose role
	// is in the given set
	GetEmailsByRoles(ctx context.Context, roles []vo.Role) ([]string, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
