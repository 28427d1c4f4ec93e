package accessrequest

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/accessrequest/valueobjects"
)

// Repository defines access request persistence.
type Repository interface {
	// Create inserts a new request and sets its ID back on the entity
	Create(ctx context.Context, r *AccessRequest) error

	// GetByID retrieves a request by ID, nil when absent
	GetByID(ctx context.Context, id uint) (*AccessRequest, error)

	// GetByEmail retrieves the request for an email, nil when absent
	GetByEmail(ctx context.Context, email string) (*AccessRequest, error)

	// GetByValidToken retrieves the request holding the token with
	// magic_token_expires_at > now, nil when no such row exists
	GetByValidToken(ctx context.Context, token string, now time.Time) (*AccessRequest, error)

	// Update persists changes to an existing request
	Update(ctx context.Context, r *AccessRequest) error

	// List retrieves requests newest first, optionally filtered by status
	List(ctx context.Context, status *vo.Status) ([]*AccessRequest, error)
}
