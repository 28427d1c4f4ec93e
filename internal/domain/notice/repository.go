package notice

import "context"

// Repository defines notice persistence.
type Repository interface {
	// Create inserts a notice and sets its ID back on the entity
	Create(ctx context.Context, n *Notice) error

	// GetByID retrieves a notice by ID, nil when absent
	GetByID(ctx context.Context, id uint) (*Notice, error)

	// List retrieves all notices, newest first
	List(ctx context.Context) ([]*Notice, error)

	// Update persists changes to an existing notice
	Update(ctx context.Context, n *Notice) error

	// Delete removes a notice
	Delete(ctx context.Context, id uint) error
}
