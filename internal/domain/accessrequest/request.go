package accessrequest

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/accessrequest/valueobjects"
	"helpdesk/internal/domain/user"
)

// AccessRequest is a customer's application for magic-link access. It is
// linked to a User by email only, never by foreign key: the request may
// precede or outlive the account it results in.
type AccessRequest struct {
	id                  uint
	email               string
	name                string
	companyName         *string
	status              vo.Status
	magicToken          *string
	magicTokenExpiresAt *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewAccessRequest creates a pending request. The uniqueness invariant (at
// most one live request per email) is enforced by the use case before this
// is persisted.
func NewAccessRequest(email, name string, companyName *string) (*AccessRequest, error) {
	normalized, err := user.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &AccessRequest{
		email:       normalized,
		name:        name,
		companyName: companyName,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructAccessRequest rebuilds a request from persistence.
func ReconstructAccessRequest(
	id uint,
	email string,
	name string,
	companyName *string,
	status vo.Status,
	magicToken *string,
	magicTokenExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*AccessRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("access request ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &AccessRequest{
		id:                  id,
		email:               email,
		name:                name,
		companyName:         companyName,
		status:              status,
		magicToken:          magicToken,
		magicTokenExpiresAt: magicTokenExpiresAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (r *AccessRequest) ID() uint                        { return r.id }
func (r *AccessRequest) Email() string                   { return r.email }
func (r *AccessRequest) Name() string                    { return r.name }
func (r *AccessRequest) CompanyName() *string            { return r.companyName }
func (r *AccessRequest) Status() vo.Status               { return r.status }
func (r *AccessRequest) MagicToken() *string             { return r.magicToken }
func (r *AccessRequest) MagicTokenExpiresAt() *time.Time { return r.magicTokenExpiresAt }
func (r *AccessRequest) CreatedAt() time.Time            { return r.createdAt }
func (r *AccessRequest) UpdatedAt() time.Time            { return r.updatedAt }

func (r *AccessRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("access request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("access request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Approve moves a pending request to approved.
func (r *AccessRequest) Approve() error {
	if !r.status.IsPending() {
		return fmt.Errorf("only pending requests can be approved, current status: %s", r.status)
	}
	r.status = vo.StatusApproved
	r.updatedAt = time.Now()
	return nil
}

// Reject moves a pending request to rejected.
func (r *AccessRequest) Reject() error {
	if !r.status.IsPending() {
		return fmt.Errorf("only pending requests can be rejected, current status: %s", r.status)
	}
	r.status = vo.StatusRejected
	r.updatedAt = time.Now()
	return nil
}

// SetMagicToken stores a freshly minted token, overwriting any prior one.
// Only approved requests hold tokens.
func (r *AccessRequest) SetMagicToken(token string, expiresAt time.Time) error {
	if !r.status.IsApproved() {
		return fmt.Errorf("magic token requires an approved request, current status: %s", r.status)
	}
	if len(token) == 0 {
		return fmt.Errorf("token is required")
	}
	r.magicToken = &token
	r.magicTokenExpiresAt = &expiresAt
	r.updatedAt = time.Now()
	return nil
}

// HasValidToken reports whether the stored token is present and unexpired.
func (r *AccessRequest) HasValidToken(now time.Time) bool {
	return r.magicToken != nil && r.magicTokenExpiresAt != nil && r.magicTokenExpiresAt.After(now)
}

// MarkUsed consumes the token: the request becomes used and the token is
// cleared. Invoked only when the single-use policy is enabled.
func (r *AccessRequest) MarkUsed() error {
	if !r.status.IsApproved() {
		return fmt.Errorf("only approved requests can be marked used, current status: %s", r.status)
	}
	r.status = vo.StatusUsed
	r.magicToken = nil
	r.magicTokenExpiresAt = nil
	r.updatedAt = time.Now()
	return nil
}
