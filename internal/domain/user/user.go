package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// User is the identity aggregate. Emails are stored lowercase so the
// case-insensitive uniqueness constraint holds at the application level too.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	companyName  *string
	role         vo.Role
	isApproved   bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a self-registered user pending admin approval.
func NewUser(email, passwordHash, name string, companyName *string, role vo.Role) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now()
	return &User{
		email:        normalized,
		passwordHash: passwordHash,
		name:         name,
		companyName:  companyName,
		role:         role,
		isApproved:   false,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewMagicLinkUser creates an auto-approved customer for the magic-link
// approval flow. The password hash is an unusable random placeholder; these
// accounts only ever authenticate through magic links.
func NewMagicLinkUser(email, placeholderHash, name string, companyName *string) (*User, error) {
	u, err := NewUser(email, placeholderHash, name, companyName, vo.RoleCustomer)
	if err != nil {
		return nil, err
	}
	u.isApproved = true
	return u, nil
}

// NewTeamMember creates an approved staff account. Only itsm_team and admin
// roles are accepted.
func NewTeamMember(email, passwordHash, name string, role vo.Role) (*User, error) {
	if !role.IsStaff() {
		return nil, fmt.Errorf("team member role must be itsm_team or admin")
	}
	u, err := NewUser(email, passwordHash, name, nil, role)
	if err != nil {
		return nil, err
	}
	u.isApproved = true
	return u, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email string,
	passwordHash string,
	name string,
	companyName *string,
	role vo.Role,
	isApproved bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		companyName:  companyName,
		role:         role,
		isApproved:   isApproved,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// NormalizeEmail validates an address and lowercases it for storage and lookup.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email address: %s", trimmed)
	}
	return strings.ToLower(trimmed), nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) CompanyName() *string { return u.companyName }
func (u *User) Role() vo.Role        { return u.role }
func (u *User) IsApproved() bool     { return u.isApproved }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetApproved toggles the admin approval flag.
func (u *User) SetApproved(approved bool) {
	u.isApproved = approved
	u.updatedAt = time.Now()
}

// UpdateProfile changes the mutable profile fields. Email and role are
// immutable here; role changes go through ChangeRole.
func (u *User) UpdateProfile(name string, companyName *string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.companyName = companyName
	u.updatedAt = time.Now()
	return nil
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole is an admin-only operation at the application layer.
func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role")
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}
