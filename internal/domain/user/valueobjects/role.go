package valueobjects

import "fmt"

// Role is the access level of a user. Staff covers both the ITSM team and
// administrators; only administrators pass the admin gate.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleITSMTeam Role = "itsm_team"
	RoleAdmin    Role = "admin"
)

var validRoles = map[Role]bool{
	RoleCustomer: true,
	RoleITSMTeam: true,
	RoleAdmin:    true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role passes the team gate.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleITSMTeam
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
