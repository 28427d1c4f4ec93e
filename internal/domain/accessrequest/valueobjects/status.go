package valueobjects

import "fmt"

// Status is the access-request lifecycle state. pending moves to approved or
// rejected; approved moves to used when single-use redemption is enabled.
// rejected and used are terminal. A new pending request for the same email
// is only possible once no live (pending or approved) request remains.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusUsed     Status = "used"
)

var validStatuses = map[Status]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
	StatusUsed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsApproved() bool {
	return s == StatusApproved
}

// IsLive reports whether the request blocks a new request for its email.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusApproved
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid access request status: %s", s)
	}
	return status, nil
}
