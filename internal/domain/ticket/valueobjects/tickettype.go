package valueobjects

import "fmt"

// TicketType distinguishes service requests from service maintenance tickets.
type TicketType string

const (
	TypeServiceRequest     TicketType = "SR"
	TypeServiceMaintenance TicketType = "SM"
)

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return t == TypeServiceRequest || t == TypeServiceMaintenance
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
