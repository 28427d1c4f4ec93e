package valueobjects

import "fmt"

// Urgency is the customer-declared priority of a ticket.
type Urgency string

const (
	UrgencyHigh   Urgency = "높음"
	UrgencyNormal Urgency = "보통"
	UrgencyLow    Urgency = "낮음"
)

var validUrgencies = map[Urgency]bool{
	UrgencyHigh:   true,
	UrgencyNormal: true,
	UrgencyLow:    true,
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	return validUrgencies[u]
}

func NewUrgency(s string) (Urgency, error) {
	urgency := Urgency(s)
	if !urgency.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return urgency, nil
}
