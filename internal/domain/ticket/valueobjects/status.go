package valueobjects

import "fmt"

// Status is the ticket lifecycle label. The canonical values are the Korean
// labels used on the wire and in storage. Transitions are membership-checked
// only: staff may move a ticket between any two canonical labels, including
// straight from received to closed. No adjacency ordering is enforced.
type Status string

const (
	StatusReceived   Status = "접수"
	StatusInProgress Status = "진행중"
	StatusAnswered   Status = "답변 완료"
	StatusClosed     Status = "종결"
)

var validStatuses = map[Status]bool{
	StatusReceived:   true,
	StatusInProgress: true,
	StatusAnswered:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsReceived() bool {
	return s == StatusReceived
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsAnswered() bool {
	return s == StatusAnswered
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllStatuses returns the canonical labels in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusReceived, StatusInProgress, StatusAnswered, StatusClosed}
}
