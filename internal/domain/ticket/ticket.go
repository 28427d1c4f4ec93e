package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Ticket is the support ticket aggregate root. A ticket is always created by
// a customer in the received state; only staff move it afterwards.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	urgency     vo.Urgency
	product     string
	platform    string
	swVersion   string
	os          string
	ticketType  vo.TicketType
	customerID  uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a customer-submitted ticket in the received state.
func NewTicket(
	title string,
	description string,
	urgency vo.Urgency,
	product string,
	customerID uint,
	platform, swVersion, osName string,
	ticketType vo.TicketType,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusReceived,
		urgency:     urgency,
		product:     product,
		platform:    platform,
		swVersion:   swVersion,
		os:          osName,
		ticketType:  ticketType,
		customerID:  customerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	urgency vo.Urgency,
	product string,
	platform, swVersion, osName string,
	ticketType vo.TicketType,
	customerID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		urgency:     urgency,
		product:     product,
		platform:    platform,
		swVersion:   swVersion,
		os:          osName,
		ticketType:  ticketType,
		customerID:  customerID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Title() string             { return t.title }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) Status() vo.Status         { return t.status }
func (t *Ticket) Urgency() vo.Urgency       { return t.urgency }
func (t *Ticket) Product() string           { return t.product }
func (t *Ticket) Platform() string          { return t.platform }
func (t *Ticket) SWVersion() string         { return t.swVersion }
func (t *Ticket) OS() string                { return t.os }
func (t *Ticket) TicketType() vo.TicketType { return t.ticketType }
func (t *Ticket) CustomerID() uint          { return t.customerID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Assign sets or clears the assignee. A nil assigneeID clears the
// assignment. The assignee is not validated to be a staff member.
func (t *Ticket) Assign(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = assigneeID
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the ticket to any canonical status. The allow-list
// checks membership only; no ordering between the four labels is enforced,
// and nothing prevents reopening a closed ticket.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// CanBeViewedBy reports whether the user may read this ticket.
func (t *Ticket) CanBeViewedBy(userID uint, isStaff bool) bool {
	if isStaff {
		return true
	}
	return t.customerID == userID
}
