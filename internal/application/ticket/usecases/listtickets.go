package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	RequesterID uint
	IsStaff     bool
	Status      string
	Urgency     string
	Keyword     string
}

type TicketListItem struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Urgency      string    `json:"urgency"`
	Product      string    `json:"product"`
	TicketType   string    `json:"ticket_type"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	CompanyName  *string   `json:"company_name"`
	AssigneeID   *uint     `json:"assignee_id"`
	AssigneeName *string   `json:"assignee_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListTicketsResult struct {
	Tickets []TicketListItem `json:"tickets"`
	Total   int              `json:"total"`
}

// ListTicketsUseCase serves both audiences: customers see their own tickets,
// staff see every ticket. Keyword search matches the title for everyone and
// additionally customer/assignee names for staff.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}

	filter, err := buildListFilter(query)
	if err != nil {
		return nil, err
	}

	var items []*ticket.ListItem
	if query.IsStaff {
		items, err = uc.ticketRepo.ListAll(ctx, filter)
	} else {
		items, err = uc.ticketRepo.ListByCustomer(ctx, query.RequesterID, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "requester_id", query.RequesterID, "error", err)
		return nil, err
	}

	result := &ListTicketsResult{
		Tickets: make([]TicketListItem, 0, len(items)),
		Total:   len(items),
	}
	for _, item := range items {
		t := item.Ticket
		result.Tickets = append(result.Tickets, TicketListItem{
			ID:           t.ID(),
			Title:        t.Title(),
			Status:       t.Status().String(),
			Urgency:      t.Urgency().String(),
			Product:      t.Product(),
			TicketType:   t.TicketType().String(),
			CustomerID:   t.CustomerID(),
			CustomerName: item.CustomerName,
			CompanyName:  item.CompanyName,
			AssigneeID:   t.AssigneeID(),
			AssigneeName: item.AssigneeName,
			CreatedAt:    t.CreatedAt(),
			UpdatedAt:    t.UpdatedAt(),
		})
	}
	return result, nil
}

func buildListFilter(query ListTicketsQuery) (ticket.ListFilter, error) {
	filter := ticket.ListFilter{Keyword: query.Keyword}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Urgency != "" {
		urgency, err := vo.NewUrgency(query.Urgency)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Urgency = &urgency
	}
	return filter, nil
}
