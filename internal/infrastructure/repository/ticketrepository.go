package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	ticketvo "helpdesk/internal/domain/ticket/valueobjects"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "urgency", "product", "platform",
			"sw_version", "os", "ticket_type", "assignee_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// ticketListRow is the scan target for the joined list queries.
type ticketListRow struct {
	ID            uint
	Title         string
	Description   string
	Status        string
	Urgency       string
	Product       string
	Platform      string
	SWVersion     string `gorm:"column:sw_version"`
	OS            string `gorm:"column:os"`
	TicketType    string
	CustomerID    uint
	AssigneeID    *uint
	CreatedAt     int64
	UpdatedAt     int64
	CustomerName  string
	CustomerEmail string
	CompanyName   *string
	AssigneeName  *string
	AssigneeEmail *string
}

const ticketListSelect = `t.id, t.title, t.description, t.status, t.urgency, t.product,
	t.platform, t.sw_version, t.os, t.ticket_type, t.customer_id, t.assignee_id,
	t.created_at, t.updated_at,
	c.name AS customer_name, c.email AS customer_email, c.company_name,
	a.name AS assignee_name, a.email AS assignee_email`

func (r *TicketRepository) ListByCustomer(ctx context.Context, customerID uint, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Table("tickets t").
		Select(ticketListSelect).
		Joins("JOIN users c ON c.id = t.customer_id").
		Joins("LEFT JOIN users a ON a.id = t.assignee_id").
		Where("t.customer_id = ?", customerID)

	query = applyTicketFilter(query, filter, false)

	var rows []ticketListRow
	if err := query.Order("t.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer tickets: %w", err)
	}

	return r.rowsToListItems(rows)
}

func (r *TicketRepository) ListAll(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Table("tickets t").
		Select(ticketListSelect).
		Joins("JOIN users c ON c.id = t.customer_id").
		Joins("LEFT JOIN users a ON a.id = t.assignee_id")

	query = applyTicketFilter(query, filter, true)

	var rows []ticketListRow
	if err := query.Order("t.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.rowsToListItems(rows)
}

// applyTicketFilter adds the optional status, urgency and keyword predicates.
// Staff keyword search also matches customer and assignee names.
func applyTicketFilter(query *gorm.DB, filter ticket.ListFilter, staffSearch bool) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("t.status = ?", filter.Status.String())
	}
	if filter.Urgency != nil {
		query = query.Where("t.urgency = ?", filter.Urgency.String())
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		if staffSearch {
			query = query.Where("(t.title LIKE ? OR c.name LIKE ? OR a.name LIKE ?)", pattern, pattern, pattern)
		} else {
			query = query.Where("t.title LIKE ?", pattern)
		}
	}
	return query
}

func (r *TicketRepository) rowsToListItems(rows []ticketListRow) ([]*ticket.ListItem, error) {
	items := make([]*ticket.ListItem, len(rows))
	for i, row := range rows {
		model := models.TicketModel{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Status:      row.Status,
			Urgency:     row.Urgency,
			Product:     row.Product,
			Platform:    row.Platform,
			SWVersion:   row.SWVersion,
			OS:          row.OS,
			TicketType:  row.TicketType,
			CustomerID:  row.CustomerID,
			AssigneeID:  row.AssigneeID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		items[i] = &ticket.ListItem{
			Ticket:        t,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CompanyName:   row.CompanyName,
			AssigneeName:  row.AssigneeName,
			AssigneeEmail: row.AssigneeEmail,
		}
	}
	return items, nil
}

func (r *TicketRepository) ListIDsByStatus(ctx context.Context, status ticketvo.Status) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.
		Model(&models.TicketModel{}).
		Where("status = ?", status.String()).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket IDs by status: %w", err)
	}

	return ids, nil
}

func (r *TicketRepository) GetCloseRecipients(ctx context.Context, ticketID uint) (*ticket.CloseRecipients, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row struct {
		CustomerName  string
		CustomerEmail string
		AssigneeName  *string
		AssigneeEmail *string
	}
	err := tx.
		Table("tickets t").
		Select("c.name AS customer_name, c.email AS customer_email, a.name AS assignee_name, a.email AS assignee_email").
		Joins("JOIN users c ON c.id = t.customer_id").
		Joins("LEFT JOIN users a ON a.id = t.assignee_id").
		Where("t.id = ?", ticketID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get close recipients: %w", err)
	}
	if row.CustomerEmail == "" {
		return nil, fmt.Errorf("ticket not found")
	}

	var staffEmails []string
	if err := tx.
		Model(&models.UserModel{}).
		Where("role IN ?", []string{uservo.RoleAdmin.String(), uservo.RoleITSMTeam.String()}).
		Pluck("email", &staffEmails).Error; err != nil {
		return nil, fmt.Errorf("failed to get staff emails: %w", err)
	}

	return &ticket.CloseRecipients{
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		AssigneeName:  row.AssigneeName,
		AssigneeEmail: row.AssigneeEmail,
		StaffEmails:   staffEmails,
	}, nil
}
