package mappers

import (
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ReplyToModel converts a reply domain entity to a persistence model.
	ReplyToModel(r *ticket.Reply) *models.ReplyModel

	// ReplyToDomain converts a reply persistence model to a domain entity.
	ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Urgency:     t.Urgency().String(),
		Product:     t.Product(),
		Platform:    t.Platform(),
		SWVersion:   t.SWVersion(),
		OS:          t.OS(),
		TicketType:  t.TicketType().String(),
		CustomerID:  t.CustomerID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, err
	}
	ticketType, err := vo.NewTicketType(model.TicketType)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		urgency,
		model.Product,
		model.Platform,
		model.SWVersion,
		model.OS,
		ticketType,
		model.CustomerID,
		model.AssigneeID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ReplyToModel(r *ticket.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		AuthorID:  r.AuthorID(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Message,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
