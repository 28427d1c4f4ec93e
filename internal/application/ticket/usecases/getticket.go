package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	IsStaff     bool
}

type AttachmentView struct {
	ID           uint      `json:"id"`
	URL          string    `json:"url"`
	OriginalName string    `json:"original_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReplyView struct {
	ID         uint             `json:"id"`
	AuthorID   uint             `json:"author_id"`
	AuthorName string           `json:"author_name"`
	AuthorRole string           `json:"author_role"`
	Message    string           `json:"message"`
	Files      []AttachmentView `json:"files"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type TicketDetail struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Urgency     string           `json:"urgency"`
	Product     string           `json:"product"`
	Platform    string           `json:"platform"`
	SWVersion   string           `json:"sw_version"`
	OS          string           `json:"os"`
	TicketType  string           `json:"ticket_type"`
	CustomerID  uint             `json:"customer_id"`
	AssigneeID  *uint            `json:"assignee_id"`
	Files       []AttachmentView `json:"files"`
	Replies     []ReplyView      `json:"replies"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// GetTicketUseCase assembles the full detail view: ticket, its files, its
// replies with author names, and each reply's files.
type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	replyRepo      ticket.ReplyRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	replyRepo ticket.ReplyRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		replyRepo:      replyRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.RequesterID, query.IsStaff) {
		return nil, errors.NewForbiddenError("access denied")
	}

	files, err := uc.attachmentRepo.ListTicketFiles(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket files", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	replies, err := uc.replyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list replies", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	replyViews, err := uc.buildReplyViews(ctx, replies)
	if err != nil {
		return nil, err
	}

	return &TicketDetail{
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
		Files:       attachmentViews(files),
		Replies:     replyViews,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}, nil
}

func (uc *GetTicketUseCase) buildReplyViews(ctx context.Context, replies []*ticket.Reply) ([]ReplyView, error) {
	views := make([]ReplyView, 0, len(replies))
	if len(replies) == 0 {
		return views, nil
	}

	replyIDs := make([]uint, 0, len(replies))
	for _, r := range replies {
		replyIDs = append(replyIDs, r.ID())
	}

	filesByReply, err := uc.attachmentRepo.ListReplyFiles(ctx, replyIDs)
	if err != nil {
		uc.logger.Errorw("failed to list reply files", "error", err)
		return nil, err
	}

	// Author lookups are cached per distinct author; threads rarely have
	// more than a handful of participants.
	authors := make(map[uint]*user.User)
	for _, r := range replies {
		if _, ok := authors[r.AuthorID()]; ok {
			continue
		}
		author, err := uc.userRepo.GetByID(ctx, r.AuthorID())
		if err != nil {
			uc.logger.Errorw("failed to resolve reply author", "author_id", r.AuthorID(), "error", err)
			return nil, err
		}
		authors[r.AuthorID()] = author
	}

	for _, r := range replies {
		view := ReplyView{
			ID:        r.ID(),
			AuthorID:  r.AuthorID(),
			Message:   r.Message(),
			Files:     attachmentViews(filesByReply[r.ID()]),
			CreatedAt: r.CreatedAt(),
			UpdatedAt: r.UpdatedAt(),
		}
		if author := authors[r.AuthorID()]; author != nil {
			view.AuthorName = author.Name()
			view.AuthorRole = author.Role().String()
		}
		views = append(views, view)
	}
	return views, nil
}

func attachmentViews(files []*ticket.Attachment) []AttachmentView {
	views := make([]AttachmentView, 0, len(files))
	for _, f := range files {
		views = append(views, AttachmentView{
			ID:           f.ID,
			URL:          f.URL,
			OriginalName: f.OriginalName,
			CreatedAt:    f.CreatedAt,
		})
	}
	return views
}
