package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

func TestGetTicketUseCase_Execute_Detail(t *testing.T) {
	existing := reconstructTicket(3, vo.StatusReceived, 7, nil)

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		ListTicketFilesFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{{ID: 1, OwnerID: 3, URL: "/uploads/a.png", OriginalName: "a.png"}}, nil
		},
		ListReplyFilesFunc: func(ctx context.Context, replyIDs []uint) (map[uint][]*ticket.Attachment, error) {
			return map[uint][]*ticket.Attachment{
				11: {{ID: 2, OwnerID: 11, URL: "/uploads/b.txt", OriginalName: "b.txt"}},
			}, nil
		},
	}
	mockReplies := &mockReplyRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
			return []*ticket.Reply{reconstructReply(t, 11, 3, 2)}, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return user.ReconstructUser(id, "admin@example.com", "hash", "관리자", nil,
				uservo.RoleAdmin, true, time.Now(), time.Now())
		},
	}

	useCase := NewGetTicketUseCase(mockTickets, mockReplies, mockAttachments, mockUsers, &mockLogger{})

	detail, err := useCase.Execute(context.Background(), GetTicketQuery{
		TicketID:    3,
		RequesterID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusReceived.String(), detail.Status)
	assert.Equal(t, vo.UrgencyNormal.String(), detail.Urgency)
	require.Len(t, detail.Files, 1)
	require.Len(t, detail.Replies, 1)
	assert.Equal(t, "관리자", detail.Replies[0].AuthorName)
	assert.Equal(t, "admin", detail.Replies[0].AuthorRole)
	require.Len(t, detail.Replies[0].Files, 1)
	assert.Equal(t, "b.txt", detail.Replies[0].Files[0].OriginalName)
}

func TestGetTicketUseCase_Execute_CrossTenantDenied(t *testing.T) {
	existing := reconstructTicket(3, vo.StatusReceived, 7, nil)

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	useCase := NewGetTicketUseCase(mockTickets, &mockReplyRepository{},
		&mockAttachmentRepository{}, &mockUserRepository{}, &mockLogger{})

	// another customer is denied, staff is not
	_, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 3, RequesterID: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")

	_, err = useCase.Execute(context.Background(), GetTicketQuery{TicketID: 3, RequesterID: 8, IsStaff: true})
	require.NoError(t, err)
}
