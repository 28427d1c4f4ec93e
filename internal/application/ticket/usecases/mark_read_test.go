package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestMarkReadUseCase_Execute(t *testing.T) {
	existing := reconstructTicket(3, vo.StatusInProgress, 7, nil)

	var markedTicket, markedUser uint
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockReads := &mockReadRepository{
		MarkReadFunc: func(ctx context.Context, ticketID, userID uint) error {
			markedTicket, markedUser = ticketID, userID
			return nil
		},
	}

	useCase := NewMarkReadUseCase(mockTickets, mockReads, &mockLogger{})

	result, err := useCase.Execute(context.Background(), MarkReadCommand{
		TicketID:    3,
		RequesterID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.TicketID)
	assert.Equal(t, uint(3), markedTicket)
	assert.Equal(t, uint(7), markedUser)

	// another customer cannot touch the watermark
	_, err = useCase.Execute(context.Background(), MarkReadCommand{
		TicketID:    3,
		RequesterID: 8,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestUnreadCountsUseCase_Execute_AudienceSplit(t *testing.T) {
	customerCalled := false
	staffCalled := false
	mockReads := &mockReadRepository{
		CustomerUnreadCountsFunc: func(ctx context.Context, customerID uint) ([]*ticket.UnreadCount, error) {
			customerCalled = true
			return []*ticket.UnreadCount{{TicketID: 3, UnreadCount: 2}}, nil
		},
		StaffUnreadCountsFunc: func(ctx context.Context, staffID uint) ([]*ticket.UnreadCount, error) {
			staffCalled = true
			return []*ticket.UnreadCount{{TicketID: 3, UnreadCount: 1}, {TicketID: 4, UnreadCount: 5}}, nil
		},
	}

	useCase := NewUnreadCountsUseCase(mockReads, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UnreadCountsQuery{RequesterID: 7})
	require.NoError(t, err)
	require.Len(t, result.Counts, 1)
	assert.Equal(t, int64(2), result.Counts[0].UnreadCount)
	assert.True(t, customerCalled)
	assert.False(t, staffCalled)

	result, err = useCase.Execute(context.Background(), UnreadCountsQuery{RequesterID: 2, IsStaff: true})
	require.NoError(t, err)
	require.Len(t, result.Counts, 2)
	assert.True(t, staffCalled)
}
