package usecases

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestChangeStatusUseCase_Execute_AnyToAny(t *testing.T) {
	// membership-only allow-list: every pairing of canonical labels is
	// legal, including received straight to closed and reopening
	for _, from := range vo.AllStatuses() {
		for _, to := range vo.AllStatuses() {
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				existing := reconstructTicket(1, from, 7, nil)

				mockRepo := &mockTicketRepository{
					GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
						return existing, nil
					},
				}

				useCase := NewChangeStatusUseCase(mockRepo, &mockNotifier{}, &mockLogger{})
				result, err := useCase.Execute(context.Background(), ChangeStatusCommand{
					TicketID: 1,
					Status:   to.String(),
				})

				require.NoError(t, err)
				assert.Equal(t, from.String(), result.OldStatus)
				assert.Equal(t, to.String(), result.NewStatus)
			})
		}
	}
}

func TestChangeStatusUseCase_Execute_RejectsUnknownLabel(t *testing.T) {
	for _, label := range []string{"closed", "보류", "", "RECEIVED"} {
		t.Run("label "+label, func(t *testing.T) {
			useCase := NewChangeStatusUseCase(&mockTicketRepository{}, &mockNotifier{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), ChangeStatusCommand{
				TicketID: 1,
				Status:   label,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "invalid status")
		})
	}
}

func TestChangeStatusUseCase_Execute_InProgressNotifiesCustomer(t *testing.T) {
	existing := reconstructTicket(3, vo.StatusReceived, 7, nil)

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		GetCloseRecipientsFunc: func(ctx context.Context, ticketID uint) (*ticket.CloseRecipients, error) {
			return &ticket.CloseRecipients{
				CustomerName:  "김고객",
				CustomerEmail: "customer@example.com",
			}, nil
		},
	}

	type sentCall struct {
		kind       notification.Kind
		recipients []string
		data       notification.TemplateData
	}
	sent := make(chan sentCall, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			sent <- sentCall{kind, recipients, data}
			return nil
		},
	}

	useCase := NewChangeStatusUseCase(mockRepo, notifier, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		TicketID: 3,
		Status:   vo.StatusInProgress.String(),
	})
	require.NoError(t, err)

	select {
	case call := <-sent:
		assert.Equal(t, notification.KindTicketStatusChanged, call.kind)
		assert.Equal(t, []string{"customer@example.com"}, call.recipients)
		assert.Equal(t, vo.StatusInProgress.String(), call.data["status"])
	case <-time.After(2 * time.Second):
		t.Fatal("status change notification was never attempted")
	}
}

func TestChangeStatusUseCase_Execute_CloseFanOutDeduplicates(t *testing.T) {
	assigneeID := uint(9)
	existing := reconstructTicket(3, vo.StatusAnswered, 7, &assigneeID)

	assigneeEmail := "assignee@example.com"
	assigneeName := "박담당"
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		GetCloseRecipientsFunc: func(ctx context.Context, ticketID uint) (*ticket.CloseRecipients, error) {
			return &ticket.CloseRecipients{
				CustomerName:  "김고객",
				CustomerEmail: "customer@example.com",
				AssigneeName:  &assigneeName,
				AssigneeEmail: &assigneeEmail,
				// assignee appears again in the staff list
				StaffEmails: []string{"admin@example.com", "assignee@example.com", "team@example.com"},
			}, nil
		},
	}

	sent := make(chan []string, 1)
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
			require.Equal(t, notification.KindTicketClosed, kind)
			sent <- recipients
			return nil
		},
	}

	useCase := NewChangeStatusUseCase(mockRepo, notifier, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		TicketID: 3,
		Status:   vo.StatusClosed.String(),
	})
	require.NoError(t, err)

	select {
	case recipients := <-sent:
		sort.Strings(recipients)
		assert.Equal(t, []string{
			"admin@example.com",
			"assignee@example.com",
			"customer@example.com",
			"team@example.com",
		}, recipients)
	case <-time.After(2 * time.Second):
		t.Fatal("close notification was never attempted")
	}
}

func TestChangeStatusUseCase_Execute_TicketNotFound(t *testing.T) {
	useCase := NewChangeStatusUseCase(&mockTicketRepository{}, &mockNotifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		TicketID: 99,
		Status:   vo.StatusClosed.String(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "not found")
}
