package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		valid  bool
	}{
		{name: "received", status: StatusReceived, valid: true},
		{name: "in progress", status: StatusInProgress, valid: true},
		{name: "answered", status: StatusAnswered, valid: true},
		{name: "closed", status: StatusClosed, valid: true},
		{name: "english label rejected", status: Status("closed"), valid: false},
		{name: "empty", status: Status(""), valid: false},
		{name: "unknown korean label", status: Status("보류"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("접수")
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, s)
	assert.True(t, s.IsReceived())

	_, err = NewStatus("invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket status")
}

func TestAllStatuses(t *testing.T) {
	all := AllStatuses()
	require.Len(t, all, 4)
	for _, s := range all {
		assert.True(t, s.IsValid())
	}
}

func TestUrgency(t *testing.T) {
	for _, u := range []Urgency{UrgencyHigh, UrgencyNormal, UrgencyLow} {
		assert.True(t, u.IsValid())
	}
	assert.False(t, Urgency("high").IsValid())

	u, err := NewUrgency("높음")
	require.NoError(t, err)
	assert.Equal(t, UrgencyHigh, u)

	_, err = NewUrgency("")
	require.Error(t, err)
}

func TestTicketType(t *testing.T) {
	assert.True(t, TypeServiceRequest.IsValid())
	assert.True(t, TypeServiceMaintenance.IsValid())
	assert.False(t, TicketType("XX").IsValid())
}
