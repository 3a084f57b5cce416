package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{"open", "open", StatusOpen, false},
		{"awaiting responsible", "awaiting_responsible", StatusAwaitingResponsible, false},
		{"in progress", "in_progress", StatusInProgress, false},
		{"done", "done", StatusDone, false},
		{"completed", "completed", StatusCompleted, false},
		{"cancelled", "cancelled", StatusCancelled, false},
		{"invalid value", "reopened", "", true},
		{"empty string", "", "", true},
		{"case sensitive", "OPEN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTicketStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, TicketStatus("deleted").IsValid())
	assert.False(t, TicketStatus("").IsValid())
}

func TestTicketStatus_IsActionable(t *testing.T) {
	tests := []struct {
		status TicketStatus
		want   bool
	}{
		{StatusOpen, true},
		{StatusAwaitingResponsible, true},
		{StatusInProgress, true},
		{StatusDone, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsActionable())
		})
	}
}

func TestTicketStatus_AllStatuses(t *testing.T) {
	all := AllStatuses()
	require.Len(t, all, 6)

	seen := make(map[TicketStatus]bool)
	for _, s := range all {
		assert.True(t, s.IsValid())
		assert.False(t, seen[s], "duplicate status %s", s)
		seen[s] = true
	}
}
