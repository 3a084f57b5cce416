package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mangedesk/internal/domain/ticket/valueobjects"
)

func TestNewStatusHistoryEntry(t *testing.T) {
	actor := uint(3)

	tests := []struct {
		name        string
		ticketID    uint
		status      vo.TicketStatus
		description string
		wantErr     string
	}{
		{
			name:        "valid entry",
			ticketID:    1,
			status:      vo.StatusInProgress,
			description: "technician dispatched to floor 3",
		},
		{
			name:        "note exactly at minimum",
			ticketID:    1,
			status:      vo.StatusDone,
			description: strings.Repeat("x", MinStatusNoteLength),
		},
		{
			name:        "empty note rejected",
			ticketID:    1,
			status:      vo.StatusDone,
			description: "",
			wantErr:     "status note must be at least",
		},
		{
			name:        "short note rejected",
			ticketID:    1,
			status:      vo.StatusDone,
			description: strings.Repeat("x", MinStatusNoteLength-1),
			wantErr:     "status note must be at least",
		},
		{
			name:        "missing ticket id",
			ticketID:    0,
			status:      vo.StatusDone,
			description: "long enough note",
			wantErr:     "ticket ID is required",
		},
		{
			name:        "invalid status",
			ticketID:    1,
			status:      vo.TicketStatus("parked"),
			description: "long enough note",
			wantErr:     "invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewStatusHistoryEntry(tt.ticketID, tt.status, tt.description, &actor)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, entry.Status())
			assert.Equal(t, tt.description, entry.Description())
			require.NotNil(t, entry.ActorID())
			assert.Equal(t, actor, *entry.ActorID())
			assert.Empty(t, entry.Photos())
		})
	}
}

func TestStatusHistoryEntry_NilActor(t *testing.T) {
	entry, err := NewStatusHistoryEntry(1, vo.StatusCancelled, "requester left the company", nil)

	require.NoError(t, err)
	assert.Nil(t, entry.ActorID())
}

func TestStatusHistoryEntry_AttachPhoto(t *testing.T) {
	entry, err := NewStatusHistoryEntry(1, vo.StatusDone, "replaced the fuser unit", nil)
	require.NoError(t, err)

	photo, err := NewStatusPhoto("chamados/historico/2026/08/30/abc.jpg", "before.jpg")
	require.NoError(t, err)

	require.NoError(t, entry.AttachPhoto(photo))
	require.Len(t, entry.Photos(), 1)
	assert.Equal(t, "before.jpg", entry.Photos()[0].OriginalName())

	assert.Error(t, entry.AttachPhoto(nil))
}

func TestNewComment(t *testing.T) {
	author := uint(4)

	comment, err := NewComment(1, &author, "checked the cabling, all fine")
	require.NoError(t, err)
	assert.Equal(t, uint(1), comment.TicketID())

	_, err = NewComment(1, &author, "   ")
	assert.Error(t, err)

	_, err = NewComment(0, &author, "text")
	assert.Error(t, err)
}
